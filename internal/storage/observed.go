package storage

import (
	"context"
	"io"
	"time"

	"portfolio_backend/internal/logger"
)

// Observer captures telemetry for storage writes and deletes.
type Observer interface {
	RecordUpload(duration time.Duration, sizeBytes uint64, err error)
	RecordDelete(duration time.Duration, err error)
}

type observedStorage struct {
	Storage
	observer Observer
}

// WithObserver оборачивает хранилище: каждая запись/удаление попадает в метрики и лог
func WithObserver(s Storage, o Observer) Storage {
	if o == nil {
		return s
	}
	return &observedStorage{Storage: s, observer: o}
}

func (s *observedStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	start := time.Now()
	counter := &countingReader{r: reader}

	err := s.Storage.Save(ctx, key, counter, contentType)

	duration := time.Since(start)
	s.observer.RecordUpload(duration, counter.n, err)
	logger.StorageLog("save", key, duration, err)
	return err
}

func (s *observedStorage) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.Storage.Delete(ctx, key)

	duration := time.Since(start)
	s.observer.RecordDelete(duration, err)
	logger.StorageLog("delete", key, duration, err)
	return err
}

type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}
