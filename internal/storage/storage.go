package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	// ErrAlreadyExists - объект с таким ключом уже есть; хранилище никогда не перезаписывает
	ErrAlreadyExists = errors.New("storage: object already exists")
	// ErrInvalidKey - ключ пустой, абсолютный или выходит за корень
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Storage defines the interface for file storage operations.
// Keys are slash-separated and relative, e.g. "avatars/avatar-1700000000000-ab12.png".
type Storage interface {
	// Save stores a new object. Returns ErrAlreadyExists instead of overwriting.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens an object for reading
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object; deleting a missing object is not an error
	Delete(ctx context.Context, key string) error

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for the object
	GetURL(key string) string

	// Location returns where the object physically lives (file path or s3:// URI)
	Location(key string) string
}

// Config holds storage configuration
type Config struct {
	Type         string // local, s3
	BasePath     string // For local storage
	BaseURL      string // Public URL base
	Bucket       string // For S3
	Region       string // For S3
	AccessKey    string // For S3
	SecretKey    string // For S3
	Endpoint     string // R2 / MinIO
	UsePathStyle bool
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// CleanKey нормализует ключ и отсекает попытки выйти за корень
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

// JoinURL склеивает базовый URL и ключ одним "/"
func JoinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
