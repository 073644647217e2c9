package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"slices"
	"strings"
	"time"

	"portfolio_backend/internal/avatar"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// ============================================
// UPLOAD SERVICE
// ============================================

type UploadService interface {
	// Upload - полный цикл: прием файла и, для аватара, привязка к профилю
	Upload(ctx context.Context, db *gorm.DB, kind models.UploadKind, form *multipart.Form) (*dto.UploadResponse, error)

	// AcceptUpload проверяет и сохраняет ровно один файл. Ничего не пишет, если проверка не прошла.
	AcceptUpload(ctx context.Context, kind models.UploadKind, form *multipart.Form) (*StoredFile, error)

	// LinkAvatarUpload делает файл текущим аватаром. При ошибке БД файл удаляется.
	LinkAvatarUpload(ctx context.Context, db *gorm.DB, stored *StoredFile) error
}

// StoredFile - результат успешного сохранения
type StoredFile struct {
	Kind         models.UploadKind
	FieldName    string
	OriginalName string
	Filename     string
	MimeType     string
	Size         int64
	Key          string // ключ в хранилище: <subdir>/<filename>
	Path         string // путь на диске или s3:// URI
	URL          string
}

type uploadService struct {
	storage     storage.Storage
	profileRepo repositories.ProfileRepository
	profileID   uint
	config      *UploadConfig
}

// ============================================
// КОНФИГУРАЦИЯ
// ============================================

type UploadConfig struct {
	MaxFileSize int64
	Kinds       map[models.UploadKind]*KindConfig
}

type KindConfig struct {
	Subdir            string
	Prefix            string
	AllowedTypes      []string // MIME-типы
	AllowedExtensions []string
}

const maxNameAttempts = 3

var imageTypes = []string{"image/jpeg", "image/png", "image/gif"}
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// DefaultMaxFileSize - потолок размера файла, если лимит не задан
const DefaultMaxFileSize int64 = 5 << 20

// GetDefaultUploadConfig - каталоги и allow-list для каждого вида загрузки.
// Неположительный maxFileSize заменяется на DefaultMaxFileSize.
func GetDefaultUploadConfig(maxFileSize int64) *UploadConfig {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &UploadConfig{
		MaxFileSize: maxFileSize,
		Kinds: map[models.UploadKind]*KindConfig{
			models.UploadKindAvatar: {
				Subdir:            "avatars",
				Prefix:            "avatar",
				AllowedTypes:      imageTypes,
				AllowedExtensions: imageExtensions,
			},
			models.UploadKindProject: {
				Subdir:            "projects",
				Prefix:            "project",
				AllowedTypes:      imageTypes,
				AllowedExtensions: imageExtensions,
			},
			models.UploadKindFavicon: {
				Subdir:            "favicons",
				Prefix:            "favicon",
				AllowedTypes:      append(slices.Clone(imageTypes), "image/x-icon", "image/vnd.microsoft.icon"),
				AllowedExtensions: append(slices.Clone(imageExtensions), ".ico"),
			},
			models.UploadKindLogo: {
				Subdir:            "logos",
				Prefix:            "logo",
				AllowedTypes:      imageTypes,
				AllowedExtensions: imageExtensions,
			},
		},
	}
}

// ============================================
// КОНСТРУКТОР
// ============================================

func NewUploadService(
	storage storage.Storage,
	profileRepo repositories.ProfileRepository,
	profileID uint,
	config *UploadConfig,
) UploadService {
	if config == nil {
		config = GetDefaultUploadConfig(DefaultMaxFileSize)
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}

	return &uploadService{
		storage:     storage,
		profileRepo: profileRepo,
		profileID:   profileID,
		config:      config,
	}
}

// ============================================
// ОСНОВНЫЕ МЕТОДЫ
// ============================================

func (s *uploadService) Upload(ctx context.Context, db *gorm.DB, kind models.UploadKind, form *multipart.Form) (*dto.UploadResponse, error) {
	stored, err := s.AcceptUpload(ctx, kind, form)
	if err != nil {
		return nil, err
	}

	// Для остальных видов URL сохраняет вызывающая сторона (проект, настройки)
	if kind == models.UploadKindAvatar {
		if err := s.LinkAvatarUpload(ctx, db, stored); err != nil {
			return nil, err
		}
	}

	return &dto.UploadResponse{
		URL:          stored.URL,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		Kind:         string(stored.Kind),
		MimeType:     stored.MimeType,
		Size:         stored.Size,
	}, nil
}

func (s *uploadService) AcceptUpload(ctx context.Context, kind models.UploadKind, form *multipart.Form) (*StoredFile, error) {
	kindConfig, ok := s.config.Kinds[kind]
	if !ok {
		return nil, apperrors.ErrInvalidUploadKind
	}

	fieldName, header, err := singleFile(form)
	if err != nil {
		return nil, err
	}

	if header.Size > s.config.MaxFileSize {
		logger.CtxWarn(ctx, "Upload rejected: file too large", "kind", kind, "size", header.Size, "limit", s.config.MaxFileSize)
		return nil, apperrors.ErrPayloadTooLarge
	}

	declared := declaredType(header)
	ext := strings.ToLower(path.Ext(header.Filename))
	if !slices.Contains(kindConfig.AllowedTypes, declared) || !slices.Contains(kindConfig.AllowedExtensions, ext) {
		logger.CtxWarn(ctx, "Upload rejected: type not allowed", "kind", kind, "mime", declared, "ext", ext)
		return nil, apperrors.ErrUnsupportedMediaType
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	// Проверяем содержимое, а не только заголовок клиента
	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to read uploaded file: %w", err))
	}
	if !slices.ContainsFunc(kindConfig.AllowedTypes, detected.Is) {
		logger.CtxWarn(ctx, "Upload rejected: content does not match", "kind", kind, "declared", declared, "detected", detected.String())
		return nil, apperrors.ErrUnsupportedMediaType
	}

	stored := &StoredFile{
		Kind:         kind,
		FieldName:    fieldName,
		OriginalName: header.Filename,
		MimeType:     declared,
		Size:         header.Size,
	}

	for attempt := 1; ; attempt++ {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return nil, apperrors.InternalError(fmt.Errorf("failed to rewind uploaded file: %w", err))
		}

		stored.Filename, err = generateFilename(kindConfig.Prefix, ext)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		stored.Key = kindConfig.Subdir + "/" + stored.Filename

		err = s.storage.Save(ctx, stored.Key, src, declared)
		if err == nil {
			break
		}
		if errors.Is(err, storage.ErrAlreadyExists) && attempt < maxNameAttempts {
			logger.CtxDebug(ctx, "Upload name collision, regenerating", "key", stored.Key)
			continue
		}
		logger.CtxWithError(ctx, "Failed to store upload", err, "key", stored.Key)
		return nil, apperrors.StorageError(err)
	}

	stored.Path = s.storage.Location(stored.Key)
	stored.URL = s.storage.GetURL(stored.Key)

	logger.CtxInfo(ctx, "File uploaded", "kind", kind, "key", stored.Key, "size", stored.Size)
	return stored, nil
}

func (s *uploadService) LinkAvatarUpload(ctx context.Context, db *gorm.DB, stored *StoredFile) error {
	pending := s.hold(stored)
	defer pending.Release(ctx)

	patch := avatar.PatchFor(avatar.Upload{FileURL: stored.URL})
	if err := s.profileRepo.UpdateColumns(db, s.profileID, patch.Columns()); err != nil {
		logger.CtxWithError(ctx, "Failed to link avatar upload", err, "profile_id", s.profileID, "key", stored.Key)
		return apperrors.PersistenceError(err)
	}

	pending.Commit()
	logger.CtxInfo(ctx, "Avatar linked to profile", "profile_id", s.profileID, "url", stored.URL)
	return nil
}

// ============================================
// PENDING UPLOAD
// ============================================

// PendingUpload - сохраненный файл, который удаляется, если его не закоммитили.
// Использование: defer pending.Release(ctx) сразу после записи.
type PendingUpload struct {
	storage   storage.Storage
	file      *StoredFile
	committed bool
}

func (s *uploadService) hold(file *StoredFile) *PendingUpload {
	return &PendingUpload{storage: s.storage, file: file}
}

func (p *PendingUpload) Commit() {
	p.committed = true
}

func (p *PendingUpload) Release(ctx context.Context) {
	if p.committed {
		return
	}
	// Удаляем даже если клиент уже отключился
	if err := p.storage.Delete(context.WithoutCancel(ctx), p.file.Key); err != nil {
		logger.CtxWithError(ctx, "Failed to remove orphaned upload", err, "key", p.file.Key)
		return
	}
	logger.CtxInfo(ctx, "Orphaned upload removed", "key", p.file.Key)
}

// ============================================
// ВСПОМОГАТЕЛЬНЫЕ ФУНКЦИИ
// ============================================

func singleFile(form *multipart.Form) (string, *multipart.FileHeader, error) {
	if form == nil {
		return "", nil, apperrors.ErrNoFile
	}

	var (
		fieldName string
		found     *multipart.FileHeader
		count     int
	)
	for name, headers := range form.File {
		for _, header := range headers {
			count++
			fieldName, found = name, header
		}
	}

	switch {
	case count == 0:
		return "", nil, apperrors.ErrNoFile
	case count > 1:
		return "", nil, apperrors.ErrTooManyFiles
	}
	return fieldName, found, nil
}

func declaredType(header *multipart.FileHeader) string {
	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

func generateFilename(prefix, ext string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(buf), ext), nil
}
