package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные ошибки домена: загрузки, аватар, профиль, авторизация.
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// StorageError - сбой записи/удаления в хранилище (500). Не ретраится.
func StorageError(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Failed to store file", http.StatusInternalServerError)
}

// PersistenceError - сбой записи в БД (500).
func PersistenceError(err error) *AppError {
	return Wrap(err, CodePersistenceError, "database", "Failed to persist changes", http.StatusInternalServerError)
}

// ErrNotFound - ресурс не найден (404)
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ
// =========================================================================

// --- Uploads ---

// ErrPayloadTooLarge - файл больше допустимого размера.
var ErrPayloadTooLarge = New(
	CodePayloadTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge, // 413
)

// ErrUnsupportedMediaType - MIME-тип или расширение не из allow-list.
var ErrUnsupportedMediaType = New(
	CodeUnsupportedMediaType,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType, // 415
)

// ErrNoFile - в запросе нет файла.
var ErrNoFile = New(
	CodeBadRequest,
	"upload",
	"No file uploaded",
	http.StatusBadRequest,
)

// ErrTooManyFiles - в запросе больше одного файла.
var ErrTooManyFiles = New(
	CodeBadRequest,
	"upload",
	"Only one file per request is supported",
	http.StatusBadRequest,
)

// ErrInvalidUploadKind - неизвестный тип загрузки в пути.
var ErrInvalidUploadKind = New(
	CodeBadRequest,
	"upload",
	"Upload kind must be one of: avatar, project, favicon, logo",
	http.StatusBadRequest,
)

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль слишком короткий.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Profile ---

// ErrProfileNotFound - профиль с настроенным ID отсутствует.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)
