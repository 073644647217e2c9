package handlers

import (
	"errors"
	"net/http"
	"strings"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead - запас на границы и заголовки формы сверх лимита файла
const multipartOverhead = 1 << 20

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	maxFileSize   int64
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/upload")
	uploads.Use(h.requireAuth)
	{
		uploads.POST("/:kind", h.UploadFile)
	}
}

// UploadFile - POST /upload/:kind, multipart с одним файлом
func (h *UploadHandler) UploadFile(c *gin.Context) {
	kind := models.UploadKind(c.Param("kind"))
	if !kind.Valid() {
		h.HandleServiceError(c, apperrors.ErrInvalidUploadKind)
		return
	}

	// Тело больше лимита обрывается, не дочитываясь до конца
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	if err := c.Request.ParseMultipartForm(h.maxFileSize + multipartOverhead); err != nil {
		switch {
		case isBodyTooLarge(err):
			h.HandleServiceError(c, apperrors.ErrPayloadTooLarge)
		case errors.Is(err, http.ErrNotMultipart):
			h.HandleServiceError(c, apperrors.NewBadRequestError("Request must be multipart/form-data"))
		default:
			h.HandleServiceError(c, apperrors.NewBadRequestError("Failed to parse form: "+err.Error()))
		}
		return
	}
	defer c.Request.MultipartForm.RemoveAll()

	response, err := h.uploadService.Upload(c.Request.Context(), h.GetDB(c), kind, c.Request.MultipartForm)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, response)
}

// multipart не всегда оборачивает ошибку MaxBytesReader через %w
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
