package handlers

import (
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers содержит все обработчики приложения
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ProfileHandler  *ProfileHandler
	SettingsHandler *SettingsHandler
	SkillHandler    *SkillHandler
	ProjectHandler  *ProjectHandler
	UploadHandler   *UploadHandler
	HealthHandler   *HealthHandler
}

func NewAppHandlers(svc *services.ServiceContainer, requireAuth gin.HandlerFunc, maxFileSize int64) *AppHandlers {
	base := NewBaseHandler(validator.New(), requireAuth)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, svc.AuthService),
		ProfileHandler:  NewProfileHandler(base, svc.ProfileService),
		SettingsHandler: NewSettingsHandler(base, svc.SettingsService),
		SkillHandler:    NewSkillHandler(base, svc.SkillService),
		ProjectHandler:  NewProjectHandler(base, svc.ProjectService),
		UploadHandler:   NewUploadHandler(base, svc.UploadService, maxFileSize),
		HealthHandler:   NewHealthHandler(base),
	}
}

// RegisterAPI - все маршруты под /api
func (h *AppHandlers) RegisterAPI(api *gin.RouterGroup) {
	h.AuthHandler.RegisterRoutes(api)
	h.ProfileHandler.RegisterRoutes(api)
	h.SettingsHandler.RegisterRoutes(api)
	h.SkillHandler.RegisterRoutes(api)
	h.ProjectHandler.RegisterRoutes(api)
	h.UploadHandler.RegisterRoutes(api)
}
