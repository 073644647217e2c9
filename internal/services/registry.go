package services

import (
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	ProfileService  ProfileService
	SettingsService SettingsService
	SkillService    SkillService
	ProjectService  ProjectService
	UploadService   UploadService
	TokenManager    *auth.TokenManager
}

// NewServiceContainer собирает сервисы поверх репозиториев и хранилища
func NewServiceContainer(cfg *config.Config, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, tokens),
		ProfileService:  NewProfileService(profileRepo, cfg.Profile.ID),
		SettingsService: NewSettingsService(repositories.NewSettingsRepository()),
		SkillService:    NewSkillService(repositories.NewSkillRepository()),
		ProjectService:  NewProjectService(repositories.NewProjectRepository()),
		UploadService: NewUploadService(
			store,
			profileRepo,
			cfg.Profile.ID,
			GetDefaultUploadConfig(cfg.Upload.MaxSize),
		),
		TokenManager: tokens,
	}
}
