package services

import (
	"context"
	"errors"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SettingsService interface {
	// GetSettings никогда не возвращает 404: до первого сохранения отдаются значения по умолчанию
	GetSettings(ctx context.Context, db *gorm.DB) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, db *gorm.DB, req *dto.SettingsRequest) (*models.SiteSettings, error)
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) GetSettings(ctx context.Context, db *gorm.DB) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(db)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			defaults := models.DefaultSiteSettings()
			return &defaults, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, db *gorm.DB, req *dto.SettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.GetSettings(ctx, db)
	if err != nil {
		return nil, err
	}

	settings.Title = req.Title
	settings.PageTitle = req.PageTitle
	settings.Favicon = req.Favicon
	settings.Logo = req.Logo
	settings.Description = req.Description
	settings.Keywords = req.Keywords
	settings.Copyright = req.Copyright
	settings.ICP = req.ICP
	settings.Gongan = req.Gongan

	if err := s.settingsRepo.Save(db, settings); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "Site settings saved")
	return settings, nil
}
