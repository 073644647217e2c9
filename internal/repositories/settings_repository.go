package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSettingsNotFound = errors.New("site settings not found")

type SettingsRepository interface {
	Get(db *gorm.DB) (*models.SiteSettings, error)
	Save(db *gorm.DB, settings *models.SiteSettings) error
}

type SettingsRepositoryImpl struct{}

func NewSettingsRepository() SettingsRepository {
	return &SettingsRepositoryImpl{}
}

func (r *SettingsRepositoryImpl) Get(db *gorm.DB) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := db.First(&settings, models.SiteSettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save - upsert единственной строки настроек
func (r *SettingsRepositoryImpl) Save(db *gorm.DB, settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	return db.Save(settings).Error
}
