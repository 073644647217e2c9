package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Profile, error)
	// EnsureExists создает профиль с указанным ID, если его нет
	EnsureExists(db *gorm.DB, defaults *models.Profile) (bool, error)
	// UpdateColumns пишет все колонки одним UPDATE
	UpdateColumns(db *gorm.DB, id uint, columns map[string]any) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) EnsureExists(db *gorm.DB, defaults *models.Profile) (bool, error) {
	result := db.Where("id = ?", defaults.ID).FirstOrCreate(defaults)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ProfileRepositoryImpl) UpdateColumns(db *gorm.DB, id uint, columns map[string]any) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
