package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	List(db *gorm.DB) ([]models.Skill, error)
	FindByID(db *gorm.DB, id uint) (*models.Skill, error)
	Create(db *gorm.DB, skill *models.Skill) error
	Update(db *gorm.DB, skill *models.Skill) error
	Delete(db *gorm.DB, id uint) error
	Count(db *gorm.DB) (int64, error)
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

func (r *SkillRepositoryImpl) List(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Order("category ASC").Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) Create(db *gorm.DB, skill *models.Skill) error {
	return db.Create(skill).Error
}

func (r *SkillRepositoryImpl) Update(db *gorm.DB, skill *models.Skill) error {
	result := db.Model(skill).Select("name", "category", "proficiency").Updates(skill)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
