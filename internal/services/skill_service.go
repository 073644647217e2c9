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

type SkillService interface {
	ListSkills(ctx context.Context, db *gorm.DB) ([]models.Skill, error)
	CreateSkill(ctx context.Context, db *gorm.DB, req *dto.SkillRequest) (*models.Skill, error)
	UpdateSkill(ctx context.Context, db *gorm.DB, id uint, req *dto.SkillRequest) (*models.Skill, error)
	DeleteSkill(ctx context.Context, db *gorm.DB, id uint) error
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &SkillServiceImpl{skillRepo: skillRepo}
}

func (s *SkillServiceImpl) ListSkills(ctx context.Context, db *gorm.DB) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

func (s *SkillServiceImpl) CreateSkill(ctx context.Context, db *gorm.DB, req *dto.SkillRequest) (*models.Skill, error) {
	skill := &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	}
	if err := s.skillRepo.Create(db, skill); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	logger.CtxInfo(ctx, "Skill created", "skill_id", skill.ID)
	return skill, nil
}

func (s *SkillServiceImpl) UpdateSkill(ctx context.Context, db *gorm.DB, id uint, req *dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		return nil, mapSkillError(err)
	}

	skill.Name = req.Name
	skill.Category = req.Category
	skill.Proficiency = req.Proficiency

	if err := s.skillRepo.Update(db, skill); err != nil {
		return nil, mapSkillError(err)
	}
	return skill, nil
}

func (s *SkillServiceImpl) DeleteSkill(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.skillRepo.Delete(db, id); err != nil {
		return mapSkillError(err)
	}
	logger.CtxInfo(ctx, "Skill deleted", "skill_id", id)
	return nil
}

func mapSkillError(err error) error {
	if errors.Is(err, repositories.ErrSkillNotFound) {
		return apperrors.NewNotFoundError("skill", "Skill not found")
	}
	return apperrors.PersistenceError(err)
}
