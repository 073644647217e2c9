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

type ProjectService interface {
	ListProjects(ctx context.Context, db *gorm.DB) ([]models.Project, error)
	GetProject(ctx context.Context, db *gorm.DB, id uint) (*models.Project, error)
	CreateProject(ctx context.Context, db *gorm.DB, req *dto.ProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, db *gorm.DB, id uint, req *dto.ProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, db *gorm.DB, id uint) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context, db *gorm.DB) ([]models.Project, error) {
	projects, err := s.projectRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *ProjectServiceImpl) GetProject(ctx context.Context, db *gorm.DB, id uint) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return nil, mapProjectError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, db *gorm.DB, req *dto.ProjectRequest) (*models.Project, error) {
	project := &models.Project{}
	fillProject(project, req)

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	logger.CtxInfo(ctx, "Project created", "project_id", project.ID)
	return project, nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, db *gorm.DB, id uint, req *dto.ProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return nil, mapProjectError(err)
	}

	fillProject(project, req)
	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, mapProjectError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.projectRepo.Delete(db, id); err != nil {
		return mapProjectError(err)
	}
	logger.CtxInfo(ctx, "Project deleted", "project_id", id)
	return nil
}

func fillProject(project *models.Project, req *dto.ProjectRequest) {
	project.Title = req.Title
	project.Description = req.Description
	project.ImageURL = req.ImageURL
	project.ProjectURL = req.ProjectURL
	project.SetTechnologies(req.Technologies)
}

func mapProjectError(err error) error {
	if errors.Is(err, repositories.ErrProjectNotFound) {
		return apperrors.NewNotFoundError("project", "Project not found")
	}
	return apperrors.PersistenceError(err)
}
