package services

import (
	"context"
	"errors"

	"portfolio_backend/internal/avatar"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, db *gorm.DB) (*models.Profile, error)
	// UpdateProfile пишет основные поля и, если выбран источник, патч аватара одним UPDATE
	UpdateProfile(ctx context.Context, db *gorm.DB, req *dto.UpdateProfileRequest) (*models.Profile, error)
	UpdateAvatar(ctx context.Context, db *gorm.DB, req *dto.UpdateAvatarRequest) (*models.Profile, error)
	// EnsureProfile создает профиль по умолчанию, если его еще нет
	EnsureProfile(ctx context.Context, db *gorm.DB) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	profileID   uint
}

func NewProfileService(profileRepo repositories.ProfileRepository, profileID uint) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		profileID:   profileID,
	}
}

// DefaultProfile - профиль, который создается при первом запуске
func DefaultProfile(id uint) *models.Profile {
	source := string(avatar.KindUpload)
	empty := ""
	return &models.Profile{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Default Name",
		Title:        "Default Title",
		Bio:          "Default Bio",
		Avatar:       &empty,
		AvatarSource: &source,
	}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, db *gorm.DB) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, s.profileID)
	if err != nil {
		return nil, mapProfileError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	columns := map[string]any{
		"name":     req.Name,
		"title":    req.Title,
		"bio":      req.Bio,
		"email":    req.Email,
		"github":   req.Github,
		"linkedin": req.Linkedin,
		"twitter":  req.Twitter,
		"telegram": req.Telegram,
		"youtube":  req.Youtube,
		"bilibili": req.Bilibili,
	}

	if req.AvatarSource != "" {
		patch, err := avatar.BuildFieldUpdate(avatar.Kind(req.AvatarSource), req.Params)
		if err != nil {
			return nil, err
		}
		for column, value := range patch.Columns() {
			columns[column] = value
		}
	}

	if err := s.profileRepo.UpdateColumns(db, s.profileID, columns); err != nil {
		return nil, mapProfileError(err)
	}

	logger.CtxInfo(ctx, "Profile updated", "profile_id", s.profileID, "avatar_source", req.AvatarSource)
	return s.GetProfile(ctx, db)
}

func (s *ProfileServiceImpl) UpdateAvatar(ctx context.Context, db *gorm.DB, req *dto.UpdateAvatarRequest) (*models.Profile, error) {
	patch, err := avatar.BuildFieldUpdate(avatar.Kind(req.AvatarSource), req.Params)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateColumns(db, s.profileID, patch.Columns()); err != nil {
		return nil, mapProfileError(err)
	}

	logger.CtxInfo(ctx, "Avatar updated", "profile_id", s.profileID, "avatar_source", patch.Source)
	return s.GetProfile(ctx, db)
}

func (s *ProfileServiceImpl) EnsureProfile(ctx context.Context, db *gorm.DB) error {
	created, err := s.profileRepo.EnsureExists(db, DefaultProfile(s.profileID))
	if err != nil {
		return err
	}
	if created {
		logger.CtxInfo(ctx, "Default profile created", "profile_id", s.profileID)
	}
	return nil
}

func mapProfileError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrProfileNotFound
	}
	return apperrors.PersistenceError(err)
}
