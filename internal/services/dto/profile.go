package dto

import "portfolio_backend/internal/avatar"

// UpdateProfileRequest - основные поля профиля плюс необязательная смена аватара.
// Если AvatarSource пустой, колонки аватара не трогаются.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Title string `json:"title" validate:"required,max=255"`
	Bio   string `json:"bio" validate:"max=5000"`

	Email    string `json:"email" validate:"omitempty,email"`
	Github   string `json:"github" validate:"omitempty,max=255"`
	Linkedin string `json:"linkedin" validate:"omitempty,max=255"`
	Twitter  string `json:"twitter" validate:"omitempty,max=255"`
	Telegram string `json:"telegram" validate:"omitempty,max=255"`
	Youtube  string `json:"youtube" validate:"omitempty,max=255"`
	Bilibili string `json:"bilibili" validate:"omitempty,max=255"`

	AvatarSource string `json:"avatarSource" validate:"omitempty,is-avatar-source"`
	avatar.Params
}

// UpdateAvatarRequest - только выбор источника аватара
type UpdateAvatarRequest struct {
	AvatarSource string `json:"avatarSource" validate:"required,is-avatar-source"`
	avatar.Params
}
