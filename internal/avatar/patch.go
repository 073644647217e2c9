package avatar

import (
	"portfolio_backend/internal/models"
)

// Patch - полный набор колонок аватара. Поля неактивных групп всегда nil
// и пишутся в БД как NULL.
type Patch struct {
	Avatar         string
	Source         Kind
	CustomURL      *string
	QQNumber       *string
	GravatarEmail  *string
	GravatarServer *string
}

// BuildFieldUpdate валидирует параметры и возвращает патч для одного UPDATE
func BuildFieldUpdate(kind Kind, p Params) (Patch, error) {
	src, err := FromParams(kind, p)
	if err != nil {
		return Patch{}, err
	}
	return PatchFor(src), nil
}

// PatchFor строит патч из уже проверенного источника
func PatchFor(src Source) Patch {
	patch := Patch{
		Avatar: src.Resolve(),
		Source: src.Kind(),
	}
	src.fill(&patch)
	return patch
}

func (Upload) fill(*Patch) {}

func (s URL) fill(p *Patch) {
	p.CustomURL = strPtr(s.Address)
}

func (s QQ) fill(p *Patch) {
	p.QQNumber = strPtr(s.Number)
}

func (s Gravatar) fill(p *Patch) {
	p.GravatarEmail = strPtr(s.Email)
	p.GravatarServer = strPtr(s.Server)
}

// Columns - карта для gorm Updates. Содержит все шесть колонок, чтобы
// неактивные группы были явно обнулены.
func (p Patch) Columns() map[string]any {
	return map[string]any{
		"avatar":                 p.Avatar,
		"avatar_source":          string(p.Source),
		"avatar_custom_url":      nullable(p.CustomURL),
		"avatar_qq_number":       nullable(p.QQNumber),
		"avatar_gravatar_email":  nullable(p.GravatarEmail),
		"avatar_gravatar_server": nullable(p.GravatarServer),
	}
}

// ApplyTo переносит патч в модель (после успешного UPDATE)
func (p Patch) ApplyTo(profile *models.Profile) {
	source := string(p.Source)
	avatar := p.Avatar

	profile.Avatar = &avatar
	profile.AvatarSource = &source
	profile.AvatarCustomURL = p.CustomURL
	profile.AvatarQQNumber = p.QQNumber
	profile.AvatarGravatarEmail = p.GravatarEmail
	profile.AvatarGravatarServer = p.GravatarServer
}

func strPtr(s string) *string {
	return &s
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
