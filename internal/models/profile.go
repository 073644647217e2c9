package models

// Profile - единственная запись профиля, ID задается в конфиге.
//
// Группы полей аватара взаимоисключающие: заполнена только группа текущего
// AvatarSource, остальные NULL. Записывать их можно только через avatar.Patch.
type Profile struct {
	BaseModel
	Name  string `gorm:"size:255;not null" json:"name"`
	Title string `gorm:"size:255;not null" json:"title"`
	Bio   string `gorm:"type:text;not null" json:"bio"`

	Avatar               *string `gorm:"column:avatar" json:"avatar"`
	AvatarSource         *string `gorm:"column:avatar_source;size:16" json:"avatarSource"`
	AvatarCustomURL      *string `gorm:"column:avatar_custom_url" json:"avatarCustomUrl"`
	AvatarQQNumber       *string `gorm:"column:avatar_qq_number;size:32" json:"avatarQQNumber"`
	AvatarGravatarEmail  *string `gorm:"column:avatar_gravatar_email" json:"avatarGravatarEmail"`
	AvatarGravatarServer *string `gorm:"column:avatar_gravatar_server" json:"avatarGravatarServer"`

	Email    string `gorm:"size:255" json:"email"`
	Github   string `gorm:"size:255" json:"github"`
	Linkedin string `gorm:"size:255" json:"linkedin"`
	Twitter  string `gorm:"size:255" json:"twitter"`
	Telegram string `gorm:"size:255" json:"telegram"`
	Youtube  string `gorm:"size:255" json:"youtube"`
	Bilibili string `gorm:"size:255" json:"bilibili"`
}
