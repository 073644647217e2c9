package models

// UploadKind - категория загружаемого файла, определяет каталог и допустимые типы
type UploadKind string

const (
	UploadKindAvatar  UploadKind = "avatar"
	UploadKindProject UploadKind = "project"
	UploadKindFavicon UploadKind = "favicon"
	UploadKindLogo    UploadKind = "logo"
)

func (k UploadKind) Valid() bool {
	switch k {
	case UploadKindAvatar, UploadKindProject, UploadKindFavicon, UploadKindLogo:
		return true
	}
	return false
}
