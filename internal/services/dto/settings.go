package dto

// SettingsRequest - полная замена настроек сайта
type SettingsRequest struct {
	Title       string `json:"title" validate:"max=255"`
	PageTitle   string `json:"pageTitle" validate:"max=255"`
	Favicon     string `json:"favicon" validate:"max=2048"`
	Logo        string `json:"logo" validate:"max=2048"`
	Description string `json:"description" validate:"max=5000"`
	Keywords    string `json:"keywords" validate:"max=1000"`
	Copyright   string `json:"copyright" validate:"max=255"`
	ICP         string `json:"icp" validate:"max=255"`
	Gongan      string `json:"gongan" validate:"max=255"`
}
