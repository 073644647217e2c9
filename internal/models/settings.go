package models

// SiteSettingsID - настройки сайта всегда хранятся в одной строке
const SiteSettingsID uint = 1

type SiteSettings struct {
	BaseModel
	Title       string `gorm:"size:255" json:"title"`
	PageTitle   string `gorm:"size:255" json:"pageTitle"`
	Favicon     string `json:"favicon"`
	Logo        string `json:"logo"`
	Description string `gorm:"type:text" json:"description"`
	Keywords    string `gorm:"type:text" json:"keywords"`
	Copyright   string `json:"copyright"`
	ICP         string `gorm:"column:icp" json:"icp"`
	Gongan      string `json:"gongan"`
}

// DefaultSiteSettings - то, что отдается до первого сохранения
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		BaseModel: BaseModel{ID: SiteSettingsID},
		Title:     "My Portfolio",
		PageTitle: "My Portfolio",
	}
}
