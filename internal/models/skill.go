package models

type Skill struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:255;not null;index" json:"category"`
	Proficiency int    `gorm:"not null;default:0" json:"proficiency"` // 0..100
}
