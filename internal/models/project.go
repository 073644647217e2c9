package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	ImageURL     string         `gorm:"column:image_url" json:"imageUrl"`
	ProjectURL   string         `gorm:"column:project_url" json:"projectUrl"`
	Technologies datatypes.JSON `json:"technologies"` // ["Go", "PostgreSQL"]
}

func (p *Project) GetTechnologies() []string {
	technologies := []string{}
	if len(p.Technologies) > 0 {
		_ = json.Unmarshal(p.Technologies, &technologies)
	}
	return technologies
}

func (p *Project) SetTechnologies(technologies []string) {
	if technologies == nil {
		technologies = []string{}
	}
	data, _ := json.Marshal(technologies)
	p.Technologies = datatypes.JSON(data)
}
