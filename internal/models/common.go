package models

import (
	"time"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All - модели для AutoMigrate
func All() []any {
	return []any{
		&User{},
		&Profile{},
		&SiteSettings{},
		&Skill{},
		&Project{},
	}
}
