package dto

type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
}
