package dto

type ProjectRequest struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty,max=2048"`
	ProjectURL   string   `json:"projectUrl" validate:"omitempty,http_url"`
	Technologies []string `json:"technologies" validate:"max=50,dive,required,max=64"`
}
