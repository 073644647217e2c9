package validator

import (
	"log"

	"portfolio_backend/internal/avatar"
	"portfolio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные теги
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-avatar-source': upload | url | qq | gravatar
	mustRegister("is-avatar-source", validateAvatarSource)

	// 'is-upload-kind': avatar | project | favicon | logo
	mustRegister("is-upload-kind", validateUploadKind)
}

func validateAvatarSource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // для пустых есть 'required'
	}
	return avatar.Kind(value).Valid()
}

func validateUploadKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UploadKind(value).Valid()
}
