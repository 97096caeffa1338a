package config

import (
	"LittleSteps/internal/entity"
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("gametype", func(fl validator.FieldLevel) bool {
		return entity.IsValidGameType(fl.Field().String())
	})

	_ = validate.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
		return entity.IsValidSex(fl.Field().String())
	})

	return validate
}
