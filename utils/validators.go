package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("projectstatus", ValidateProjectStatusRule)
	}
}

func ValidateProjectStatusRule(fl validator.FieldLevel) bool {
	return model.ProjectStatus(fl.Field().String()).Valid()
}
