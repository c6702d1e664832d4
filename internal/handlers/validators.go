package handlers

import (
	"factboard/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Binding-level checks mirror models.FactInput.Validate so malformed
// input is rejected at the door. Both read the same shared rules.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return models.ValidSourceURL(fl.Field().String())
	})
	v.RegisterValidation("factcategory", func(fl validator.FieldLevel) bool {
		return models.ValidCategory(fl.Field().String())
	})
}
