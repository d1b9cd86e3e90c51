package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the UK-specific rules on gin's binding
// validator so request structs can use `binding:"ukpostcode"` and
// `binding:"ukphone"` tags.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ukpostcode", func(fl validator.FieldLevel) bool {
		return ValidPostcode(fl.Field().String())
	})
	_ = v.RegisterValidation("ukphone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("leadservice", func(fl validator.FieldLevel) bool {
		return ValidService(fl.Field().String())
	})
}
