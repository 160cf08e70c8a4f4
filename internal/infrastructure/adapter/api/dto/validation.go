package dto

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the phone and digits_spaces rules on
// gin's binding validator. Call once before the router starts serving.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("phone", validPhone); err != nil {
		return err
	}
	return v.RegisterValidation("digits_spaces", validDigitsSpaces)
}

// validPhone accepts digits, spaces and '+'
func validPhone(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsDigit(r) && r != ' ' && r != '+' {
			return false
		}
	}
	return true
}

// validDigitsSpaces accepts digits and spaces only
func validDigitsSpaces(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}
