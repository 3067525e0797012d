package utils

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"Family-Meal-Planner/pkg/invite"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("password", validatePassword)
	_ = Validate.RegisterValidation("invitecode", validateInviteCode)
}

// validatePassword requires at least 8 characters with one upper, one lower
// and one digit.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// validateInviteCode accepts anything that normalizes to a valid code, so
// "abc123" passes here and is canonicalized by the service.
func validateInviteCode(fl validator.FieldLevel) bool {
	return invite.IsValidFormat(fl.Field().String())
}
