package presenters

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		resp.Errors = fieldErrors(validationErrs)
	} else if err != nil {
		resp.Error = err.Error()
	}

	return c.Status(status).JSON(resp)
}

// fieldErrors flattens validator errors into one message per field so the
// client can surface them next to the offending input.
func fieldErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "this field is required"
		case "email":
			out[field] = "must be a valid email address"
		case "min":
			out[field] = "must be at least " + fe.Param()
		case "max":
			out[field] = "must be at most " + fe.Param()
		case "oneof":
			out[field] = "must be one of: " + fe.Param()
		case "eqfield":
			out[field] = "does not match " + strings.ToLower(fe.Param())
		case "uuid":
			out[field] = "must be a valid UUID"
		case "password":
			out[field] = "must be at least 8 characters with an upper case letter, a lower case letter and a digit"
		case "invitecode":
			out[field] = "must be a 6 character code like ABC-123"
		default:
			out[field] = "is invalid"
		}
	}
	return out
}
