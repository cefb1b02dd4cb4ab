package presenters

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Error   any    `json:"error,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	FieldError struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
		Param string `json:"param,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse unpacks validator errors into field-level detail; any other
// error is reported as its message string.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	response := Response{
		Status:  false,
		Message: message,
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, FieldError{
				Field: fieldError.Field(),
				Rule:  fieldError.Tag(),
				Param: fieldError.Param(),
			})
		}
		response.Error = fields
	} else if err != nil {
		response.Error = err.Error()
	}

	return c.Status(code).JSON(response)
}
