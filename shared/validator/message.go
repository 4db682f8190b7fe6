package validator

import (
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// message builds a readable fallback message for DTOs that don't carry their own.
func message(fieldError val.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required", "required_with":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
	case "decimal":
		return fmt.Sprintf("%s must be a valid number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
