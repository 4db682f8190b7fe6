package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"hotelfin/shared/dto"
	"hotelfin/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("decimal", func(fl val.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(dto.Decimal); ok {
			return d.Valid()
		}

		return false
	})

	if err != nil {
		panic(err)
	}
}

// RequestMessager lets a request DTO own the rejection message for its fields.
// The struct field name of the first failing field is passed in; an empty
// string means the body could not be decoded at all.
type RequestMessager interface {
	ValidationMessage(field string) string
}

// Validate reads from the given io.Reader into the given struct, and then performs
// validation on the struct using the validator package. If the struct is invalid
// according to the validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		if messager, ok := any(data).(RequestMessager); ok {
			return failure.BadRequestFromString(messager.ValidationMessage("")) //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors val.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]

		if messager, ok := any(data).(RequestMessager); ok {
			return failure.BadRequestFromString(messager.ValidationMessage(first.StructField())) //nolint:wrapcheck
		}

		return failure.BadRequestFromString(message(first)) //nolint:wrapcheck
	}

	return failure.BadRequest(err) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		var validationErrors val.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return failure.BadRequestFromString(message(validationErrors[0])) //nolint:wrapcheck
		}

		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil
}
