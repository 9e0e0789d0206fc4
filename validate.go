package mailersend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const maxSplits = 2
		name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateRequest runs declared field constraints over a request struct
// and converts failures into a *ValidationError.
func validateRequest(req any) error {
	if err := structValidator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return newFieldValidationError(verrs)
		}

		return err
	}

	return nil
}

func newFieldValidationError(verrs validator.ValidationErrors) *ValidationError {
	fields := make([]FieldError, 0, len(verrs))

	for _, err := range verrs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		fields = append(fields, FieldError{
			Field:   field,
			Tag:     err.Tag(),
			Param:   err.Param(),
			Message: fieldErrorMessage(field, err),
		})
	}

	return &ValidationError{Fields: fields}
}

func fieldErrorMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "fqdn":
		return field + " must be a valid domain name"
	case "e164":
		return field + " must be a phone number in E164 format"
	case "min":
		return fmt.Sprintf("%s must have at least %s items", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s items", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, err.Param())
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

// requireID rejects empty path parameters before any network call.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errValidationf("%s is required", name)
	}

	return nil
}
