package infrastructures

import (
	goerrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	// Report violations under the field's json name so the admin UI can
	// attach messages to the matching form input.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

func (v *Validator) Validate(i interface{}) error {
	if i == nil {
		return errors.NewBadRequestError("Invalid request body")
	}

	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if goerrors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = messageForTag(fieldError)
		}
		return errors.NewValidationError(fields)
	}

	return errors.NewBadRequestError(err.Error())
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "required_if":
		return "This field is required"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldError.Param())
	case "url":
		return "Must be a valid URL"
	case "uuid":
		return "Must be a valid ID"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldError.Param())
	default:
		return fmt.Sprintf("Invalid value (%s)", fieldError.Tag())
	}
}
