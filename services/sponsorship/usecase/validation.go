package usecase

import (
	"errors"
	"reflect"
	"sponsorship/domain"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks the `validate` tags of req and turns the failures into a
// *domain.ValidationError keyed by json field name.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return domain.NewValidationError(messages)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return "Ensure this value has at least " + fe.Param() + " characters"
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters"
	case "oneof":
		return "Select one of: " + fe.Param()
	case "alphanum":
		return "Only letters and digits are allowed"
	case "nefield":
		return "Must differ from the current password"
	case "gt":
		return "This field is required"
	default:
		return "Enter a valid value"
	}
}
