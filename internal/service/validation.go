package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects whitespace-only strings that required lets through.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

func validationError(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, describeField(fe))
		}
		message = message + ": " + strings.Join(details, ", ")
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func describeField(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return field + " must be one of " + fe.Param()
	case "datetime":
		return field + " must be a date in YYYY-MM-DD form"
	case "min", "gt":
		return field + " is too small"
	case "max":
		return field + " is too large"
	default:
		return field + " is invalid"
	}
}

func requiredField(field, message string) error {
	return appErrors.Clone(appErrors.ErrValidation, message+": "+field+" is required")
}
