// Package validation checks form and API payloads and turns failures into
// field errors staff can act on.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"streetadmin/apperr"
)

type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct validates dst and returns an apperr.Invalid carrying field errors
// keyed by JSON name.
func Struct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	return apperr.InvalidErr("Please correct the highlighted fields.", FromError(err))
}

// FromError maps validator errors to messages. Other errors end up under "_".
func FromError(err error) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "The submitted data is invalid."
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	case "alphanum":
		return "Use letters and numbers only."
	case "oneof":
		return "Choose one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "gte":
		return "Must be at least " + param + "."
	case "lte":
		return "Must be at most " + param + "."
	case "datetime":
		return "Enter a date as YYYY-MM-DD."
	default:
		return "Invalid value."
	}
}
