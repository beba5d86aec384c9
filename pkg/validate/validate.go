package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	_ = validate.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return IsLuhn(fl.Field().String())
	})
}

// IsLuhn reports whether s is a digit string with a valid Luhn checksum.
func IsLuhn(s string) bool {
	return s != "" && goluhn.Validate(s) == nil
}

// Struct validates v against its `validate` tags and flattens the failures
// into a single readable error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "luhn":
		return field + " is not a valid number"
	case "url":
		return field + " must be a URL"
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
