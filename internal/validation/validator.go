package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/utils"
)

var (
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]{3,32}$`)
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("username", validateUsername)
		validate = v
	})
	return validate
}

// Struct validates s against its `validate` tags and reports the first
// failing field as a validation error.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.ErrInvalidRequest
	}
	return apperrors.Validation(message(strings.ToLower(verrs[0].Field()), verrs[0]))
}

// Var validates a single value against tag.
func Var(field string, value interface{}, tag string) error {
	if err := instance().Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.Validation(message(field, verrs[0]))
		}
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "phone":
		return fmt.Sprintf("%s must be a phone number", field)
	case "username":
		return fmt.Sprintf("%s must be 3-32 lower-case letters, digits, '.', '_' or '-'", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, fe.Param())
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(utils.NormalizeUsername(fl.Field().String()))
}
