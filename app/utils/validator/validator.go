package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"vocablo/app/domain"
)

// Validator wraps the go-playground validator with custom rules.
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules.
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns the first failure as a
// domain.ValidationError, so callers can surface a single field message.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.NewValidationError("", "invalid input")
	}

	first := errs[0]
	return domain.NewValidationError(first.Field(), messageFor(first))
}

// ValidateVar validates a single variable against a tag expression.
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// messageFor maps a failed rule to a user-presentable message.
func messageFor(err validator.FieldError) string {
	field := err.Field()
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", field)
	case "proficiency_level":
		return "level must be one of: beginner, elementary, intermediate, advanced"
	case "topic":
		return "topic must be a short non-empty phrase"
	case "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// registerCustomValidators registers vocablo-specific validation rules.
func registerCustomValidators(validate *validator.Validate) {
	// Proficiency tier selected during onboarding.
	validate.RegisterValidation("proficiency_level", func(fl validator.FieldLevel) bool {
		return domain.ProficiencyLevel(fl.Field().String()).IsValid()
	})

	// Topic: free-form but bounded, no control characters.
	validate.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
		topic := fl.Field().String()
		if topic == "" || len(topic) > 100 {
			return false
		}
		for _, r := range topic {
			if r < 0x20 {
				return false
			}
		}
		return true
	})
}

// Helper validation functions

// IsValidEmail checks if an email is valid.
func IsValidEmail(email string) bool {
	v := New()
	return v.ValidateVar(email, "required,email") == nil
}

// IsValidUUID checks if a string is a valid UUID.
func IsValidUUID(id string) bool {
	v := New()
	return v.ValidateVar(id, "required,uuid4") == nil
}
