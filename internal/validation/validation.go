// Package validation checks request payloads before any lookup or
// persistence happens. Failures are returned as *apierr.Error values.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/go-playground/validator/v10"
)

// PasswordPolicy reports whether a password is strong enough to store.
type PasswordPolicy func(password string) bool

// MinLengthPolicy accepts passwords of at least minLen runes that contain
// at least one letter and one digit.
func MinLengthPolicy(minLen int) PasswordPolicy {
	return func(password string) bool {
		if len([]rune(password)) < minLen {
			return false
		}
		var letter, digit bool
		for _, r := range password {
			switch {
			case unicode.IsLetter(r):
				letter = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return letter && digit
	}
}

type Validator struct {
	validate *validator.Validate
	policy   PasswordPolicy
}

func New(policy PasswordPolicy) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, policy: policy}
}

// Email requires the field, checks its grammar and returns it lower-cased.
func (v *Validator) Email(email *string) (string, error) {
	if email == nil {
		return "", apierr.ErrRequiredEmail
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if err := v.validate.Var(normalized, "required,email,max=254"); err != nil {
		return "", apierr.ErrInvalidEmailAddress
	}
	return normalized, nil
}

// Password requires the field and applies the configured policy.
func (v *Validator) Password(password *string) (string, error) {
	if password == nil {
		return "", apierr.ErrRequiredPassword
	}
	if !v.policy(*password) {
		return "", apierr.ErrPasswordNecessity
	}
	return *password, nil
}

// Credentials is the login precondition: both keys must be present.
func Credentials(email, password *string) error {
	if email == nil || password == nil {
		return apierr.ErrRequiredEmailAndPassword
	}
	return nil
}

// Struct runs the validate tags of a request schema and reports every
// failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], describe(fe))
	}
	return apierr.Fields(fields)
}

func describe(fe validator.FieldError) string {
	numeric := false
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		numeric = true
	}

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return apierr.MsgInvalidEmailAddress
	case "max":
		if numeric {
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		if numeric {
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
		}
		if fe.Param() == "1" {
			return "This field may not be blank."
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
