// Package validation implements the per-field form checks used by the
// register, profile and password-reset forms.
//
// Each field has an independent [Validator] mapping a raw value (and the whole
// form, for cross-field rules) to an error message, or "" when the value is
// valid. Fields form a closed enumeration; the dispatch table is an explicit
// map keyed by [Field] rather than a dynamic string lookup.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Field identifies a form field with a validation rule.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldAge             Field = "age"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Form holds raw field values keyed by [Field].
type Form map[Field]string

// Validator maps a field value (and the whole form for cross-field checks) to
// an error message, or "" when valid.
type Validator func(value string, form Form) string

// MinimumAge is the youngest accepted account age.
const MinimumAge = 13

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// PasswordSymbols is the fixed set of symbols a password must draw from.
const PasswordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
)

var validators = map[Field]Validator{
	FieldFirstName:       requiredName("First name"),
	FieldLastName:        requiredName("Last name"),
	FieldAge:             validateAge,
	FieldEmail:           validateEmail,
	FieldPassword:        validatePassword,
	FieldConfirmPassword: validateConfirmPassword,
}

// ValidateField runs the validator for a single field.
// Unknown fields validate clean.
func ValidateField(field Field, value string, form Form) string {
	validator, ok := validators[field]
	if !ok {
		return ""
	}
	return validator(value, form)
}

// ValidateForm validates every field present in the form and collects a
// mapping of field to error message for every field that fails. Fields absent
// from the form are not checked; a fully valid form yields an empty map.
func ValidateForm(form Form) map[Field]string {
	errs := make(map[Field]string)
	for field, value := range form {
		if msg := ValidateField(field, value, form); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

func requiredName(label string) Validator {
	return func(value string, _ Form) string {
		if strings.TrimSpace(value) == "" {
			return label + " is required"
		}
		return ""
	}
}

func validateAge(value string, _ Form) string {
	age, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "Age must be a number"
	}
	if age < MinimumAge {
		return "You must be at least 13 years old"
	}
	return ""
}

func validateEmail(value string, _ Form) string {
	if !emailPattern.MatchString(value) {
		return "Enter a valid email address"
	}
	return ""
}

func validatePassword(value string, _ Form) string {
	if len(value) < MinPasswordLength {
		return "Password must be at least 8 characters"
	}
	if !uppercasePattern.MatchString(value) {
		return "Password must contain an uppercase letter"
	}
	if !digitPattern.MatchString(value) {
		return "Password must contain a digit"
	}
	if !strings.ContainsAny(value, PasswordSymbols) {
		return "Password must contain a symbol"
	}
	return ""
}

func validateConfirmPassword(value string, form Form) string {
	if value != form[FieldPassword] {
		return "Passwords do not match"
	}
	return ""
}
