package httpapi

import (
	"regexp"
	"strings"
)

// FieldError is a single violation in a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator accumulates declarative per-field checks. Handlers run their
// checks up front and short-circuit before touching the store.
type Validator struct {
	errors []FieldError
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) fail(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

func (v *Validator) Require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.fail(field, message)
	}
}

func (v *Validator) Email(field, value, message string) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		v.fail(field, message)
	}
}

func (v *Validator) MinLength(field, value string, min int, message string) {
	if len(value) < min {
		v.fail(field, message)
	}
}

func (v *Validator) NonEmptyList(field string, length int, message string) {
	if length == 0 {
		v.fail(field, message)
	}
}

func (v *Validator) OneOf(field, value string, allowed []string, message string) {
	for _, candidate := range allowed {
		if candidate == value {
			return
		}
	}
	v.fail(field, message)
}

func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

func (v *Validator) Errors() []FieldError {
	return v.errors
}
