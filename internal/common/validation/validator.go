package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// Validator accumulates validation errors
type Validator struct {
	errors []error
	prefix string
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		errors: make([]error, 0),
	}
}

// NewValidatorWithPrefix creates a new validator with a prefix for error messages
func NewValidatorWithPrefix(prefix string) *Validator {
	return &Validator{
		errors: make([]error, 0),
		prefix: prefix,
	}
}

// RequireString validates that a string is not empty
func (v *Validator) RequireString(value, name string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.addError("%s is required", name)
	}
	return v
}

// RequirePositive validates that an integer is positive
func (v *Validator) RequirePositive(value int, name string) *Validator {
	if value <= 0 {
		v.addError("%s must be positive", name)
	}
	return v
}

// RequireNonNegative validates that an integer is non-negative
func (v *Validator) RequireNonNegative(value int, name string) *Validator {
	if value < 0 {
		v.addError("%s must be non-negative", name)
	}
	return v
}

// RequireURL validates that a string is a valid URL
func (v *Validator) RequireURL(value, name string) *Validator {
	if value == "" {
		v.addError("%s is required", name)
		return v
	}

	u, err := url.Parse(value)
	if err != nil {
		v.addError("%s must be a valid URL: %v", name, err)
		return v
	}

	if u.Scheme == "" || u.Host == "" {
		v.addError("%s must be a complete URL with scheme and host", name)
	}

	return v
}

// RequireOneOf validates that a value is one of the allowed values
func (v *Validator) RequireOneOf(value string, allowed []string, name string) *Validator {
	if value == "" {
		v.addError("%s is required", name)
		return v
	}

	for _, a := range allowed {
		if value == a {
			return v
		}
	}

	v.addError("%s must be one of: %s", name, strings.Join(allowed, ", "))
	return v
}

// RequireRange validates that a value is within a range
func (v *Validator) RequireRange(value, min, max int, name string) *Validator {
	if value < min || value > max {
		v.addError("%s must be between %d and %d", name, min, max)
	}
	return v
}

// Validate runs a custom validation function
func (v *Validator) Validate(fn func() error) *Validator {
	if err := fn(); err != nil {
		v.errors = append(v.errors, err)
	}
	return v
}

// ValidateIf runs a validation function if a condition is true
func (v *Validator) ValidateIf(condition bool, fn func() error) *Validator {
	if condition {
		return v.Validate(fn)
	}
	return v
}

// addError adds an error with optional prefix
func (v *Validator) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if v.prefix != "" {
		msg = fmt.Sprintf("%s: %s", v.prefix, msg)
	}
	v.errors = append(v.errors, fmt.Errorf("%s", msg))
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []error {
	return v.errors
}

// Error returns the validation error or nil if there are no errors
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}

	if len(v.errors) == 1 {
		return v.errors[0]
	}

	parts := make([]string, len(v.errors))
	for i, err := range v.errors {
		parts[i] = err.Error()
	}

	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}
