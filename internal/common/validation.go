package common

import (
	"fmt"
	"strings"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// ValidationRule checks one field value, returning nil when it passes.
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// Error returns a combined error message
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	msgs := make([]string, len(v.errors))
	for i, e := range v.errors {
		msgs[i] = e.Error()
	}
	return NewAppError("VALIDATION_ERROR", strings.Join(msgs, "; "), ErrValidation)
}

// Required fails on empty strings and nil values.
func Required() ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		switch val := value.(type) {
		case nil:
			return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
		case string:
			if strings.TrimSpace(val) == "" {
				return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
			}
		}
		return nil
	}
}

// NonNegative fails on negative numeric values.
func NonNegative() ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		switch val := value.(type) {
		case int:
			if val < 0 {
				return &ValidationError{Field: fieldName, Value: value, Message: "must not be negative"}
			}
		case int64:
			if val < 0 {
				return &ValidationError{Field: fieldName, Value: value, Message: "must not be negative"}
			}
		case float64:
			if val < 0 {
				return &ValidationError{Field: fieldName, Value: value, Message: "must not be negative"}
			}
		}
		return nil
	}
}
