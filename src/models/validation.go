package models

import "fmt"

// ValidationError means the caller has not supplied the minimum input for the
// current step. Key is a message key resolved by i18n.Localize.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Key)
}

func NewValidationError(field, key string) error {
	return &ValidationError{Field: field, Key: key}
}
