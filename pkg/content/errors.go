package content

import "fmt"

// ValidationError reports a single field of an entity that fails validation.
// Validate methods return the first failure found, depth first.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s.%s: %s", e.Entity, e.Field, e.Reason)
}

func invalid(entity, field, reason string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}
