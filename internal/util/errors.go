// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrMovedValue    = errors.New("value used after move")
	ErrMissingField  = errors.New("field was never initialized")
	ErrNotDebuggable = errors.New("type does not implement debug formatting")
	ErrInvalidInput  = errors.New("invalid input provided")
)

// FieldError ties a sentinel error to the record type and field it concerns.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
