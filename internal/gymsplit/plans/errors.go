package plans

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrDayNotFound        = errors.New("day not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// ValidationError reports plan input that must not reach the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(reason, args...),
	}
}
