package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Sentinel errors and error types shared across the domain
// ---------------------------------------------------------------------------

var (
	// ErrNotFound marks a lookup for an entity that does not exist.
	// Surfaced as 404 by the presentation layer; fatal to an underwriting run.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatusTransition marks a rejected application status change.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrIndeterminateRatio marks a financial ratio whose denominator is zero.
	ErrIndeterminateRatio = errors.New("indeterminate ratio: zero denominator")
)

// ValidationError marks malformed or out-of-range caller input.
// Surfaced as 400 by the presentation layer; never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
