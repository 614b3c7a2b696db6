package msgbox

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no message exists for the requested id.
	ErrNotFound = errors.New("message not found")
	// ErrConflict is returned by Store.Put when the message id is already taken.
	ErrConflict = errors.New("message id already exists")
	// ErrUnavailable wraps every backend failure.
	ErrUnavailable = errors.New("store unavailable")
)

// ValidationError reports a malformed or incomplete client input.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Reason
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err contains a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Unavailable wraps a backend error so it matches ErrUnavailable while keeping the cause.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
