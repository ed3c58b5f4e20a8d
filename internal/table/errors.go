package table

import (
	"errors"
	"fmt"
)

// ParameterError reports misuse of a table primitive: malformed level
// sets, mismatched key widths, or invalid reduction requests.
type ParameterError struct {
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return e.Message
}

// IsParameterError returns true if the error is a table ParameterError.
// Uses errors.As to handle wrapped errors.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

func newParameterErrorf(format string, args ...any) *ParameterError {
	return &ParameterError{Message: fmt.Sprintf(format, args...)}
}
