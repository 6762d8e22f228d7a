package service

import (
	"errors"
	"fmt"
)

// ValidationError marks input errors caught before any store call.
// Handlers map it to HTTP 400.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// invalidf builds a ValidationError with a formatted message
func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
