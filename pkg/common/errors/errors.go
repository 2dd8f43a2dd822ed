package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gobuf library

var (
	// ErrUnexpectedEOF indicates that the stream ended before an exact-length
	// read could be satisfied
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrInvalidUTF8 indicates that buffered bytes cannot form valid UTF-8
	ErrInvalidUTF8 = errors.New("stream did not contain valid utf-8")

	// ErrCapacityTooSmall indicates a buffer capacity below the supported minimum
	ErrCapacityTooSmall = errors.New("buffer capacity is too small")
)

// IsUnexpectedEOF returns true if the error indicates that the stream ended
// mid-read
func IsUnexpectedEOF(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}

// IsInvalidUTF8 returns true if the error indicates malformed UTF-8 data
func IsInvalidUTF8(err error) bool {
	return errors.Is(err, ErrInvalidUTF8)
}

// ValidationError describes an invalid construction or configuration
// parameter. It carries enough context to point at the offending field.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a usage hint to the error and returns it for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s (%v): %s", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
