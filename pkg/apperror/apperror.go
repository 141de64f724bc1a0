// Package apperror defines the recoverable domain error families raised by
// the usecases: a referenced record that does not exist, and a uniqueness
// violation. Anything else reaching the HTTP boundary is treated as an
// internal error.
package apperror

import "fmt"

// NotFoundError reports that a referenced entity id does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound builds a NotFoundError with a formatted message naming the
// missing resource.
func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError with a formatted message naming the
// conflicting field.
func Conflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
