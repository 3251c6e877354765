package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the scheduling engine. The HTTP layer maps them to
// status codes; Conflict in particular must reach the client as-is so it can
// refresh availability and prompt re-selection.
const (
	CodeNotFound   = "notFound"
	CodeConflict   = "conflict"
	CodeValidation = "validation"
)

type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &SchedulingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &SchedulingError{Code: CodeConflict, Message: msg}
}

func NewValidationError(msg string) error {
	return &SchedulingError{Code: CodeValidation, Message: msg}
}

func codeOf(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found scheduling error.
func IsNotFound(err error) bool { return codeOf(err) == CodeNotFound }

// IsConflict reports whether err is a slot conflict.
func IsConflict(err error) bool { return codeOf(err) == CodeConflict }

// IsValidation reports whether err is a malformed-input error.
func IsValidation(err error) bool { return codeOf(err) == CodeValidation }
