package errors

import (
	"net/http"
	"strings"
)

// FieldViolation is one rejected input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field violation of one input so they can be reported together.
type ValidationError struct {
	violations []FieldViolation
}

// NewValidationError returns nil when there are no violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		parts = append(parts, v.Field+": "+v.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return e.Error()
}

// Violations returns the rejected fields in the order they were found.
func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
