// Package validator adapts the domain validator to echo.
package validator

import (
	"directorio/internal/domain/validation"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	v *validation.Validator
}

// New returns the validator installed on the echo server.
func New() *EchoValidator {
	return &EchoValidator{v: validation.New()}
}

// Validate reports tag violations as a domain ValidationError.
func (ev *EchoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
