// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validate "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *validate.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validate.New(validate.WithRequiredStructEnabled()),
	}
}

// Validate validates the given struct against its `validate` tags.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
