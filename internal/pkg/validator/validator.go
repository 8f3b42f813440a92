// Package validator provides a wrapper around the go-playground/validator library,
// adding support for thread-safe initialization and standardized error formatting.
//
// It validates structs using tags (e.g., `validate:"required,eth_addr"`) and single
// values using tag expressions, returning consistent errors rooted at ErrValidation.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// validator is a singleton instance of the go-playground validator.
var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// ErrValidation is returned as the first error when validation fails.
// It acts as a high-level indicator that one or more validation rules were violated.
var ErrValidation = errors.New("validation error")

// errStringFormat defines the format for individual validation error messages.
//
// Example: "'Destination': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init initializes the validator only once, enabling required field validation on structs.
//
// It is safe to call Init multiple times; only the first call will take effect.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError takes a validator error and transforms it into a detailed, multi-error
// chain with human-readable messages. The first error in the chain is always ErrValidation.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate validates a struct using the singleton validator instance.
//
// It returns nil if the struct passes validation, or an error containing all violations
// if validation fails. Init is called implicitly.
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

// Var validates a single value against a tag expression such as "required,eth_addr".
func Var(v any, tag string) error {
	Init()

	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}
	return nil
}
