package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks user-recoverable form errors
	ErrValidation = errors.New("invalid input")
	// ErrLookup means a referenced clip does not exist
	ErrLookup = errors.New("clip not found")
	// ErrMalformedArgument means a positional argument could not be parsed
	ErrMalformedArgument = errors.New("malformed argument")
	// ErrUnknownCommand means the command name is not recognized
	ErrUnknownCommand = errors.New("unknown command")
)

// ValidationError reports a missing or blank required form field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
