package splitter

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the base error for rejected splitter parameters.
// All parameter validation failures wrap this error, so callers can test
// for the whole class with errors.Is.
var ErrInvalidParameter = errors.New("invalid splitter parameter")

// ParameterError describes a parameter value that was rejected outright.
// It is returned before any splitting work begins; the splitter performs
// no partial work on invalid input.
type ParameterError struct {
	// Param is the name of the offending parameter.
	Param string

	// Value is the rejected value.
	Value int

	// Reason explains why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Param, e.Value, e.Reason)
}

// Unwrap makes the error match ErrInvalidParameter under errors.Is.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
