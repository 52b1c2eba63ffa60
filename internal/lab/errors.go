package lab

import (
	"errors"
	"fmt"
)

// Domain errors for exercise runs.
var (
	// ErrUnknownExercise indicates a name with no registered factory.
	ErrUnknownExercise = errors.New("lab: unknown exercise")

	// ErrBadParams indicates parameters an exercise cannot run with.
	ErrBadParams = errors.New("lab: invalid parameters")

	// ErrDegenerate indicates input too degenerate for the computation,
	// e.g. fewer than three non-collinear points for a triangulation.
	ErrDegenerate = errors.New("lab: degenerate input")
)

// ParamError wraps ErrBadParams with the offending field.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrBadParams, e.Field, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrBadParams }
