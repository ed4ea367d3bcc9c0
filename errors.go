package householdcarbon

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState = errors.New("unknown state")
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownStateError is returned when a state is not part of the energy table.
type UnknownStateError struct {
	State string
	// Suggestion is the closest known state name, if any.
	Suggestion string
}

func (err *UnknownStateError) Error() string {
	if err.Suggestion != "" {
		return fmt.Sprintf("unknown state %q (did you mean %q?)", err.State, err.Suggestion)
	}
	return fmt.Sprintf("unknown state %q", err.State)
}

func (err *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}

// InvalidInputError reports an estimator input that cannot produce a finite result.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (err *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input (field: %s, value: %v): %s", err.Field, err.Value, err.Reason)
}

func (err *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
