package iwant

import (
	"errors"
	"fmt"
)

// ErrNotWanted is raised (as a panic value) by the built-in carriers when
// Unwrap is called on an unwanted value.
var ErrNotWanted = errors.New("iwant: unwrap of unwanted value")

// NotWantedError wraps the error an unwanted Result was carrying
type NotWantedError struct {
	Cause error
}

func (e *NotWantedError) Error() string {
	if e.Cause == nil {
		return ErrNotWanted.Error()
	}
	return fmt.Sprintf("%s: %v", ErrNotWanted, e.Cause)
}

// Unwrap lists ErrNotWanted followed by the cause, with joined causes flattened
func (e *NotWantedError) Unwrap() []error {
	return append([]error{ErrNotWanted}, GetErrors(e.Cause)...)
}
