package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoOperation = errors.New("no operation selected")

	ErrForcedFailure = errors.New("forced failure")
)

// ForcedFailureError is returned by the stub service while a canned failure
// is configured. Message may be empty.
type ForcedFailureError struct {
	StatusCode int
	Message    string
}

func (e *ForcedFailureError) Error() string {
	return fmt.Sprintf("forced failure %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is [ErrForcedFailure].
func (e *ForcedFailureError) Is(target error) bool {
	return target == ErrForcedFailure
}
