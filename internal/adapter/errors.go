package adapter

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage replaces a missing or unreadable server error reason.
const UnknownErrorMessage = "Unknown error"

// ErrServerRejected matches every [*ServerError] with errors.Is.
var ErrServerRejected = errors.New("server rejected the request")

// ServerError is an application-level failure: the server answered with a
// non-2xx status. Message holds the server's "error" field, or
// [UnknownErrorMessage] when the body did not carry one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is [ErrServerRejected].
func (e *ServerError) Is(target error) bool {
	return target == ErrServerRejected
}
