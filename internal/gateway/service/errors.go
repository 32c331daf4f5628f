package service

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when an operation needs a session token and
// none was supplied. No upstream call has been made.
var ErrUnauthenticated = errors.New("not authenticated")

// ValidationError reports a malformed browser request. No upstream call has
// been made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// UpstreamError carries a non-2xx backend response. Auth is set for
// session operations (login, me) where the status describes the
// credentials or session rather than a resource.
type UpstreamError struct {
	StatusCode int
	Message    string
	Auth       bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps failures to reach the backend or to make sense of
// its answer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IgnoreFailure runs fn and discards its error. It marks call sites where a
// failure must not change the outcome, such as backend logout.
func IgnoreFailure(fn func() error) {
	_ = fn()
}
