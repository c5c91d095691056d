// Package apierror defines the tagged error result passed from the data
// access and service layers up to the transport layer. Services classify
// failures with a Kind; handlers map the Kind to an HTTP status without
// inspecting driver-level errors themselves.
package apierror

import "net/http"

// Kind classifies an error at the service/transport boundary.
type Kind int

const (
	// KindAuth is an authentication failure (wrong credentials).
	KindAuth Kind = iota + 1
	// KindConflict is a uniqueness conflict (duplicate username).
	KindConflict
	// KindNotFound is a missing resource on routes that do signal absence.
	KindNotFound
	// KindServer is any database or internal error, surfaced with its raw
	// message per the error passthrough contract.
	KindServer
)

// Error carries a kind tag plus the client-visible message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Auth(msg string) *Error     { return &Error{Kind: KindAuth, Message: msg} }
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Server wraps an arbitrary error as a server-side failure, echoing the raw
// message to the client.
func Server(err error) *Error { return &Error{Kind: KindServer, Message: err.Error()} }

// StatusOf maps an error to its HTTP status code. Untagged errors are
// treated as server errors.
func StatusOf(err error) int {
	e, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
