package httperr

import (
	"fmt"
	"net/http"
)

// Error is an error with HTTP intent. Status picks the response code, Code
// is a stable machine-readable identifier for clients, Message is optional
// human-readable detail. A wrapped cause stays available to errors.Is/As
// but is never serialized to the client.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

// New builds an Error with an explicit status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the errors package.
func (e *Error) Unwrap() error {
	return e.cause
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

func newf(status int, code, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Status: status, Code: code, Message: message}
}

// BadRequest reports a malformed or semantically invalid request.
func BadRequest(message string) *Error {
	return newf(http.StatusBadRequest, "bad_request", message)
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(message string) *Error {
	return newf(http.StatusUnauthorized, "unauthorized", message)
}

// Forbidden reports valid credentials lacking permission.
func Forbidden(message string) *Error {
	return newf(http.StatusForbidden, "forbidden", message)
}

// NotFound reports an absent resource.
func NotFound(message string) *Error {
	return newf(http.StatusNotFound, "not_found", message)
}

// Conflict reports a state conflict such as a duplicate or stale update.
func Conflict(message string) *Error {
	return newf(http.StatusConflict, "conflict", message)
}

// UnsupportedMediaType reports an unusable request payload format.
func UnsupportedMediaType(message string) *Error {
	return newf(http.StatusUnsupportedMediaType, "unsupported_media_type", message)
}

// UnprocessableEntity reports a well-formed request that fails semantics.
func UnprocessableEntity(message string) *Error {
	return newf(http.StatusUnprocessableEntity, "unprocessable_entity", message)
}

// TooManyRequests reports rate limiting.
func TooManyRequests(message string) *Error {
	return newf(http.StatusTooManyRequests, "too_many_requests", message)
}

// Internal reports an unexpected server-side failure.
func Internal(message string) *Error {
	return newf(http.StatusInternalServerError, "internal_server_error", message)
}

// Unavailable reports a temporarily unavailable dependency or service.
func Unavailable(message string) *Error {
	return newf(http.StatusServiceUnavailable, "service_unavailable", message)
}
