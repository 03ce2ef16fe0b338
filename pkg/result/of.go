package result

import (
	"errors"
	"fmt"
)

// Of is a Result that additionally carries a payload of type T. The payload
// is only meaningful on success; reading it from a failure panics.
type Of[T any] struct {
	Result
	value T
}

// Ok returns a successful outcome carrying value.
func Ok[T any](value T) Of[T] {
	return Of[T]{Result: Success(), value: value}
}

// Err returns a failed outcome carrying err and no payload. Like Failure,
// passing None panics.
func Err[T any](err Error) Of[T] {
	return Of[T]{Result: Failure(err)}
}

// Create maps an absent value to Err(NilValue) and a present one to
// Ok(*value). Absence is expressed through the pointer: callers that need a
// successful outcome with a legitimately absent payload should make the
// payload type itself optional (e.g. Of[*T] built with Ok).
func Create[T any](value *T) Of[T] {
	if value == nil {
		return Err[T](NilValue)
	}
	return Ok(*value)
}

// From converts a plain Go (value, error) pair into an outcome. A nil error
// yields Ok(v). A non-nil error yields Err: an Error value anywhere in its
// chain is carried as-is, anything else is mapped to an unexpected Error
// preserving the message.
func From[T any](v T, err error) Of[T] {
	if err == nil {
		return Ok(v)
	}
	var e Error
	if errors.As(err, &e) && e != None {
		return Err[T](e)
	}
	return Err[T](NewError("error.unexpected", err.Error()))
}

// Value returns the payload of a successful outcome. Reading the payload of
// a failure is a programmer error and panics with the carried error.
func (r Of[T]) Value() T {
	if r.IsFailure() {
		panic(fmt.Sprintf("result: value read on a failed result (%v)", r.Err()))
	}
	return r.value
}

// ValueOr returns the payload on success and fallback on failure.
func (r Of[T]) ValueOr(fallback T) T {
	if r.IsFailure() {
		return fallback
	}
	return r.value
}

// Match invokes exactly one of the two callbacks depending on the outcome
// and returns its result. The failure branch receives the carried error.
func Match[T, R any](r Of[T], onSuccess func(T) R, onFailure func(Error) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.Err())
}

// MatchResult is Match for payload-free outcomes.
func MatchResult[R any](r Result, onSuccess func() R, onFailure func(Error) R) R {
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFailure(r.Err())
}
