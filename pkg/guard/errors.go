package guard

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching guard failures with errors.Is. Concrete
// guard errors carry the parameter name; the sentinels identify the kind.
var (
	// ErrArgument is matched by every guard failure caused by an invalid
	// argument, including the more specific kinds below.
	ErrArgument = errors.New("invalid argument")

	// ErrNilArgument is matched when a required value is absent.
	ErrNilArgument = errors.New("nil argument")

	// ErrOutOfRange is matched when a value falls outside its permitted range.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrEmptyCollection is matched when a container is nil or empty.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrInvalidOperation is matched when a guard itself is misused,
	// e.g. Condition.With is given a nil error to raise.
	ErrInvalidOperation = errors.New("invalid operation")
)

// ArgumentError reports a present but invalid argument value.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// NilArgumentError reports an absent required value.
type NilArgumentError struct {
	Param string
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument %q must not be nil", e.Param)
}

func (e *NilArgumentError) Is(target error) bool {
	return target == ErrNilArgument || target == ErrArgument
}

// OutOfRangeError reports a value outside its permitted range.
type OutOfRangeError struct {
	Param  string
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("argument %q out of range: %s", e.Param, e.Reason)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange || target == ErrArgument
}

// EmptyCollectionError reports a container that is nil or has no elements.
// Kind names the container family ("slice", "map") for diagnostics.
type EmptyCollectionError struct {
	Param string
	Kind  string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("argument %q must be a non-empty %s", e.Param, e.Kind)
}

func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection || target == ErrArgument
}
