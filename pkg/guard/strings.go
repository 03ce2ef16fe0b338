package guard

import (
	"fmt"
	"strings"
)

// AgainstEmpty returns an ArgumentError when s has zero length.
func AgainstEmpty(name, s string) error {
	if s == "" {
		return &ArgumentError{Param: name, Reason: "must not be empty"}
	}
	return nil
}

// AgainstBlank returns an ArgumentError when s is empty or consists
// entirely of whitespace.
func AgainstBlank(name, s string) error {
	if strings.TrimSpace(s) == "" {
		return &ArgumentError{Param: name, Reason: "must not be blank"}
	}
	return nil
}

// AgainstOverflow returns an OutOfRangeError when the length of s exceeds
// max. The maximum must be positive; a non-positive max is a misuse of the
// check itself and yields an ArgumentError for "max".
func AgainstOverflow(name, s string, max int) error {
	if max <= 0 {
		return &ArgumentError{Param: "max", Reason: "must be positive"}
	}
	if len(s) > max {
		return &OutOfRangeError{
			Param:  name,
			Reason: fmt.Sprintf("length %d exceeds maximum %d", len(s), max),
		}
	}
	return nil
}

// AgainstEmptyOrOverflow checks emptiness first, then length overflow.
// The first violated precondition wins.
func AgainstEmptyOrOverflow(name, s string, max int) error {
	if err := AgainstEmpty(name, s); err != nil {
		return err
	}
	return AgainstOverflow(name, s, max)
}

// AgainstBlankOrOverflow checks blankness first, then length overflow.
// The first violated precondition wins.
func AgainstBlankOrOverflow(name, s string, max int) error {
	if err := AgainstBlank(name, s); err != nil {
		return err
	}
	return AgainstOverflow(name, s, max)
}
