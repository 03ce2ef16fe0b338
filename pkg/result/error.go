package result

import "fmt"

// Error identifies an expected failure by a stable machine-readable code
// and a human-readable name. It is an immutable value with structural
// equality: two Errors compare equal when both fields match.
type Error struct {
	Code string
	Name string
}

// Well-known errors shared across the library.
var (
	// None marks the absence of an error and is the only Error a
	// successful Result may carry.
	None = Error{}

	// NilValue reports a required value that was absent.
	NilValue = Error{Code: "error.nil_value", Name: "The required value is absent."}
)

// NewError builds an Error from a code and a name.
func NewError(code, name string) Error {
	return Error{Code: code, Name: name}
}

// Error implements the error interface so an Error can cross boundaries
// that speak plain Go errors.
func (e Error) Error() string {
	if e == None {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Name)
}

// IsNone reports whether e marks the absence of an error.
func (e Error) IsNone() bool {
	return e == None
}
