package guard

import (
	"fmt"
	"strings"
)

// Condition captures the outcome of an arbitrary boolean precondition.
// It carries no state beyond the boolean and is meant to be consumed by a
// single With call in the same expression.
type Condition struct {
	violated bool
}

// Against starts a conditional guard. A true condition means the
// precondition is violated and the subsequent With call will produce an
// error; a false condition makes every With variant a no-op.
func Against(condition bool) Condition {
	return Condition{violated: condition}
}

// With returns err when the condition was violated and nil otherwise.
// Raising a nil error is a misuse of the guard itself and yields an
// ErrInvalidOperation instead of silently succeeding.
func (c Condition) With(err error) error {
	if !c.violated {
		return nil
	}
	if err == nil {
		return fmt.Errorf("%w: With requires a non-nil error", ErrInvalidOperation)
	}
	return err
}

// Withf returns a formatted error when the condition was violated and nil
// otherwise. The format must not be blank; a blank format is reported as
// an ArgumentError before any error is constructed.
func (c Condition) Withf(format string, args ...any) error {
	if !c.violated {
		return nil
	}
	if strings.TrimSpace(format) == "" {
		return &ArgumentError{Param: "format", Reason: "must not be blank"}
	}
	return fmt.Errorf(format, args...)
}

// WithMessage invokes build with msg and returns the resulting error when
// the condition was violated, nil otherwise. build is only called on
// violation, so constructing the error stays free of side effects for
// passing conditions. A nil build or a blank msg is a misuse of the guard:
// the former yields ErrInvalidOperation, the latter an ArgumentError, in
// both cases before build is touched.
func (c Condition) WithMessage(build func(msg string) error, msg string) error {
	if !c.violated {
		return nil
	}
	if build == nil {
		return fmt.Errorf("%w: WithMessage requires a non-nil builder", ErrInvalidOperation)
	}
	if strings.TrimSpace(msg) == "" {
		return &ArgumentError{Param: "msg", Reason: "must not be blank"}
	}
	return build(msg)
}
