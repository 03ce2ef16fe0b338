package guard

import (
	"cmp"
	"fmt"
)

// Real constrains the numeric checks to types that can hold values below
// zero; unsigned integers have nothing to guard against here.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// AgainstNegative returns an OutOfRangeError when v is less than zero.
func AgainstNegative[T Real](name string, v T) error {
	if v < 0 {
		return &OutOfRangeError{
			Param:  name,
			Reason: fmt.Sprintf("must not be negative, got %v", v),
		}
	}
	return nil
}

// AgainstNegativeOrZero returns an OutOfRangeError when v is less than or
// equal to zero.
func AgainstNegativeOrZero[T Real](name string, v T) error {
	if v <= 0 {
		return &OutOfRangeError{
			Param:  name,
			Reason: fmt.Sprintf("must be positive, got %v", v),
		}
	}
	return nil
}

// AgainstOutOfRange returns an OutOfRangeError when v lies outside the
// inclusive interval [min, max]. The bounds themselves are validated:
// max must exceed min, otherwise the check is misused and an ArgumentError
// for "max" is returned regardless of v.
func AgainstOutOfRange[T cmp.Ordered](name string, v, min, max T) error {
	if max <= min {
		return &ArgumentError{Param: "max", Reason: "must exceed min"}
	}
	if v < min || v > max {
		return &OutOfRangeError{
			Param:  name,
			Reason: fmt.Sprintf("must be within [%v, %v], got %v", min, max, v),
		}
	}
	return nil
}

// AgainstUndefinedEnum returns an OutOfRangeError when v is not a member of
// the defined value set. An empty defined set means the caller is guarding
// against a type with no enumeration at all, which is a misuse of the check
// and yields an ArgumentError for "defined".
func AgainstUndefinedEnum[T comparable](name string, v T, defined []T) error {
	if len(defined) == 0 {
		return &ArgumentError{Param: "defined", Reason: "enumeration has no defined values"}
	}
	for _, d := range defined {
		if v == d {
			return nil
		}
	}
	return &OutOfRangeError{
		Param:  name,
		Reason: fmt.Sprintf("value %v is not a defined enumeration member", v),
	}
}
