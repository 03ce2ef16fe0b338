package guard

import "reflect"

// AgainstNil returns a NilArgumentError when v is nil. Besides a plain nil
// interface it unwraps nil pointers, maps, slices, channels and functions,
// so a typed nil stored in an interface still fails the check.
func AgainstNil(name string, v any) error {
	if isNil(v) {
		return &NilArgumentError{Param: name}
	}
	return nil
}

// AgainstZero returns an ArgumentError when v equals the zero value of its
// type. Intended for value types where the zero value is never a valid
// argument (uninitialized IDs, empty time.Time, etc.).
func AgainstZero[T comparable](name string, v T) error {
	var zero T
	if v == zero {
		return &ArgumentError{Param: name, Reason: "must not be the zero value"}
	}
	return nil
}

// AgainstNilOrZero combines AgainstNil and a reflective zero check: nil
// values fail with NilArgumentError, non-nil zero values with ArgumentError.
func AgainstNilOrZero(name string, v any) error {
	if isNil(v) {
		return &NilArgumentError{Param: name}
	}
	if reflect.ValueOf(v).IsZero() {
		return &ArgumentError{Param: name, Reason: "must not be the zero value"}
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
