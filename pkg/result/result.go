package result

import "fmt"

// Result is the outcome of an operation that produces no payload. It is
// immutable after construction and upholds a single invariant: a success
// carries None, a failure carries anything but None.
type Result struct {
	success bool
	err     Error
}

// Success returns a successful outcome.
func Success() Result {
	return newResult(true, None)
}

// Failure returns a failed outcome carrying err. Passing None panics:
// a failure without an error is a programmer error, not a recoverable one.
func Failure(err Error) Result {
	return newResult(false, err)
}

// newResult enforces the construction invariant for both variants.
func newResult(success bool, err Error) Result {
	if success && err != None {
		panic(fmt.Sprintf("result: success must not carry an error, got %v", err))
	}
	if !success && err == None {
		panic("result: failure requires a non-empty error")
	}
	return Result{success: success, err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool {
	return r.success
}

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool {
	return !r.success
}

// Err returns the carried error, None for successes.
func (r Result) Err() Error {
	return r.err
}
