// Package guard provides fail-fast precondition checks for function and
// method arguments. Every check takes the parameter name explicitly and
// returns a typed error naming that parameter, so callers can surface the
// offending argument without string formatting at every call site.
//
// Guard errors represent programmer mistakes (a broken invariant at a call
// boundary), not expected business outcomes. For expected failures use the
// result package instead; the two are intentionally not unified.
//
// # Checks
//
// Each AgainstX function returns nil when the precondition holds and a typed
// error when it is violated:
//
//	func NewOrder(customer *Customer, lines []Line, note string) (*Order, error) {
//		if err := guard.AgainstNil("customer", customer); err != nil {
//			return nil, err
//		}
//		if err := guard.AgainstEmptySlice("lines", lines); err != nil {
//			return nil, err
//		}
//		if err := guard.AgainstOverflow("note", note, 500); err != nil {
//			return nil, err
//		}
//		...
//	}
//
// # Error Taxonomy
//
// Violations map to four error kinds, all matchable with errors.Is/errors.As:
//
//   - NilArgumentError    – a required value is absent
//   - ArgumentError       – a value is present but invalid
//   - OutOfRangeError     – a value falls outside its permitted range
//   - EmptyCollectionError – a container is nil or has no elements
//
// The container kind is deliberately separate from ArgumentError so callers
// can branch on emptiness specifically, but it still matches ErrArgument
// because an empty container is an invalid argument.
//
// # Conditional Failures
//
// Against captures an arbitrary condition and turns it into an error only
// when the condition is true:
//
//	if err := guard.Against(len(batch) > maxBatch).Withf("batch exceeds %d entries", maxBatch); err != nil {
//		return err
//	}
//
// When the condition is false every With variant is a no-op returning nil,
// and error builders are never invoked.
//
// All functions are stateless and safe for concurrent use.
package guard
