// Package result represents operation outcomes as values instead of raising
// errors through panic or sentinel returns. It is the expected-failure
// counterpart to the guard package: guard protects invariants (programmer
// errors), result conveys business outcomes callers are meant to branch on.
//
// A Result is either a success carrying no error, or a failure carrying a
// non-empty Error. The value-carrying variant Of[T] additionally holds a
// payload that is only accessible on success:
//
//	func FindUser(id string) result.Of[User] {
//		u, found := store[id]
//		if !found {
//			return result.Err[User](result.NewError("user.not_found", "User does not exist."))
//		}
//		return result.Ok(u)
//	}
//
//	name := result.Match(FindUser(id),
//		func(u User) string { return u.Name },
//		func(e result.Error) string { return "unknown" },
//	)
//
// Constructing an inconsistent outcome (a success with an error, or a
// failure without one) is a programmer error and panics at construction
// rather than producing a half-valid value.
package result
