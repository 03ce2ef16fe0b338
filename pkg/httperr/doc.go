// Package httperr carries HTTP intent through error values and maps the
// library's error taxonomy onto HTTP responses.
//
// An Error pairs a status code with a stable machine-readable code and an
// optional human message, and can wrap a cause for errors.Is/errors.As
// traversal:
//
//	if !session.Valid() {
//		return httperr.Unauthorized("session expired")
//	}
//	if err := store.Load(id); err != nil {
//		return httperr.NotFound("").Wrap(err)
//	}
//
// The Handler adapter and Recoverer middleware translate returned and
// panicked errors into RFC 7807 problem-details responses: httperr errors
// keep their status, validation aggregates map to 422 with field details,
// guard argument errors map to 400, everything else becomes an opaque 500.
package httperr
