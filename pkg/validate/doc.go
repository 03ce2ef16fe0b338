// Package validate aggregates field-level validation failures into a single
// error value. Unlike guard, which fails fast on the first broken
// precondition, validate evaluates every rule and reports all violations at
// once, which is what request boundaries want:
//
//	err := validate.Apply(
//		validate.Required("name", in.Name),
//		validate.MaxLen("name", in.Name, 50),
//		validate.Range("age", in.Age, 18, 120),
//	)
//	if verrs := validate.Extract(err); verrs != nil {
//		// render all field messages together
//	}
//
// Errors implements the error interface and supports errors.As, so the
// aggregate survives ordinary error returns and can be classified by the
// httperr middleware into a 422 response.
package validate
