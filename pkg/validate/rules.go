package validate

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/domainkit/pkg/guard"
)

// Required fails when the value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: FieldError{Field: field, Message: "field is required"},
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLen fails when the value is longer than max bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// Range fails when the value lies outside the inclusive interval [min, max].
func Range[T guard.Real](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be within [%v, %v]", min, max),
		},
	}
}

// In fails when the value is not one of the allowed choices.
func In[T comparable](field string, value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: FieldError{Field: field, Message: "must be one of the allowed values"},
	}
}
