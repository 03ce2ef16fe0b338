package validate

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// Errors is an aggregate of field-level failures. It implements the error
// interface and is returned by Apply when at least one rule is violated.
type Errors []FieldError

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure refers to field.
func (ve Errors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for field.
func (ve Errors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names with failures, in first-seen order.
func (ve Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Rule pairs a check with the failure to record when the check is false.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply evaluates every rule and returns the aggregated failures, or nil
// when all rules pass.
func Apply(rules ...Rule) error {
	var verrs Errors
	for _, rule := range rules {
		if !rule.Check() {
			verrs = append(verrs, rule.Error)
		}
	}
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// Extract returns the Errors aggregate carried by err, or nil when err is
// not a validation failure.
func Extract(err error) Errors {
	if err == nil {
		return nil
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// Is reports whether err carries a validation aggregate.
func Is(err error) bool {
	var verrs Errors
	return err != nil && errors.As(err, &verrs)
}
