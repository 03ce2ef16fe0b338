// Package enum describes closed value sets. A Set maps each defined value
// to a human-readable description and answers membership questions, which
// is what guard.AgainstUndefinedEnum consumes through Values.
package enum

import "maps"

// Set is an immutable view over a closed set of values and their
// descriptions. Construct it once at package init and share it freely;
// all methods are read-only.
type Set[T comparable] struct {
	descriptions map[T]string
	values       []T
}

// NewSet copies descriptions into a Set. The input map is not retained.
func NewSet[T comparable](descriptions map[T]string) Set[T] {
	values := make([]T, 0, len(descriptions))
	for v := range descriptions {
		values = append(values, v)
	}
	return Set[T]{
		descriptions: maps.Clone(descriptions),
		values:       values,
	}
}

// Defined reports whether v is a member of the set.
func (s Set[T]) Defined(v T) bool {
	_, ok := s.descriptions[v]
	return ok
}

// Description returns the description of v and whether v is defined.
func (s Set[T]) Description(v T) (string, bool) {
	desc, ok := s.descriptions[v]
	return desc, ok
}

// Values returns the defined members in unspecified order. The returned
// slice is a copy.
func (s Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Parse finds the member whose description equals desc.
func (s Set[T]) Parse(desc string) (T, bool) {
	for v, d := range s.descriptions {
		if d == desc {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of defined members.
func (s Set[T]) Len() int {
	return len(s.values)
}
