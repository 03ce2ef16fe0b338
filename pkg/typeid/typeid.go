// Package typeid provides UUID-backed identifiers branded with a phantom
// type, so an order ID and a user ID cannot be mixed up at compile time:
//
//	type User struct{}
//	type Order struct{}
//
//	userID := typeid.New[User]()
//	var orderID typeid.ID[Order] = userID // does not compile
package typeid

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is a UUID branded with the entity type T. The zero value is the nil
// ID and reports IsNil.
type ID[T any] struct {
	id uuid.UUID
}

// New returns a random (v4) ID.
func New[T any]() ID[T] {
	return ID[T]{id: uuid.New()}
}

// Nil returns the zero ID for T.
func Nil[T any]() ID[T] {
	return ID[T]{}
}

// Parse reads an ID from its canonical string form.
func Parse[T any](s string) (ID[T], error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, fmt.Errorf("typeid: parse %q: %w", s, err)
	}
	return ID[T]{id: parsed}, nil
}

// FromUUID brands an existing UUID.
func FromUUID[T any](id uuid.UUID) ID[T] {
	return ID[T]{id: id}
}

// UUID returns the underlying unbranded UUID.
func (id ID[T]) UUID() uuid.UUID {
	return id.id
}

// IsNil reports whether id is the zero ID.
func (id ID[T]) IsNil() bool {
	return id.id == uuid.Nil
}

func (id ID[T]) String() string {
	return id.id.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[T]) UnmarshalText(data []byte) error {
	parsed, err := Parse[T](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
