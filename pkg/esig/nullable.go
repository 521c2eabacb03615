package esig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Nullable is a field that can be unset, explicitly null, or hold a value.
//
// The platform gives explicit null a meaning of its own on several input
// fields ("keep the value already in the document"), so a pointer is not
// enough. Use it with the omitzero JSON option: an unset Nullable is left
// out of the payload, Null() is sent as null.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// NewNullable returns a Nullable holding v.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// IsZero reports whether the field is unset.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

// IsNull reports whether the field is set to null.
func (n Nullable[T]) IsNull() bool {
	return n.Set && !n.Valid
}

// Get returns the value and whether there is one.
func (n Nullable[T]) Get() (T, bool) {
	return n.Value, n.Valid
}

// OrZero returns the value, or the zero value of T when unset or null.
func (n Nullable[T]) OrZero() T {
	if !n.Valid {
		var zero T

		return zero
	}

	return n.Value
}

// String formats the value, or "null".
func (n Nullable[T]) String() string {
	if !n.Valid {
		return "null"
	}

	return fmt.Sprint(n.Value)
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T

		n.Value = zero
		n.Valid = false

		return nil
	}

	err := json.Unmarshal(data, &n.Value)
	if err != nil {
		return fmt.Errorf("decoding nullable value: %w", err)
	}

	n.Valid = true

	return nil
}

// MarshalYAML renders the value, or nil when unset or null.
func (n Nullable[T]) MarshalYAML() (interface{}, error) {
	if !n.Valid {
		return nil, nil //nolint:nilnil
	}

	return n.Value, nil
}
