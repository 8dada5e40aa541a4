package usecase

import "encoding/json"

// Nullable distinguishes the three states a JSON field can be in: absent,
// explicit null, and present with a value. Plain pointer fields collapse the
// first two, which makes it impossible to clear a stored reference through a
// partial update.
type Nullable[T any] struct {
	Value T
	Set   bool // the field appeared in the payload
	Valid bool // the field carried a non-null value
}

// NewNullable returns a Nullable holding the given value.
func NewNullable[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Set: true, Valid: true}
}

// NewNullableNull returns a Nullable representing an explicit null.
func NewNullableNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON is only invoked for fields present in the payload, so Set is
// always true here; absent fields keep the zero value.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true

	return nil
}

// MarshalJSON renders the value, or null when the field was null or absent.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}
