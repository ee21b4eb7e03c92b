// Package nullable distinguishes an absent JSON field from an explicit null.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Value is a field in a partial update body.
//
//	absent       -> Set == false
//	null         -> Set == true, Valid == false
//	"x"          -> Set == true, Valid == true, V == "x"
type Value[T any] struct {
	V     T
	Set   bool
	Valid bool
}

func (n *Value[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		var zero T
		n.V = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.V); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Value[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.V)
}

// Of returns a set, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{V: v, Set: true, Valid: true}
}

// Null returns an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// Ptr returns nil for null or absent values.
func (n Value[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}
