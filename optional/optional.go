// Package optional provides the runtime container used by generated
// partial structs. A wrapped field of type T becomes Optional[T]; the
// generated operations address it through Some/None/Get/MustGet/Ptr/Set.
package optional

import (
	"bytes"
	"encoding/json"
)

// Optional holds either a value of T or nothing. The zero value is None.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*p), or None if p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Optional is empty.
func (o Optional[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the contained value and panics if none is present.
// Generated code only calls it after a presence check.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet on empty Optional")
	}

	return o.value
}

// OrZero returns the contained value, or the zero value of T.
func (o Optional[T]) OrZero() T {
	return o.value
}

// OrElse returns the contained value, or fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// Ptr returns a pointer to the contained value for in-place mutation,
// or nil if the Optional is empty.
func (o *Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	return &o.value
}

// Set replaces the contained value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Clear empties the Optional.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.present = false
}

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some(v) as v.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		o.Clear()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	o.Set(v)

	return nil
}
