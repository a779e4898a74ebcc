package domain

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// The zero value means "absent". It replaces the pointer-sentinel convention
// for partial updates, so "leave untouched" and "clear" stay distinguishable
// after decoding.
type Optional[T any] struct {
	// Set is true when the field was present in the request body.
	Set bool
	// Value is non-nil when the field carried a value; nil means explicit null.
	Value *T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for fields present in the document,
// so Set flips to true for both values and explicit nulls.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
