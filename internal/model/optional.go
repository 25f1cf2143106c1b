package model

// Optional is a partial-update field. A zero Optional leaves the stored
// value untouched; Some(nil-able value) overwrites it, nil included.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Or returns the held value, or fallback when unset.
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}
