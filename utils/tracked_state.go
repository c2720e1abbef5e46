package utils

import "time"

// TrackedState remembers the previous distinct value of a field and when it
// last changed.
type TrackedState[T any] struct {
	LastValue   T
	Value       T
	UpdatedTime time.Time
	Equal       func(a, b T) bool
}

func (t *TrackedState[T]) Update(val T) (updated bool) {
	if t.Equal != nil && t.Equal(t.Value, val) {
		return false
	}
	t.LastValue = t.Value
	t.UpdatedTime = time.Now()
	t.Value = val
	return true
}

func Compare[T comparable](a, b T) bool {
	return a == b
}
