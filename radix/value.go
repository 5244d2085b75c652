package radix

import "fmt"

type valueState uint8

const (
	absentValue valueState = iota
	voidValue
	presentValue
)

// Value is what a node stores for the key ending at it. A Value is either
// absent (a pure branching point), void (the key is stored without a payload)
// or present (the key maps to an application value).
type Value[V any] struct {
	state valueState
	val   V
}

// Absent returns a Value with no entry.
func Absent[V any]() Value[V] {
	return Value[V]{}
}

// Void returns a Value marking a stored key without a payload. It lets a Tree
// be used as a set of keys.
func Void[V any]() Value[V] {
	return Value[V]{state: voidValue}
}

// Present wraps an application value.
func Present[V any](val V) Value[V] {
	return Value[V]{state: presentValue, val: val}
}

// IsAbsent reports whether no key is stored.
func (v Value[V]) IsAbsent() bool {
	return v.state == absentValue
}

// IsVoid reports whether a key is stored without a payload.
func (v Value[V]) IsVoid() bool {
	return v.state == voidValue
}

// IsPresent reports whether a key is stored with an application value.
func (v Value[V]) IsPresent() bool {
	return v.state == presentValue
}

// Exists reports whether a key is stored (void or present).
func (v Value[V]) Exists() bool {
	return v.state != absentValue
}

// Get returns the application value and whether there is one.
func (v Value[V]) Get() (V, bool) {
	return v.val, v.state == presentValue
}

func (v Value[V]) String() string {
	switch v.state {
	case voidValue:
		return "-"
	case presentValue:
		return fmt.Sprint(v.val)
	default:
		return "<absent>"
	}
}
