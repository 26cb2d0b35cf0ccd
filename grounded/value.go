package grounded

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/atomspace/atom"
)

// Value is a Grounded atom wrapping a host Go value of type T. It is the
// generic replacement for the original's ValueAtom<T> template
// instantiations (ValueAtom<int>, ValueAtom<std::string>, ...).
//
// Value is not itself an operator: Execute always fails, matching the
// original's ValueAtom, which never overrides execute and so inherits
// GroundedAtom's "not implemented" default.
type Value[T any] struct {
	Val T
	// Eq overrides equality comparison for Val when set. Defaults to
	// reflect.DeepEqual, which is adequate for comparable scalars and
	// structs but not for types with pointer identity semantics.
	Eq func(a, b T) bool
}

// NewValue constructs a Value atom from v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{Val: v}
}

// Val constructs a Value[any] atom from v. Built-in operators and Func's
// result all use Val rather than NewValue so that values produced at
// different points in a reduction compare equal regardless of the static
// Go type parameter they happened to be constructed with — Equals asserts
// against the receiver's own T, so a Value[int] and a Value[any] holding
// the same int would otherwise never be equal.
func Val(v any) atom.Atom {
	return atom.G(&Value[any]{Val: v})
}

// Get returns the wrapped value.
func (v *Value[T]) Get() T { return v.Val }

// Execute always declines: a Value is data, not an operator.
func (v *Value[T]) Execute(args, result atom.ExecSpace) error {
	return fmt.Errorf("grounded: value %v is not an operator", v.Val)
}

// Equals compares two Value[T] atoms by their wrapped value.
func (v *Value[T]) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	ov, ok := ga.Payload.(*Value[T])
	if !ok {
		return false
	}
	if v.Eq != nil {
		return v.Eq(v.Val, ov.Val)
	}
	return reflect.DeepEqual(v.Val, ov.Val)
}

// Render formats the wrapped value with fmt's default verb.
func (v *Value[T]) Render() string {
	return fmt.Sprintf("%v", v.Val)
}

// reflectValue implements valueExtractor so Func can pull a typed argument
// out of a Value without the caller knowing T ahead of time.
func (v *Value[T]) reflectValue() reflect.Value {
	return reflect.ValueOf(v.Val)
}

// valueExtractor is satisfied by every *Value[T]; Func uses it to read an
// operand's underlying Go value via reflection without a type switch over
// every instantiation of Value.
type valueExtractor interface {
	reflectValue() reflect.Value
}

// AsValue attempts to read a's underlying Go value, reporting whether a is
// a Value[T] (for any T) wrapped in a Grounded atom.
func AsValue(a atom.Atom) (reflect.Value, bool) {
	ga, ok := a.(atom.GroundedAtom)
	if !ok {
		return reflect.Value{}, false
	}
	ve, ok := ga.Payload.(valueExtractor)
	if !ok {
		return reflect.Value{}, false
	}
	return ve.reflectValue(), true
}
