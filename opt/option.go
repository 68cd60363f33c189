// Package opt provides Opt, a container holding zero or one value, with
// monadic chaining, fallback composition and safe extraction.
package opt

import (
	"fmt"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
)

// Opt holds at most one value of type T. The zero Opt is empty.
type Opt[T any] struct {
	value   T
	defined bool
}

// Some wraps v. Wrapping a nil pointer, map, channel, function or interface
// panics; use Of for values that may be nil.
func Some[T any](v T) Opt[T] {
	if fn.IsNil(any(v)) {
		fnerr.InvalidArgument("opt.Some called with a nil %T; use opt.Of", v)
	}
	return Opt[T]{value: v, defined: true}
}

// None returns the empty Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Of wraps v, treating nil values as absent.
func Of[T any](v T) Opt[T] {
	if fn.IsNil(any(v)) {
		return None[T]()
	}
	return Opt[T]{value: v, defined: true}
}

// FromPtr returns the pointed-to value, or None for a nil pointer.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Opt[T]{value: *p, defined: true}
}

// FromTuple wraps the result of a comma-ok lookup.
func FromTuple[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// Flatten collapses a nested Opt into one layer.
func Flatten[T any](o Opt[Opt[T]]) Opt[T] {
	if !o.defined {
		return None[T]()
	}
	return o.value
}

func (o Opt[T]) IsDefined() bool {
	return o.defined
}

// HasValue is an alias of IsDefined.
func (o Opt[T]) HasValue() bool {
	return o.defined
}

func (o Opt[T]) IsEmpty() bool {
	return !o.defined
}

// Unwrap returns the value and whether it is present.
func (o Opt[T]) Unwrap() (T, bool) {
	return o.value, o.defined
}

// Get returns the value, or ErrEmptyOptional when absent.
func (o Opt[T]) Get() (T, error) {
	return o.GetOrRaise(nil)
}

// MustGet returns the value and panics when absent.
func (o Opt[T]) MustGet() T {
	if !o.defined {
		panic(fnerr.ErrEmptyOptional)
	}
	return o.value
}

func (o Opt[T]) GetOr(defaultValue T) T {
	if o.defined {
		return o.value
	}
	return defaultValue
}

func (o Opt[T]) GetOrElse(f func() T) T {
	if o.defined {
		return o.value
	}
	return f()
}

// GetOrRaise returns the value, or err when absent. A nil err stands for
// ErrEmptyOptional.
func (o Opt[T]) GetOrRaise(err error) (T, error) {
	if o.defined {
		return o.value, nil
	}
	if err == nil {
		err = fnerr.ErrEmptyOptional
	}
	var zero T
	return zero, err
}

// GetOrRaisef is GetOrRaise with an EmptyOptionalError carrying the formatted message.
func (o Opt[T]) GetOrRaisef(format string, args ...any) (T, error) {
	if o.defined {
		return o.value, nil
	}
	var zero T
	return zero, fnerr.Newf(fnerr.TypeEmptyOptional, format, args...)
}

// GetOrRaiseFunc is GetOrRaise with a lazily constructed error.
func (o Opt[T]) GetOrRaiseFunc(f func() error) (T, error) {
	if o.defined {
		return o.value, nil
	}
	return o.GetOrRaise(f())
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Opt[T]) ToPtr() *T {
	if !o.defined {
		return nil
	}
	v := o.value
	return &v
}

func (o Opt[T]) ForEach(f func(T)) {
	if o.defined {
		f(o.value)
	}
}

func (o Opt[T]) Filter(pred func(T) bool) Opt[T] {
	if o.defined && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o when present, otherwise other.
func (o Opt[T]) Or(other Opt[T]) Opt[T] {
	if o.defined {
		return o
	}
	return other
}

// OrElse is Or with a lazily computed fallback.
func (o Opt[T]) OrElse(f func() Opt[T]) Opt[T] {
	if o.defined {
		return o
	}
	return f()
}

// And returns other when o is present, otherwise the empty o.
func (o Opt[T]) And(other Opt[T]) Opt[T] {
	return And(o, other)
}

func (o Opt[T]) Equal(other Opt[T]) bool {
	if o.defined != other.defined {
		return false
	}
	if !o.defined {
		return true
	}
	return fn.Equal(o.value, other.value)
}

// EqualValue compares the optional against a raw value. An empty Opt equals
// no value.
func (o Opt[T]) EqualValue(v T) bool {
	return o.defined && fn.Equal(o.value, v)
}

func (o Opt[T]) String() string {
	if !o.defined {
		return "{none}"
	}
	return fmt.Sprint(o.value)
}

var _ fn.Equatable[Opt[int]] = Opt[int]{}
var _ fmt.Stringer = Opt[int]{}

// Map and FlatMap are provided as functions because Go methods cannot have type parameters.

// optional is implemented by every Opt instantiation.
type optional interface {
	isOpt()
}

func (Opt[T]) isOpt() {}

// Map applies f to the value when present. f must not return an Opt: that
// panics, since the result would silently nest; use FlatMap instead.
func Map[T, U any](o Opt[T], f func(T) U) Opt[U] {
	if !o.defined {
		return None[U]()
	}
	res := f(o.value)
	if _, nested := any(res).(optional); nested {
		fnerr.InvalidArgument("opt.Map: f returned an Opt; use FlatMap")
	}
	return Of(res)
}

// FlatMap applies f, which itself returns an Opt, when present.
func FlatMap[T, U any](o Opt[T], f func(T) Opt[U]) Opt[U] {
	if !o.defined {
		return None[U]()
	}
	return f(o.value)
}

// And returns b when a is present and None otherwise.
func And[T, U any](a Opt[T], b Opt[U]) Opt[U] {
	if !a.defined {
		return None[U]()
	}
	return b
}

// Zip pairs two present values.
func Zip[A, B any](a Opt[A], b Opt[B]) Opt[fn.Tuple[A, B]] {
	if !a.defined || !b.defined {
		return None[fn.Tuple[A, B]]()
	}
	return Opt[fn.Tuple[A, B]]{value: fn.NewTuple(a.value, b.value), defined: true}
}
