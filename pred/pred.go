// Package pred provides named, composable predicates.
//
// A Predicate carries a human readable name next to its test function. The
// name is used in diagnostics (see package contract) and has no effect on
// evaluation. Use Func to pass a predicate to the seq package:
//
//	evens := s.Filter(pred.Even[int]().Func())
package pred

import (
	"fmt"
	"strings"
)

// Predicate is a named boolean test over a value of type T.
type Predicate[T any] struct {
	name string
	test func(T) bool
}

// New returns a predicate named name that tests values with f.
func New[T any](name string, f func(T) bool) Predicate[T] {
	return Predicate[T]{name: name, test: f}
}

// Of wraps an anonymous function.
func Of[T any](f func(T) bool) Predicate[T] {
	return New("<func>", f)
}

// Test reports whether v satisfies p.
func (p Predicate[T]) Test(v T) bool {
	return p.test(v)
}

// Func returns p as a plain function.
func (p Predicate[T]) Func() func(T) bool {
	return p.test
}

func (p Predicate[T]) String() string {
	return p.name
}

// Named returns a copy of p with a different name.
func (p Predicate[T]) Named(name string) Predicate[T] {
	return New(name, p.test)
}

// And holds when both p and other hold. other is not evaluated when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return New(fmt.Sprintf("(%s and %s)", p, other), func(v T) bool {
		return p.test(v) && other.test(v)
	})
}

// Or holds when p or other holds. other is not evaluated when p holds.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return New(fmt.Sprintf("(%s or %s)", p, other), func(v T) bool {
		return p.test(v) || other.test(v)
	})
}

// Xor holds when exactly one of p and other holds. Both are evaluated.
func (p Predicate[T]) Xor(other Predicate[T]) Predicate[T] {
	return New(fmt.Sprintf("(%s xor %s)", p, other), func(v T) bool {
		a := p.test(v)
		b := other.test(v)
		return a != b
	})
}

// Not negates p.
func (p Predicate[T]) Not() Predicate[T] {
	return New("not "+p.name, func(v T) bool {
		return !p.test(v)
	})
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return p.Not()
}

// All holds when every predicate holds, checking them in order. All() always holds.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return New(joinNames("all", ps), func(v T) bool {
		for _, p := range ps {
			if !p.test(v) {
				return false
			}
		}
		return true
	})
}

// AnyOf holds when some predicate holds, checking them in order. AnyOf() never holds.
func AnyOf[T any](ps ...Predicate[T]) Predicate[T] {
	return New(joinNames("any", ps), func(v T) bool {
		for _, p := range ps {
			if p.test(v) {
				return true
			}
		}
		return false
	})
}

func joinNames[T any](op string, ps []Predicate[T]) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return op + "(" + strings.Join(names, ", ") + ")"
}

func call(name string, args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
