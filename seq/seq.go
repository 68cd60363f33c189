// Package seq provides Seq, a lazy sequence over iter.Seq with a chainable
// set of transformation stages and terminal operations.
//
// Transformation stages only compose iterators; nothing is pulled from the
// source until a terminal operation (ToSlice, Reduce, First, ...) or a range
// loop consumes the result. A sequence built over a slice can be traversed
// any number of times. A sequence built over a single-pass source (FromPull,
// Tee branches, generators) yields each element once: ranging it again
// resumes where the previous consumer stopped or yields nothing.
//
// Operations that need additional type parameters or constraints (Map,
// Unique, Sort, GroupBy, ...) are package functions because Go methods
// cannot declare type parameters.
//
// Sequences are not safe for concurrent use.
package seq

import (
	"iter"
	"maps"
	"slices"
	"unicode/utf8"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
)

// Seq is a lazy sequence of values of type T.
type Seq[T any] iter.Seq[T]

// From wraps an iterator.
func From[T any](it iter.Seq[T]) Seq[T] {
	return Seq[T](it)
}

// Of returns a sequence over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice returns a re-iterable sequence over the elements of values.
func FromSlice[T any](values []T) Seq[T] {
	return Seq[T](slices.Values(values))
}

// FromMap returns the key/value pairs of m in unspecified order.
func FromMap[K comparable, V any](m map[K]V) Seq[fn.Tuple[K, V]] {
	return func(yield func(fn.Tuple[K, V]) bool) {
		for k, v := range maps.All(m) {
			if !yield(fn.NewTuple(k, v)) {
				return
			}
		}
	}
}

// FromPull returns a single-pass sequence driven by next, which reports
// false once the source is exhausted.
func FromPull[T any](next func() (T, bool)) Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromString returns the runes of str, each as a one-character string.
func FromString(str string) Seq[string] {
	return func(yield func(string) bool) {
		for len(str) > 0 {
			_, size := utf8.DecodeRuneInString(str)
			if !yield(str[:size]) {
				return
			}
			str = str[size:]
		}
	}
}

// Range returns start, start+1, ..., stop-1.
func Range(start, stop int) Seq[int] {
	return RangeStep(start, stop, 1)
}

// RangeStep returns the integers from start towards stop (exclusive) by step.
// A zero step panics.
func RangeStep(start, stop, step int) Seq[int] {
	if step == 0 {
		fnerr.InvalidArgument("range step must not be zero")
	}
	return func(yield func(int) bool) {
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Count returns the unbounded sequence start, start+step, start+2*step, ...
func Count(start, step int) Seq[int] {
	return func(yield func(int) bool) {
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields v count times, or forever when count is negative.
func Repeat[T any](v T, count int) Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Once yields v a single time.
func Once[T any](v T) Seq[T] {
	return Repeat(v, 1)
}

// Empty yields nothing.
func Empty[T any]() Seq[T] {
	return func(func(T) bool) {}
}

// Zip pairs up elements of a and b, stopping at the end of the shorter one.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[fn.Tuple[A, B]] {
	return ZipWith(a, b, fn.NewTuple[A, B])
}

// ZipWith combines elements of a and b with f, stopping at the end of the
// shorter one.
func ZipWith[A, B, R any](a Seq[A], b Seq[B], f func(A, B) R) Seq[R] {
	return func(yield func(R) bool) {
		next, stop := iter.Pull(iter.Seq[B](b))
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok || !yield(f(va, vb)) {
				return
			}
		}
	}
}

// Iter returns s as a plain iter.Seq.
func (s Seq[T]) Iter() iter.Seq[T] {
	return iter.Seq[T](s)
}
