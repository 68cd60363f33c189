// Package fn provides small function combinators used across galaseq:
// identity and constant functions, left-to-right composition, two-element
// tuples and key/value projections over them.
package fn

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// DoNothing accepts a value and discards it.
func DoNothing[T any](T) {}

// Const returns a function that ignores its argument and always returns v.
func Const[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}

// Negate returns the logical complement of pred.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool {
		return !pred(v)
	}
}

// Compose is left to right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 is Compose for three functions.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Pipe composes functions of the same type left to right. Pipe() is Identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}
