package fn

import "fmt"

// Tuple is a pair of values. Sequences use it for zipped, enumerated and
// key/value elements.
type Tuple[A, B any] struct {
	V1 A
	V2 B
}

// NewTuple creates a Tuple from two values.
func NewTuple[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{V1: a, V2: b}
}

// Unpack returns both values.
func (t Tuple[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Swap returns a tuple with the values exchanged.
func (t Tuple[A, B]) Swap() Tuple[B, A] {
	return Tuple[B, A]{V1: t.V2, V2: t.V1}
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

func (t Tuple[A, B]) Equal(other Tuple[A, B]) bool {
	return Equal(t.V1, other.V1) && Equal(t.V2, other.V2)
}

var _ Equatable[Tuple[int, int]] = Tuple[int, int]{}

// Key returns the first element of a tuple.
func Key[A, B any](t Tuple[A, B]) A {
	return t.V1
}

// Value returns the second element of a tuple.
func Value[A, B any](t Tuple[A, B]) B {
	return t.V2
}

// Unpack adapts a two-argument function to take a Tuple.
func Unpack[A, B, R any](f func(A, B) R) func(Tuple[A, B]) R {
	return func(t Tuple[A, B]) R {
		return f(t.V1, t.V2)
	}
}

// InvokeOnKey applies f to the first element of a tuple.
func InvokeOnKey[A, B, R any](f func(A) R) func(Tuple[A, B]) R {
	return Compose(Key[A, B], f)
}

// InvokeOnValue applies f to the second element of a tuple.
func InvokeOnValue[A, B, R any](f func(B) R) func(Tuple[A, B]) R {
	return Compose(Value[A, B], f)
}
