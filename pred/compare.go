package pred

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
)

// Always holds for every value.
func Always[T any]() Predicate[T] {
	return New("always", func(T) bool { return true })
}

// Never holds for no value.
func Never[T any]() Predicate[T] {
	return New("never", func(T) bool { return false })
}

// Eq holds for values equal to v according to fn.Equal.
func Eq[T any](v T) Predicate[T] {
	return New(call("eq", v), func(x T) bool { return fn.Equal(x, v) })
}

// Ne holds for values not equal to v.
func Ne[T any](v T) Predicate[T] {
	return New(call("ne", v), func(x T) bool { return !fn.Equal(x, v) })
}

func Lt[T cmp.Ordered](v T) Predicate[T] {
	return New(call("lt", v), func(x T) bool { return x < v })
}

func Le[T cmp.Ordered](v T) Predicate[T] {
	return New(call("le", v), func(x T) bool { return x <= v })
}

func Gt[T cmp.Ordered](v T) Predicate[T] {
	return New(call("gt", v), func(x T) bool { return x > v })
}

func Ge[T cmp.Ordered](v T) Predicate[T] {
	return New(call("ge", v), func(x T) bool { return x >= v })
}

// Between holds for lo <= x < up.
func Between[T cmp.Ordered](lo, up T) Predicate[T] {
	return New(call("between", lo, up), func(x T) bool { return lo <= x && x < up })
}

func Positive[T fn.Number]() Predicate[T] {
	return New("positive", func(x T) bool { return x > 0 })
}

func Negative[T fn.Number]() Predicate[T] {
	return New("negative", func(x T) bool { return x < 0 })
}

func Zero[T fn.Number]() Predicate[T] {
	return New("zero", func(x T) bool { return x == 0 })
}

func NonNegative[T fn.Number]() Predicate[T] {
	return New("non_negative", func(x T) bool { return x >= 0 })
}

func NonPositive[T fn.Number]() Predicate[T] {
	return New("non_positive", func(x T) bool { return x <= 0 })
}

// DivisibleBy holds for multiples of d. A zero d panics on evaluation.
func DivisibleBy[T constraints.Integer](d T) Predicate[T] {
	return New(call("divisible_by", d), func(x T) bool { return x%d == 0 })
}

func Even[T constraints.Integer]() Predicate[T] {
	return DivisibleBy[T](2).Named("even")
}

func Odd[T constraints.Integer]() Predicate[T] {
	return New("odd", func(x T) bool { return x%2 != 0 })
}

// ApproxEqual holds for x with |x-v| <= max(relTol*max(|x|, |v|), absTol).
// Infinities are only close to themselves and NaN is close to nothing.
func ApproxEqual[T constraints.Float](v T, relTol, absTol float64) Predicate[T] {
	if relTol < 0 || absTol < 0 {
		fnerr.InvalidArgument("tolerances must not be negative, got rel=%v abs=%v", relTol, absTol)
	}
	return New(call("approx_equal", v, relTol, absTol), func(x T) bool {
		return isClose(float64(x), float64(v), relTol, absTol)
	})
}

// Close is ApproxEqual with a relative tolerance of 1e-9.
func Close[T constraints.Float](v T) Predicate[T] {
	return ApproxEqual(v, 1e-9, 0)
}

func isClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= math.Abs(relTol*b) || diff <= math.Abs(relTol*a) || diff <= absTol
}
