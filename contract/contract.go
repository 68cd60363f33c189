// Package contract checks values and function boundaries against predicates.
//
// Failed checks are reported as errors rather than panics:
//
//	sqrt := contract.Wrap("sqrt", math.Sqrt).
//		Require(pred.NonNegative[float64]()).
//		Ensure(pred.NonNegative[float64]())
//	v, err := sqrt.Call(-1) // [PreconditionError] sqrt: argument: expected = non_negative; actual = -1 <float64>
package contract

import (
	"fmt"

	"martianoff/galaseq/fnerr"
	"martianoff/galaseq/pred"
)

// Ensure returns nil when cond holds. Otherwise it returns an error built
// from err, which may be an error, a message, or a func() error or
// func() string evaluated only on failure.
func Ensure(cond bool, err any) error {
	if cond {
		return nil
	}
	switch e := err.(type) {
	case nil:
		return fnerr.New(fnerr.TypeAssertion, "assertion failed")
	case error:
		return e
	case string:
		return fnerr.New(fnerr.TypeAssertion, e)
	case func() error:
		return e()
	case func() string:
		return fnerr.New(fnerr.TypeAssertion, e())
	default:
		return fnerr.Newf(fnerr.TypeAssertion, "%v", e)
	}
}

// Value is a named value to be checked.
type Value[T any] struct {
	v       T
	name    string
	errType fnerr.ErrorType
}

// ValueOf names v for diagnostics. Failures are reported as assertion errors
// unless changed with As.
func ValueOf[T any](v T, name string) Value[T] {
	if name == "" {
		name = "<unknown>"
	}
	return Value[T]{v: v, name: name, errType: fnerr.TypeAssertion}
}

// As changes the error type reported on failure.
func (x Value[T]) As(t fnerr.ErrorType) Value[T] {
	x.errType = t
	return x
}

// Ensure checks the predicates in order and stops at the first failure. It
// returns the value so checks can be written inline.
func (x Value[T]) Ensure(preds ...pred.Predicate[T]) (T, error) {
	for _, p := range preds {
		if !p.Test(x.v) {
			return x.v, x.failure(p)
		}
	}
	return x.v, nil
}

// CheckAll checks every predicate and reports all failures at once.
func (x Value[T]) CheckAll(preds ...pred.Predicate[T]) error {
	errs := &fnerr.MultiError{}
	for _, p := range preds {
		if !p.Test(x.v) {
			errs.Errors = append(errs.Errors, x.failure(p))
		}
	}
	return errs.ErrorOrNil()
}

func (x Value[T]) failure(p pred.Predicate[T]) *fnerr.ConditionError {
	return fnerr.NewConditionError(x.errType, x.name, p.String(), describe(x.v))
}

func describe(v any) string {
	return fmt.Sprintf("%v <%T>", v, v)
}
