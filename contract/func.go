package contract

import (
	"slices"

	"martianoff/galaseq/fnerr"
	"martianoff/galaseq/pred"
)

// Func is a single-argument function guarded by preconditions on its argument
// and postconditions on its result. Functions of several arguments can be
// wrapped through fn.Tuple and fn.Unpack.
//
// Require and Ensure return a new Func, so a guarded function can be
// extended without affecting the original.
type Func[A, R any] struct {
	name string
	f    func(A) R
	pre  []pred.Predicate[A]
	post []pred.Predicate[R]
}

// Wrap guards f under name. Without conditions Call behaves like f.
func Wrap[A, R any](name string, f func(A) R) *Func[A, R] {
	return &Func[A, R]{name: name, f: f}
}

// Pre wraps f with preconditions on its argument.
func Pre[A, R any](name string, f func(A) R, preds ...pred.Predicate[A]) *Func[A, R] {
	return Wrap(name, f).Require(preds...)
}

// Post wraps f with postconditions on its result.
func Post[A, R any](name string, f func(A) R, preds ...pred.Predicate[R]) *Func[A, R] {
	return Wrap(name, f).Ensure(preds...)
}

// Require adds preconditions after the existing ones.
func (w *Func[A, R]) Require(preds ...pred.Predicate[A]) *Func[A, R] {
	c := w.clone()
	c.pre = append(c.pre, preds...)
	return c
}

// Ensure adds postconditions after the existing ones.
func (w *Func[A, R]) Ensure(preds ...pred.Predicate[R]) *Func[A, R] {
	c := w.clone()
	c.post = append(c.post, preds...)
	return c
}

func (w *Func[A, R]) clone() *Func[A, R] {
	return &Func[A, R]{
		name: w.name,
		f:    w.f,
		pre:  slices.Clone(w.pre),
		post: slices.Clone(w.post),
	}
}

func (w *Func[A, R]) Name() string {
	return w.name
}

// Call checks the preconditions, calls the function and checks the
// postconditions. The function is not called when a precondition fails.
func (w *Func[A, R]) Call(a A) (R, error) {
	var zero R
	if _, err := ValueOf(a, w.name+": argument").As(fnerr.TypePrecondition).Ensure(w.pre...); err != nil {
		return zero, err
	}
	r := w.f(a)
	if _, err := ValueOf(r, w.name+": return value").As(fnerr.TypePostcondition).Ensure(w.post...); err != nil {
		return zero, err
	}
	return r, nil
}

// MustCall is Call that panics on a failed condition.
func (w *Func[A, R]) MustCall(a A) R {
	r, err := w.Call(a)
	if err != nil {
		panic(err)
	}
	return r
}

// Func returns Call as a plain function.
func (w *Func[A, R]) Func() func(A) (R, error) {
	return w.Call
}
