package opt

import (
	"fmt"

	"github.com/samber/mo"
)

// PanicError carries a value recovered while evaluating a function.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during evaluation: %v", e.Value)
}

// Unwrap returns the recovered value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Try runs f and reports its outcome as an explicit result. A returned error
// and a panic both become Err; a panic is wrapped in *PanicError.
func Try[T any](f func() (T, error)) (res mo.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = mo.Err[T](&PanicError{Value: r})
		}
	}()
	v, err := f()
	return mo.TupleToResult(v, err)
}

// Eval runs f and wraps its result with Of. Any panic raised by f yields
// None and the cause is discarded; use Try when the cause matters.
func Eval[T any](f func() T) Opt[T] {
	return FromResult(Try(func() (T, error) {
		return f(), nil
	}))
}

// FromResult converts an Ok result into a present value and an Err into None.
func FromResult[T any](r mo.Result[T]) Opt[T] {
	v, err := r.Get()
	if err != nil {
		return None[T]()
	}
	return Of(v)
}

// ToResult converts o into a result, using err (or ErrEmptyOptional when nil)
// for the empty case.
func ToResult[T any](o Opt[T], err error) mo.Result[T] {
	v, err := o.GetOrRaise(err)
	return mo.TupleToResult(v, err)
}
