// Package match implements a sequential pattern matcher.
//
// A match tests a value against an ordered list of cases and returns the
// result of the handler of the first case whose pattern accepts the value.
// Patterns and handlers are tagged variants fixed at construction time:
//
//	classify := match.Create(
//		match.On(match.If(func(x int) bool { return x < 10 }), match.Apply(func(x int) int { return 100 * x })),
//		match.On(match.Value(42), match.Return[int](0)),
//		match.On(match.Any[int](), match.Return[int](-1)),
//	)
package match

import (
	"fmt"
	"reflect"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
	"martianoff/galaseq/pred"
)

// Kind tags the way a Pattern tests values.
type Kind int

const (
	// KindLiteral patterns accept values equal to a literal.
	KindLiteral Kind = iota
	// KindType patterns accept values of a given dynamic type.
	KindType
	// KindPredicate patterns accept values satisfying a predicate.
	KindPredicate
	// KindAny patterns accept every value.
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindType:
		return "type"
	case KindPredicate:
		return "predicate"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Pattern decides whether a case applies to a value.
type Pattern[T any] struct {
	kind Kind
	desc string
	test func(T) bool
}

// Value matches values equal to v according to fn.Equal.
func Value[T any](v T) Pattern[T] {
	return Pattern[T]{kind: KindLiteral, desc: fmt.Sprintf("%#v", v), test: func(x T) bool {
		return fn.Equal(x, v)
	}}
}

// Type matches values whose dynamic type is U or implements U. It is meant
// for interface-typed subjects such as any or error.
func Type[T, U any]() Pattern[T] {
	return Pattern[T]{kind: KindType, desc: reflect.TypeFor[U]().String(), test: func(x T) bool {
		_, ok := any(x).(U)
		return ok
	}}
}

// If matches values for which f returns true.
func If[T any](f func(T) bool) Pattern[T] {
	return Pred(pred.Of(f))
}

// Pred matches values satisfying p.
func Pred[T any](p pred.Predicate[T]) Pattern[T] {
	return Pattern[T]{kind: KindPredicate, desc: p.String(), test: p.Func()}
}

// Any matches every value.
func Any[T any]() Pattern[T] {
	return Pattern[T]{kind: KindAny, desc: "_", test: func(T) bool { return true }}
}

func (p Pattern[T]) Kind() Kind {
	return p.kind
}

// Matches reports whether p accepts v.
func (p Pattern[T]) Matches(v T) bool {
	return p.test(v)
}

func (p Pattern[T]) String() string {
	return p.desc
}

// HandlerKind tags the way a Handler produces its result.
type HandlerKind int

const (
	// KindReturn handlers return a fixed value.
	KindReturn HandlerKind = iota
	// KindApply handlers are called with the matched value.
	KindApply
	// KindCall handlers are called without arguments.
	KindCall
)

// Handler produces the result of a matched case.
type Handler[T, R any] struct {
	kind  HandlerKind
	apply func(T) R
}

// Return always produces v.
func Return[T, R any](v R) Handler[T, R] {
	return Handler[T, R]{kind: KindReturn, apply: fn.Const[T](v)}
}

// Apply produces f(v) for the matched value v.
func Apply[T, R any](f func(T) R) Handler[T, R] {
	return Handler[T, R]{kind: KindApply, apply: f}
}

// Call produces f() and ignores the matched value.
func Call[T, R any](f func() R) Handler[T, R] {
	return Handler[T, R]{kind: KindCall, apply: func(T) R { return f() }}
}

func (h Handler[T, R]) Kind() HandlerKind {
	return h.kind
}

// Handle produces the result for v.
func (h Handler[T, R]) Handle(v T) R {
	return h.apply(v)
}

// Case pairs a pattern with the handler run when it matches.
type Case[T, R any] struct {
	Pattern Pattern[T]
	Handler Handler[T, R]
}

// On builds a case.
func On[T, R any](p Pattern[T], h Handler[T, R]) Case[T, R] {
	return Case[T, R]{Pattern: p, Handler: h}
}

// Match returns the result of the first case matching v. Cases are tried in
// order and only the winning handler runs. When no case matches, the error
// is a *fnerr.MatchError satisfying errors.Is(err, fnerr.ErrNoMatch).
func Match[T, R any](v T, cases ...Case[T, R]) (R, error) {
	for _, c := range cases {
		if c.Pattern.Matches(v) {
			return c.Handler.Handle(v), nil
		}
	}
	var zero R
	return zero, fnerr.NewMatchError(v)
}

// Create returns a function that matches its argument against cases.
func Create[T, R any](cases ...Case[T, R]) func(T) (R, error) {
	cases = append([]Case[T, R](nil), cases...)
	return func(v T) (R, error) {
		return Match(v, cases...)
	}
}
