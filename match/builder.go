package match

import "martianoff/galaseq/pred"

// Matcher accumulates cases fluently:
//
//	m := match.New[int, string]().
//		When(match.Value(0)).Return("zero").
//		WhenIf(func(x int) bool { return x < 0 }).Then(strconv.Itoa).
//		Otherwise().Call(func() string { return "many" })
type Matcher[T, R any] struct {
	cases []Case[T, R]
}

// New returns an empty matcher.
func New[T, R any]() *Matcher[T, R] {
	return &Matcher[T, R]{}
}

// Clause is a pattern waiting for its handler.
type Clause[T, R any] struct {
	m       *Matcher[T, R]
	pattern Pattern[T]
}

// When starts a case with pattern p.
func (m *Matcher[T, R]) When(p Pattern[T]) *Clause[T, R] {
	return &Clause[T, R]{m: m, pattern: p}
}

// WhenIf starts a case matching values for which f returns true.
func (m *Matcher[T, R]) WhenIf(f func(T) bool) *Clause[T, R] {
	return m.When(If(f))
}

// WhenPred starts a case matching values satisfying p.
func (m *Matcher[T, R]) WhenPred(p pred.Predicate[T]) *Clause[T, R] {
	return m.When(Pred(p))
}

// Otherwise starts a case matching every value.
func (m *Matcher[T, R]) Otherwise() *Clause[T, R] {
	return m.When(Any[T]())
}

// Case appends prebuilt cases.
func (m *Matcher[T, R]) Case(cases ...Case[T, R]) *Matcher[T, R] {
	m.cases = append(m.cases, cases...)
	return m
}

// Handle completes the case with h.
func (c *Clause[T, R]) Handle(h Handler[T, R]) *Matcher[T, R] {
	return c.m.Case(On(c.pattern, h))
}

// Then completes the case with a handler applied to the matched value.
func (c *Clause[T, R]) Then(f func(T) R) *Matcher[T, R] {
	return c.Handle(Apply(f))
}

// Return completes the case with a fixed result.
func (c *Clause[T, R]) Return(v R) *Matcher[T, R] {
	return c.Handle(Return[T](v))
}

// Call completes the case with a handler that takes no arguments.
func (c *Clause[T, R]) Call(f func() R) *Matcher[T, R] {
	return c.Handle(Call[T](f))
}

// Match runs v through the cases added so far.
func (m *Matcher[T, R]) Match(v T) (R, error) {
	return Match(v, m.cases...)
}

// MustMatch is Match that panics when no case matches.
func (m *Matcher[T, R]) MustMatch(v T) R {
	r, err := m.Match(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Func returns a snapshot of the matcher as a function. Cases added later
// do not affect it.
func (m *Matcher[T, R]) Func() func(T) (R, error) {
	return Create(m.cases...)
}
