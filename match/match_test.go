package match_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/galaseq/fnerr"
	"martianoff/galaseq/match"
	"martianoff/galaseq/pred"
)

func TestCreate(t *testing.T) {
	matcher := match.Create(
		match.On(match.If(func(x int) bool { return x < 10 }), match.Apply(func(x int) int { return 100 * x })),
		match.On(match.Pred(pred.Between(10, 20)), match.Return[int](881)),
		match.On(match.Any[int](), match.Call[int](func() int { return 991 })),
	)

	for in, want := range map[int]int{5: 500, 10: 881, 999: 991} {
		got, err := matcher(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %d", in)
	}
}

func TestBuilderWithAny(t *testing.T) {
	startsWith := func(prefix string) func(any) bool {
		return func(x any) bool {
			s, ok := x.(string)
			return ok && strings.HasPrefix(s, prefix)
		}
	}

	m := match.New[any, string]().
		WhenIf(func(x any) bool { return x == nil }).Return("None").
		WhenIf(startsWith("X")).Then(func(x any) string { return strings.ToLower(x.(string)) }).
		WhenIf(startsWith("Y")).Then(func(x any) string { return "_" + strings.ToUpper(x.(string)) }).
		When(match.Value[any]("?")).Call(func() string { return "@" }).
		When(match.Value[any]("!")).Return("%").
		When(match.Type[any, int]()).Return("int").
		Otherwise().Then(func(x any) string { return x.(string) })

	cases := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{"Abc", "Abc"},
		{"Xyphos", "xyphos"},
		{"Ydaspes", "_YDASPES"},
		{"?", "@"},
		{"!", "%"},
		{42, "int"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.MustMatch(tc.in))
	}
}

func TestNoMatch(t *testing.T) {
	matcher := match.New[int, string]().
		When(match.Value(1)).Return("one").
		Func()

	got, err := matcher(1)
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	_, err = matcher(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fnerr.ErrNoMatch))
	var me *fnerr.MatchError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 2, me.Value)

	assert.Panics(t, func() { match.New[int, int]().MustMatch(0) })
}

func TestFirstMatchWins(t *testing.T) {
	ran := 0
	got, err := match.Match(3,
		match.On(match.Pred(pred.Odd[int]()), match.Apply(func(x int) int { ran++; return x })),
		match.On(match.Any[int](), match.Apply(func(x int) int { ran++; return -x })),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 1, ran)
}

func TestFuncSnapshot(t *testing.T) {
	m := match.New[int, string]().When(match.Value(1)).Return("one")
	f := m.Func()
	m.Otherwise().Return("other")

	_, err := f(2)
	assert.Error(t, err)
	assert.Equal(t, "other", m.MustMatch(2))
}

func TestTypePatterns(t *testing.T) {
	classify := match.Create(
		match.On(match.Type[error, interface{ Timeout() bool }](), match.Return[error]("timeout")),
		match.On(match.If(func(err error) bool { return errors.Is(err, io.EOF) }), match.Return[error]("eof")),
		match.On(match.Any[error](), match.Apply(func(err error) string { return err.Error() })),
	)

	got, err := classify(io.EOF)
	require.NoError(t, err)
	assert.Equal(t, "eof", got)

	got, err = classify(errors.New("boom"))
	require.NoError(t, err)
	assert.Equal(t, "boom", got)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, match.KindLiteral, match.Value(1).Kind())
	assert.Equal(t, match.KindType, match.Type[any, string]().Kind())
	assert.Equal(t, match.KindPredicate, match.If(func(int) bool { return true }).Kind())
	assert.Equal(t, match.KindAny, match.Any[int]().Kind())
	assert.Equal(t, "predicate", match.KindPredicate.String())
	assert.Equal(t, "string", match.Type[any, string]().String())
	assert.Equal(t, "gt(3)", match.Pred(pred.Gt(3)).String())

	assert.Equal(t, match.KindReturn, match.Return[int](1).Kind())
	assert.Equal(t, match.KindApply, match.Apply(func(int) int { return 0 }).Kind())
	assert.Equal(t, match.KindCall, match.Call[int](func() int { return 0 }).Kind())
}
