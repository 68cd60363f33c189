package seq_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/opt"
	"martianoff/galaseq/seq"
)

func isComma(s string) bool {
	return s == ","
}

func TestConstruction(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, seq.Range(0, 3).ToSlice())
	assert.Equal(t, []int{10, 7, 4, 1}, seq.RangeStep(10, 0, -3).ToSlice())
	assert.Empty(t, seq.Range(3, 3).ToSlice())
	assert.Equal(t,
		[]fn.Tuple[int, int]{fn.NewTuple(0, 9), fn.NewTuple(1, 8), fn.NewTuple(2, 7)},
		seq.Zip(seq.Range(0, 5), seq.Of(9, 8, 7)).ToSlice())
	assert.Equal(t, []int{6, 6, 6}, seq.Repeat(6, 3).ToSlice())
	assert.Equal(t, []int{6, 6, 6, 6}, seq.Repeat(6, -1).Take(4).ToSlice())
	assert.Equal(t, []int{6}, seq.Once(6).ToSlice())
	assert.Empty(t, seq.Empty[int]().ToSlice())
	assert.Equal(t, []int{5, 7, 9}, seq.Count(5, 2).Take(3).ToSlice())
	assert.Equal(t, []string{"x", ",", "é"}, seq.FromString("x,é").ToSlice())

	m := seq.ToDictPairs(seq.FromMap(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)

	assert.Panics(t, func() { seq.RangeStep(0, 10, 0) })
}

func TestFromPullIsSinglePass(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	i := 0
	s := seq.FromPull(func() (int, bool) {
		if i >= len(items) {
			return 0, false
		}
		i++
		return items[i-1], true
	})

	assert.Equal(t, []int{1, 2}, s.Take(2).ToSlice())
	assert.Equal(t, []int{3, 4, 5}, s.ToSlice())
	assert.Empty(t, s.ToSlice())
}

func TestSliceSourceIsReiterable(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, 6, seq.Sum(s))
	assert.Equal(t, 6, seq.Sum(s))
}

func TestStatelessTransforms(t *testing.T) {
	r10 := seq.Range(0, 10)
	div3 := func(x int) bool { return x%3 == 0 }

	assert.Equal(t, []int{0, 1, 4, 9}, seq.Map(seq.Range(0, 4), func(x int) int { return x * x }).ToSlice())
	assert.Equal(t, []int{0, 3, 6, 9}, r10.TakeIf(div3).ToSlice())
	assert.Equal(t, []int{1, 2, 4, 5, 7, 8}, r10.DropIf(div3).ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3}, r10.TakeWhile(func(x int) bool { return x < 4 }).ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3}, r10.TakeUntil(func(x int) bool { return x == 4 }).ToSlice())
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, r10.DropWhile(func(x int) bool { return x < 4 }).ToSlice())
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, r10.DropUntil(func(x int) bool { return x == 4 }).ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r10.Take(5).ToSlice())
	assert.Equal(t, []int{5, 6, 7, 8, 9}, r10.Drop(5).ToSlice())
	assert.Equal(t, []int{2, 3, 4, 5}, r10.Slice(2, 6).ToSlice())
	assert.Equal(t, []int{7, 8, 9}, r10.Slice(7, -1).ToSlice())
	assert.Equal(t, []int{0, 4, 8}, r10.Step(4).ToSlice())
	assert.Equal(t, []int{7, 8, 9}, r10.Tail(3).ToSlice())
	assert.Equal(t, []int{0, 1}, seq.Range(0, 2).Tail(5).ToSlice())
	assert.Equal(t, []int{4, 3, 2, 1, 0}, seq.Range(0, 5).Reverse().ToSlice())
	assert.Empty(t, r10.Take(0).ToSlice())

	assert.Equal(t,
		[]fn.Tuple[int, string]{fn.NewTuple(1, "x"), fn.NewTuple(2, "y"), fn.NewTuple(3, "z")},
		seq.EnumerateFrom(seq.Of("x", "y", "z"), 1).ToSlice())
	assert.Equal(t, []int{0, 1, 2}, seq.Keys(seq.Enumerate(seq.Of("a", "b", "c"))).ToSlice())
	assert.Equal(t, []string{"a", "b", "c"}, seq.Values(seq.Enumerate(seq.Of("a", "b", "c"))).ToSlice())
	assert.Equal(t, []string{"0a", "1b"}, seq.MapIndexed(seq.Of("a", "b"), func(i int, s string) string {
		return string(rune('0'+i)) + s
	}).ToSlice())
}

func TestTakeDoesNotOverpull(t *testing.T) {
	pulled := 0
	s := seq.Range(0, 100).Peek(func(int) { pulled++ })
	assert.Equal(t, []int{0, 1, 2}, s.Take(3).ToSlice())
	assert.Equal(t, 3, pulled)
}

func TestLaziness(t *testing.T) {
	calls := 0
	s := seq.Map(seq.Range(0, 5), func(x int) int {
		calls++
		return x
	}).Filter(func(x int) bool { return x > 1 })
	assert.Equal(t, 0, calls)
	assert.True(t, s.First().EqualValue(2))
	assert.Equal(t, 3, calls)
}

func TestSorting(t *testing.T) {
	assert.Equal(t, []int{2, 3, 8, 9}, seq.Sort(seq.Of(9, 3, 2, 8)).ToSlice())
	assert.Equal(t, []int{9, 8, 3, 2}, seq.SortDesc(seq.Of(9, 3, 2, 8)).ToSlice())

	words := seq.Of("bb", "a", "cc", "d")
	assert.Equal(t, []string{"a", "d", "bb", "cc"}, seq.SortBy(words, func(s string) int { return len(s) }).ToSlice())
	assert.Equal(t, []string{"bb", "cc", "a", "d"}, seq.SortByDesc(words, func(s string) int { return len(s) }).ToSlice())
	assert.Equal(t, []string{"d", "cc", "bb", "a"}, words.SortFunc(func(a, b string) int { return strings.Compare(b, a) }).ToSlice())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{5, 1, 2, 3, 4}, seq.Unique(seq.Of(5, 1, 2, 1, 3, 1, 4)).ToSlice())
	assert.Equal(t, []string{"apple", "banana"}, seq.UniqueBy(seq.Of("apple", "avocado", "banana", "blueberry"), func(s string) byte {
		return s[0]
	}).ToSlice())
}

func TestConcatenation(t *testing.T) {
	assert.Equal(t,
		[]int{0, 1, 2, 3, -2, -1, 9, -42},
		seq.Range(0, 4).Chain(seq.Of(-2, -1)).Extend(seq.Of(9)).Push(-42).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, seq.Of(3).Prepend(seq.Of(1), seq.Of(2)).ToSlice())
	assert.Equal(t, []int{1, 2}, seq.Of(1).Append(seq.Of(2)).ToSlice())
	assert.Equal(t, "AlphaBetaGamma", seq.Flatten(seq.Of([]string{"Alpha"}, []string{"Beta", "Gamma"})).Join(""))
	assert.Equal(t, []int{10, 10, 11, 10, 11, 12}, seq.FlatMap(seq.Range(0, 3), func(x int) seq.Seq[int] {
		return seq.Range(10, 11+x)
	}).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, seq.FlattenSeq(seq.Of(seq.Of(1), seq.Empty[int](), seq.Of(2, 3))).ToSlice())
}

func TestReplace(t *testing.T) {
	assert.Equal(t, []int{10, 11, -888, 13, 14, -888},
		seq.Range(10, 16).ReplaceIf(func(x int) bool { return x%3 == 0 }, -888).ToSlice())
	assert.Equal(t, []int{-888, 11, 12}, seq.Replace(seq.Range(10, 13), 10, -888).ToSlice())
}

func TestFilterMap(t *testing.T) {
	ptr := func(v int) *int { return &v }
	values := seq.Of(ptr(0), nil, ptr(1), nil, ptr(2), nil)
	got := seq.FilterMap(values, func(p *int) opt.Opt[int] {
		return opt.Map(opt.Of(p), func(p *int) int { return *p })
	})
	assert.Equal(t, []int{0, 1, 2}, got.ToSlice())

	opts := seq.Of(opt.Some(1), opt.None[int](), opt.Some(2), opt.None[int]())
	assert.Equal(t, []int{1, 2}, seq.FilterMap(opts, fn.Identity[opt.Opt[int]]).ToSlice())
}

func TestChunk(t *testing.T) {
	squares := seq.Map(seq.Range(0, 8), func(x int) int { return x * x })
	assert.Equal(t, [][]int{{0, 1, 4}, {9, 16, 25}, {36, 49}}, seq.Chunk(squares, 3).ToSlice())
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, seq.Chunk(seq.Of(1, 2, 3, 4), 2).ToSlice())
	assert.Empty(t, seq.Chunk(seq.Empty[int](), 2).ToSlice())
	assert.Panics(t, func() { seq.Chunk(seq.Of(1), 0) })
}

func TestSplit(t *testing.T) {
	assert.Equal(t,
		[][]string{{"x", ","}, {"y", ","}, {"z"}},
		seq.SplitAfter(seq.FromString("x,y,z"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{"x"}, {",", "y"}, {",", "z"}},
		seq.SplitBefore(seq.FromString("x,y,z"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{"x", "y"}, {"y", "z"}, {"z", "z"}},
		seq.SplitAt(seq.FromString("xy,,yz,,zz,,"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{"a"}, {"b"}},
		seq.SplitAt(seq.FromString(",a,,b,"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{}, {"a"}, {}, {"b"}, {}},
		seq.SplitAtKeepEmpty(seq.FromString(",a,,b,"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{}},
		seq.SplitAtKeepEmpty(seq.Empty[string](), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{",", "a"}},
		seq.SplitBefore(seq.FromString(",a"), isComma).ToSlice())
	assert.Equal(t,
		[][]string{{","}, {"a"}},
		seq.SplitAfter(seq.FromString(",a"), isComma).ToSlice())
}

func TestAdjacent(t *testing.T) {
	assert.Equal(t,
		[]fn.Tuple[int, int]{fn.NewTuple(3, 0), fn.NewTuple(0, 9), fn.NewTuple(9, 8), fn.NewTuple(8, 7)},
		seq.Adjacent(seq.Of(3, 0, 9, 8, 7)).ToSlice())
	assert.Equal(t, []int{-3, 9, -1}, seq.AdjacentDifference(seq.Of(3, 0, 9, 8)).ToSlice())
	assert.Equal(t, []int{3, 9, 17}, seq.AdjacentWith(seq.Of(1, 2, 7, 10), func(a, b int) int { return a + b }).ToSlice())
	assert.Empty(t, seq.Adjacent(seq.Of(1)).ToSlice())
}

func TestIntersperse(t *testing.T) {
	assert.Equal(t, []string{"A", ",", "B", ",", "C"}, seq.Of("A", "B", "C").Intersperse(",").ToSlice())
	assert.Equal(t, []string{"A"}, seq.Of("A").Intersperse(",").ToSlice())
}

func TestZipWith(t *testing.T) {
	assert.Equal(t, []int{9, 9, 9, 9},
		seq.ZipWith(seq.Range(0, 4), seq.Of(9, 8, 7, 6, 5), func(a, b int) int { return a + b }).ToSlice())
}

func TestPredicatesAndSearch(t *testing.T) {
	lt10 := func(x int) bool { return x < 10 }
	assert.True(t, seq.Range(0, 3).All(lt10))
	assert.True(t, seq.Range(0, 3).Any(lt10))
	assert.False(t, seq.Range(0, 3).None(lt10))
	assert.True(t, seq.Empty[int]().All(lt10))

	assert.True(t, seq.Of(1, 2, 3).Contains(3))
	assert.False(t, seq.Of(1, 2, 3).Contains(8))
	assert.True(t, seq.Of([]int{1}, []int{2}).Contains([]int{2}))
	assert.True(t, seq.ContainsValue(seq.Of("a", "b"), "b"))

	gt := func(n int) func(int) bool { return func(x int) bool { return x > n } }
	assert.True(t, seq.Of(8, 9, 10, 11, 12).Find(gt(10)).EqualValue(11))
	assert.True(t, seq.Of(8, 9, 10, 11, 12).Find(gt(100)).IsEmpty())
}

func TestElementAccess(t *testing.T) {
	assert.True(t, seq.Empty[int]().First().IsEmpty())
	assert.Equal(t, -1, seq.Empty[int]().First().GetOr(-1))
	assert.Equal(t, -2, seq.Empty[int]().First().GetOrElse(func() int { return -2 }))
	assert.Equal(t, -3, seq.Empty[int]().FirstOr(-3))
	assert.True(t, seq.Of(1, 2, 3).First().Equal(opt.Some(1)))
	assert.True(t, seq.Empty[int]().Last().Equal(opt.None[int]()))
	assert.True(t, seq.Of(1, 2, 3).Last().EqualValue(3))
	assert.True(t, seq.Of(1, 2, 3).Nth(1).EqualValue(2))
	assert.True(t, seq.Of(1, 2, 3).Nth(4).IsEmpty())
	assert.True(t, seq.Of(1, 2, 3).Nth(-1).IsEmpty())
	assert.True(t, seq.Of(8).Single().EqualValue(8))
	assert.True(t, seq.Empty[int]().Single().IsEmpty())
	assert.True(t, seq.Of(8, 9).Single().IsEmpty())
}

func TestSingleStopsAfterTwo(t *testing.T) {
	pulled := 0
	assert.True(t, seq.Count(0, 1).Peek(func(int) { pulled++ }).Single().IsEmpty())
	assert.Equal(t, 2, pulled)
}

func TestAggregation(t *testing.T) {
	assert.Equal(t, "012", seq.Range(0, 3).Join(""))
	assert.Equal(t, "a, b", seq.Of("a", "b").Join(", "))
	assert.Equal(t, 5050, seq.Sum(seq.Range(1, 101)))
	assert.InDelta(t, 0.6, seq.Sum(seq.Of(0.1, 0.2, 0.3)), 1e-9)
	assert.Equal(t, 0, seq.Sum(seq.Empty[int]()))
	assert.Equal(t, 4, seq.Range(0, 10).TakeIf(func(x int) bool { return x%3 == 0 }).Len())
	assert.Equal(t, "1-2-3", seq.Reduce(seq.Of(1, 2, 3), "", func(acc string, v int) string {
		if acc == "" {
			return string(rune('0' + v))
		}
		return acc + "-" + string(rune('0'+v))
	}))

	sum := 0
	seq.Of(1, 2, 3).ForEach(func(v int) { sum += v })
	assert.Equal(t, 6, sum)
}

func TestMinMax(t *testing.T) {
	dist3 := func(x int) int { return int(math.Abs(float64(x - 3))) }

	assert.True(t, seq.Min(seq.Of(1, 2, 3, 4)).EqualValue(1))
	assert.True(t, seq.MinBy(seq.Of(0, 1, 2, 3, 4), dist3).EqualValue(3))
	assert.True(t, seq.Min(seq.Empty[int]()).IsEmpty())
	assert.True(t, seq.Max(seq.Of(1, 2, 3, 4)).EqualValue(4))
	assert.True(t, seq.MaxBy(seq.Of(0, 1, 2, 3, 4), dist3).EqualValue(0))
	assert.True(t, seq.Max(seq.Empty[int]()).IsEmpty())

	// ties resolve to the first occurrence
	assert.True(t, seq.MinBy(seq.Of("bb", "a", "c"), func(s string) int { return len(s) }).EqualValue("a"))
	assert.True(t, seq.MaxBy(seq.Of("a", "bb", "cc"), func(s string) int { return len(s) }).EqualValue("bb"))

	mm := seq.MinMax(seq.Of(4, 9, 1, 7))
	assert.True(t, mm.EqualValue(fn.NewTuple(1, 9)))
	assert.True(t, seq.MinMax(seq.Empty[int]()).IsEmpty())
}

func TestCollections(t *testing.T) {
	mod2 := func(x int) int { return x % 2 }

	assert.Equal(t, map[int]int{0: 8, 1: 9}, seq.ToDict(seq.Range(0, 10), mod2, fn.Identity[int]))
	assert.Equal(t,
		map[int][]int{0: {0, 2, 4, 6, 8}, 1: {1, 3, 5, 7, 9}},
		seq.ToMultiDict(seq.Range(0, 10), mod2, fn.Identity[int]))
	assert.Equal(t,
		map[int]string{1: "a", 2: "b", 3: "c", 4: "d"},
		seq.ToDictPairs(seq.Zip(seq.Of(1, 2, 3, 4), seq.Of("a", "b", "c", "d"))))
	assert.Equal(t,
		map[string][]int{"a": {1, 3}, "b": {2}},
		seq.ToMultiDictPairs(seq.Of(fn.NewTuple("a", 1), fn.NewTuple("b", 2), fn.NewTuple("a", 3))))
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}}, seq.ToSet(seq.Of(1, 2, 1)))

	c := seq.Map(seq.Range(0, 3), func(x int) int { return x + 1 }).Collect()
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
	assert.Equal(t, []int{1, 2}, c.Take(2).ToSlice())
}

func TestGroupBy(t *testing.T) {
	words := seq.Of("apple", "avocado", "banana", "apricot", "blueberry", "cherry")
	first := func(s string) byte { return s[0] }

	groups := seq.GroupBy(words, first).ToSlice()
	require.Len(t, groups, 5)
	assert.Equal(t, fn.NewTuple(byte('a'), []string{"apple", "avocado"}), groups[0])
	assert.Equal(t, fn.NewTuple(byte('b'), []string{"banana"}), groups[1])
	assert.Equal(t, fn.NewTuple(byte('a'), []string{"apricot"}), groups[2])

	sorted := seq.SortAndGroupBy(words, first).ToSlice()
	require.Len(t, sorted, 3)
	assert.Equal(t, fn.NewTuple(byte('a'), []string{"apple", "avocado", "apricot"}), sorted[0])
	assert.Equal(t, fn.NewTuple(byte('b'), []string{"banana", "blueberry"}), sorted[1])
	assert.Equal(t, fn.NewTuple(byte('c'), []string{"cherry"}), sorted[2])

	assert.Empty(t, seq.GroupBy(seq.Empty[string](), first).ToSlice())
}

func TestSetOperations(t *testing.T) {
	assert.Equal(t, []int{2, 3, 7}, seq.Intersection(seq.Of(1, 2, 2, 3, 7), seq.Of(2, 9, 3, 7, 7)).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 7, 9}, seq.Union(seq.Of(1, 2, 2, 3, 7), seq.Of(2, 9, 3, 7, 7)).ToSlice())
	assert.ElementsMatch(t, []int{1, 2, 7}, seq.Difference(seq.Of(7, 2, 2, 3, 1), seq.Of(3)).ToSlice())
	assert.Equal(t, []int{9, 6, 2}, seq.Exclude(seq.Of(9, 1, 6, 2, 7), seq.Of(7, 1)).ToSlice())
	assert.Equal(t, []int{9, 9, 2}, seq.Exclude(seq.Of(9, 1, 9, 2), seq.Of(1)).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, seq.Union(seq.Of(1), seq.Of(2), seq.Of(3, 1)).ToSlice())
}

func TestIterInterop(t *testing.T) {
	var got []int
	for v := range seq.Range(0, 3) {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, []int{0, 1, 2}, seq.From(seq.Range(0, 3).Iter()).ToSlice())
}
