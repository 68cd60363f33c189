package seq

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/opt"
)

// ToSlice collects the elements into a new slice.
func (s Seq[T]) ToSlice() []T {
	return slices.Collect(s.Iter())
}

// ForEach calls f on every element.
func (s Seq[T]) ForEach(f func(T)) {
	for v := range s {
		f(v)
	}
}

// Len consumes s and returns the number of elements.
func (s Seq[T]) Len() int {
	n := 0
	for range s {
		n++
	}
	return n
}

// First returns the first element.
func (s Seq[T]) First() opt.Opt[T] {
	for v := range s {
		return opt.Of(v)
	}
	return opt.None[T]()
}

// FirstOr returns the first element or def when s is empty.
func (s Seq[T]) FirstOr(def T) T {
	return s.First().GetOr(def)
}

// Last returns the last element.
func (s Seq[T]) Last() opt.Opt[T] {
	res := opt.None[T]()
	for v := range s {
		res = opt.Of(v)
	}
	return res
}

// Nth returns the element at index n.
func (s Seq[T]) Nth(n int) opt.Opt[T] {
	if n < 0 {
		return opt.None[T]()
	}
	return s.Drop(n).First()
}

// Single returns the only element, or None when s holds zero or several
// elements. At most two elements are pulled.
func (s Seq[T]) Single() opt.Opt[T] {
	res := opt.None[T]()
	count := 0
	for v := range s {
		count++
		if count > 1 {
			return opt.None[T]()
		}
		res = opt.Of(v)
	}
	return res
}

// Find returns the first element satisfying pred.
func (s Seq[T]) Find(pred func(T) bool) opt.Opt[T] {
	return s.Filter(pred).First()
}

// All reports whether every element satisfies pred. It is true for an empty sequence.
func (s Seq[T]) All(pred func(T) bool) bool {
	for v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether some element satisfies pred.
func (s Seq[T]) Any(pred func(T) bool) bool {
	for v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies pred.
func (s Seq[T]) None(pred func(T) bool) bool {
	return !s.Any(pred)
}

// Contains reports whether an element equal to v (per fn.Equal) occurs in s.
func (s Seq[T]) Contains(v T) bool {
	return s.Any(func(item T) bool {
		return fn.Equal(item, v)
	})
}

// Join formats each element with fmt.Sprint and joins them with sep.
func (s Seq[T]) Join(sep string) string {
	var sb strings.Builder
	first := true
	for v := range s {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteString(fmt.Sprint(v))
	}
	return sb.String()
}

// MinFunc returns the first minimal element according to cmp.
func (s Seq[T]) MinFunc(cmp func(a, b T) int) opt.Opt[T] {
	return s.best(func(cand, cur T) bool { return cmp(cand, cur) < 0 })
}

// MaxFunc returns the first maximal element according to cmp.
func (s Seq[T]) MaxFunc(cmp func(a, b T) int) opt.Opt[T] {
	return s.best(func(cand, cur T) bool { return cmp(cand, cur) > 0 })
}

func (s Seq[T]) best(better func(cand, cur T) bool) opt.Opt[T] {
	var cur T
	found := false
	for v := range s {
		if !found || better(v, cur) {
			cur, found = v, true
		}
	}
	if !found {
		return opt.None[T]()
	}
	return opt.Of(cur)
}

// ContainsValue reports whether v occurs in s using ==.
func ContainsValue[T comparable](s Seq[T], v T) bool {
	return s.Any(func(item T) bool { return item == v })
}

// Reduce folds the elements into an accumulator starting from init.
func Reduce[T, A any](s Seq[T], init A, f func(acc A, v T) A) A {
	acc := init
	for v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Sum adds up the elements. The sum of an empty sequence is zero.
func Sum[T fn.Number](s Seq[T]) T {
	return Reduce(s, T(0), func(acc, v T) T { return acc + v })
}

// Min returns the smallest element.
func Min[T cmp.Ordered](s Seq[T]) opt.Opt[T] {
	return s.MinFunc(cmp.Compare[T])
}

// Max returns the largest element.
func Max[T cmp.Ordered](s Seq[T]) opt.Opt[T] {
	return s.MaxFunc(cmp.Compare[T])
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) opt.Opt[T] {
	return s.MinFunc(byKey(key))
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) opt.Opt[T] {
	return s.MaxFunc(byKey(key))
}

// MinMax returns the smallest and largest element in one pass.
func MinMax[T cmp.Ordered](s Seq[T]) opt.Opt[fn.Tuple[T, T]] {
	var lo, hi T
	found := false
	for v := range s {
		if !found {
			lo, hi, found = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	if !found {
		return opt.None[fn.Tuple[T, T]]()
	}
	return opt.Some(fn.NewTuple(lo, hi))
}

// ToSet collects the distinct elements into a set.
func ToSet[T comparable](s Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range s {
		set[v] = struct{}{}
	}
	return set
}

// ToDict builds a map from key and value selectors. Later elements overwrite
// earlier ones with the same key.
func ToDict[T any, K comparable, V any](s Seq[T], key func(T) K, value func(T) V) map[K]V {
	res := make(map[K]V)
	for v := range s {
		res[key(v)] = value(v)
	}
	return res
}

// ToDictPairs builds a map from key/value tuples.
func ToDictPairs[K comparable, V any](s Seq[fn.Tuple[K, V]]) map[K]V {
	return ToDict(s, fn.Key[K, V], fn.Value[K, V])
}

// ToMultiDict groups values by key, keeping source order within each key.
func ToMultiDict[T any, K comparable, V any](s Seq[T], key func(T) K, value func(T) V) map[K][]V {
	res := make(map[K][]V)
	for v := range s {
		k := key(v)
		res[k] = append(res[k], value(v))
	}
	return res
}

// ToMultiDictPairs groups tuple values by tuple key.
func ToMultiDictPairs[K comparable, V any](s Seq[fn.Tuple[K, V]]) map[K][]V {
	return ToMultiDict(s, fn.Key[K, V], fn.Value[K, V])
}

func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
