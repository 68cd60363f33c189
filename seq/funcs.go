package seq

import (
	"cmp"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/opt"
)

// Map applies f to every element.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapIndexed applies f to every element and its index.
func MapIndexed[T, U any](s Seq[T], f func(int, T) U) Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for v := range s {
			if !yield(f(i, v)) {
				return
			}
			i++
		}
	}
}

// FlatMap maps every element to a sequence and concatenates the results.
func FlatMap[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	return FlattenSeq(Map(s, f))
}

// Flatten concatenates a sequence of slices.
func Flatten[T any](s Seq[[]T]) Seq[T] {
	return FlattenSeq(Map(s, FromSlice[T]))
}

// FlattenSeq concatenates a sequence of sequences.
func FlattenSeq[T any](s Seq[Seq[T]]) Seq[T] {
	return func(yield func(T) bool) {
		for inner := range s {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FilterMap applies f and keeps the present results.
func FilterMap[T, U any](s Seq[T], f func(T) opt.Opt[U]) Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if u, ok := f(v).Unwrap(); ok && !yield(u) {
				return
			}
		}
	}
}

// Unique drops repeated elements, keeping the first occurrence of each.
func Unique[T comparable](s Seq[T]) Seq[T] {
	return UniqueBy(s, fn.Identity[T])
}

// UniqueBy drops elements whose key was already seen.
func UniqueBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range s {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Replace substitutes replacement for every element equal to old.
func Replace[T comparable](s Seq[T], old, replacement T) Seq[T] {
	return s.ReplaceIf(func(v T) bool { return v == old }, replacement)
}

// Keys yields the first element of each tuple.
func Keys[K, V any](s Seq[fn.Tuple[K, V]]) Seq[K] {
	return Map(s, fn.Key[K, V])
}

// Values yields the second element of each tuple.
func Values[K, V any](s Seq[fn.Tuple[K, V]]) Seq[V] {
	return Map(s, fn.Value[K, V])
}

// Sort yields the elements in ascending order.
func Sort[T cmp.Ordered](s Seq[T]) Seq[T] {
	return s.SortFunc(cmp.Compare[T])
}

// SortDesc yields the elements in descending order.
func SortDesc[T cmp.Ordered](s Seq[T]) Seq[T] {
	return s.SortFunc(func(a, b T) int { return cmp.Compare(b, a) })
}

// SortBy yields the elements stably sorted by ascending key.
func SortBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	return s.SortFunc(byKey(key))
}

// SortByDesc yields the elements stably sorted by descending key.
func SortByDesc[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	return s.SortFunc(func(a, b T) int { return cmp.Compare(key(b), key(a)) })
}

// GroupBy groups runs of consecutive elements sharing a key. Elements with
// equal keys that are not adjacent end up in separate groups; sort first (or
// use SortAndGroupBy) for a full grouping.
func GroupBy[T any, K comparable](s Seq[T], key func(T) K) Seq[fn.Tuple[K, []T]] {
	return func(yield func(fn.Tuple[K, []T]) bool) {
		var (
			cur   K
			group []T
		)
		for v := range s {
			k := key(v)
			if len(group) > 0 && k != cur {
				if !yield(fn.NewTuple(cur, group)) {
					return
				}
				group = nil
			}
			cur = k
			group = append(group, v)
		}
		if len(group) > 0 {
			yield(fn.NewTuple(cur, group))
		}
	}
}

// SortAndGroupBy sorts by key and groups, yielding one group per distinct key
// in ascending key order.
func SortAndGroupBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[fn.Tuple[K, []T]] {
	return GroupBy(SortBy(s, key), key)
}
