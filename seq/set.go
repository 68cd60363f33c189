package seq

import (
	"github.com/samber/lo"
)

// Set-style operations materialize their inputs when iterated. Results keep
// the order of first occurrence and contain no duplicates, except Exclude,
// which only removes the excluded values.

// Union yields the distinct elements of s and others.
func Union[T comparable](s Seq[T], others ...Seq[T]) Seq[T] {
	return deferred(func() []T {
		lists := [][]T{s.ToSlice()}
		for _, o := range others {
			lists = append(lists, o.ToSlice())
		}
		return lo.Union(lists...)
	})
}

// Intersection yields the distinct elements of s that also occur in other.
func Intersection[T comparable](s, other Seq[T]) Seq[T] {
	return deferred(func() []T {
		set := ToSet(other)
		return lo.Uniq(lo.Filter(s.ToSlice(), func(v T, _ int) bool {
			_, ok := set[v]
			return ok
		}))
	})
}

// Difference yields the distinct elements of s that do not occur in other.
func Difference[T comparable](s, other Seq[T]) Seq[T] {
	return deferred(func() []T {
		left, _ := lo.Difference(s.ToSlice(), other.ToSlice())
		return lo.Uniq(left)
	})
}

// Exclude removes every element occurring in excluded and keeps the rest,
// duplicates included, in source order. Only excluded is materialized.
func Exclude[T comparable](s, excluded Seq[T]) Seq[T] {
	return func(yield func(T) bool) {
		set := ToSet(excluded)
		for v := range s {
			if _, ok := set[v]; ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func deferred[T any](f func() []T) Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range f() {
			if !yield(v) {
				return
			}
		}
	}
}
