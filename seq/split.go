package seq

import (
	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
)

// Chunk groups elements into slices of n. The last chunk holds the remainder
// when the length is not a multiple of n. A non-positive n panics.
func Chunk[T any](s Seq[T], n int) Seq[[]T] {
	if n <= 0 {
		fnerr.InvalidArgument("chunk size must be positive, got %d", n)
	}
	return func(yield func([]T) bool) {
		buf := make([]T, 0, n)
		for v := range s {
			buf = append(buf, v)
			if len(buf) == n {
				if !yield(buf) {
					return
				}
				buf = make([]T, 0, n)
			}
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}

// SplitAt splits on elements satisfying pred. Delimiters are dropped, and so
// are empty groups: splitting ",a,,b," on commas yields [a] [b]. Use
// SplitAtKeepEmpty to keep them.
func SplitAt[T any](s Seq[T], pred func(T) bool) Seq[[]T] {
	return func(yield func([]T) bool) {
		var group []T
		for v := range s {
			if !pred(v) {
				group = append(group, v)
				continue
			}
			if len(group) > 0 && !yield(group) {
				return
			}
			group = nil
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// SplitAtKeepEmpty splits on elements satisfying pred and drops the
// delimiters, keeping the empty groups before, between and after them:
// splitting ",a,,b," on commas yields [] [a] [] [b] []. An empty sequence
// yields one empty group.
func SplitAtKeepEmpty[T any](s Seq[T], pred func(T) bool) Seq[[]T] {
	return func(yield func([]T) bool) {
		group := []T{}
		for v := range s {
			if !pred(v) {
				group = append(group, v)
				continue
			}
			if !yield(group) {
				return
			}
			group = []T{}
		}
		yield(group)
	}
}

// SplitBefore starts a new group at every element satisfying pred; the
// delimiter leads the following group.
func SplitBefore[T any](s Seq[T], pred func(T) bool) Seq[[]T] {
	return func(yield func([]T) bool) {
		var group []T
		for v := range s {
			if pred(v) && len(group) > 0 {
				if !yield(group) {
					return
				}
				group = nil
			}
			group = append(group, v)
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// SplitAfter ends a group at every element satisfying pred; the delimiter
// closes the preceding group.
func SplitAfter[T any](s Seq[T], pred func(T) bool) Seq[[]T] {
	return func(yield func([]T) bool) {
		var group []T
		for v := range s {
			group = append(group, v)
			if pred(v) {
				if !yield(group) {
					return
				}
				group = nil
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// Adjacent yields each pair of consecutive elements.
func Adjacent[T any](s Seq[T]) Seq[fn.Tuple[T, T]] {
	return AdjacentWith(s, fn.NewTuple[T, T])
}

// AdjacentWith applies op to each pair of consecutive elements.
func AdjacentWith[T, R any](s Seq[T], op func(prev, cur T) R) Seq[R] {
	return func(yield func(R) bool) {
		var prev T
		started := false
		for v := range s {
			if started && !yield(op(prev, v)) {
				return
			}
			prev, started = v, true
		}
	}
}

// AdjacentDifference yields cur - prev for each pair of consecutive elements.
func AdjacentDifference[T fn.Number](s Seq[T]) Seq[T] {
	return AdjacentWith(s, func(prev, cur T) T {
		return cur - prev
	})
}
