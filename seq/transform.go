package seq

import (
	"slices"

	"martianoff/galaseq/fn"
	"martianoff/galaseq/fnerr"
)

// Filter keeps the elements satisfying pred.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// TakeIf is an alias of Filter.
func (s Seq[T]) TakeIf(pred func(T) bool) Seq[T] {
	return s.Filter(pred)
}

// DropIf removes the elements satisfying pred.
func (s Seq[T]) DropIf(pred func(T) bool) Seq[T] {
	return s.Filter(fn.Negate(pred))
}

// TakeWhile yields elements until pred first fails.
func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements while pred holds and yields the rest.
func (s Seq[T]) DropWhile(pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range s {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// TakeUntil yields elements until pred first holds.
func (s Seq[T]) TakeUntil(pred func(T) bool) Seq[T] {
	return s.TakeWhile(fn.Negate(pred))
}

// DropUntil skips elements until pred first holds.
func (s Seq[T]) DropUntil(pred func(T) bool) Seq[T] {
	return s.DropWhile(fn.Negate(pred))
}

// Take yields at most n elements. It never pulls more than n from the source.
func (s Seq[T]) Take(n int) Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Drop skips the first n elements.
func (s Seq[T]) Drop(n int) Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Slice yields the elements with index in [start, stop). A negative stop
// means no upper bound.
func (s Seq[T]) Slice(start, stop int) Seq[T] {
	if start < 0 {
		fnerr.InvalidArgument("slice start must not be negative, got %d", start)
	}
	if stop < 0 {
		return s.Drop(start)
	}
	return s.Drop(start).Take(stop - start)
}

// Step yields every n-th element, starting with the first.
func (s Seq[T]) Step(n int) Seq[T] {
	if n <= 0 {
		fnerr.InvalidArgument("step must be positive, got %d", n)
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// Tail yields the last n elements. The source is consumed before the first
// element is produced.
func (s Seq[T]) Tail(n int) Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		ring := make([]T, 0, n)
		start := 0
		for v := range s {
			if len(ring) < n {
				ring = append(ring, v)
				continue
			}
			ring[start] = v
			start = (start + 1) % n
		}
		for i := range ring {
			if !yield(ring[(start+i)%len(ring)]) {
				return
			}
		}
	}
}

// Enumerate pairs each element with its index.
func Enumerate[T any](s Seq[T]) Seq[fn.Tuple[int, T]] {
	return EnumerateFrom(s, 0)
}

// EnumerateFrom pairs each element with a counter beginning at start.
func EnumerateFrom[T any](s Seq[T], start int) Seq[fn.Tuple[int, T]] {
	return func(yield func(fn.Tuple[int, T]) bool) {
		i := start
		for v := range s {
			if !yield(fn.NewTuple(i, v)) {
				return
			}
			i++
		}
	}
}

// Reverse yields the elements in reverse order. The source is materialized.
func (s Seq[T]) Reverse() Seq[T] {
	return func(yield func(T) bool) {
		items := slices.Collect(s.Iter())
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// SortFunc yields the elements stably sorted by cmp. The source is materialized.
func (s Seq[T]) SortFunc(cmp func(a, b T) int) Seq[T] {
	return func(yield func(T) bool) {
		items := slices.Collect(s.Iter())
		slices.SortStableFunc(items, cmp)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Chain yields s followed by each of others.
func (s Seq[T]) Chain(others ...Seq[T]) Seq[T] {
	return Concat(append([]Seq[T]{s}, others...)...)
}

// Append is an alias of Chain.
func (s Seq[T]) Append(others ...Seq[T]) Seq[T] {
	return s.Chain(others...)
}

// Extend is an alias of Chain.
func (s Seq[T]) Extend(others ...Seq[T]) Seq[T] {
	return s.Chain(others...)
}

// Prepend yields others followed by s.
func (s Seq[T]) Prepend(others ...Seq[T]) Seq[T] {
	return Concat(slices.Concat(others, []Seq[T]{s})...)
}

// Push yields s followed by values.
func (s Seq[T]) Push(values ...T) Seq[T] {
	return s.Chain(FromSlice(values))
}

// Concat yields each sequence in turn.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Intersperse places sep between consecutive elements.
func (s Seq[T]) Intersperse(sep T) Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range s {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// ReplaceIf substitutes replacement for every element satisfying pred.
func (s Seq[T]) ReplaceIf(pred func(T) bool, replacement T) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) {
				v = replacement
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Peek calls f on every element as it passes through.
func (s Seq[T]) Peek(f func(T)) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			f(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materializes s and returns a re-iterable sequence over the result.
func (s Seq[T]) Collect() Seq[T] {
	return FromSlice(s.ToSlice())
}
