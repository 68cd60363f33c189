package seq

import (
	"iter"
	"runtime"
	"slices"

	"martianoff/galaseq/fnerr"
)

// teeBuffer shares one pass over a source between several branches. Elements
// are kept from the slowest branch's cursor onwards; buf[0] holds the element
// with absolute index base.
type teeBuffer[T any] struct {
	next    func() (T, bool)
	stop    func()
	buf     []T
	base    int
	cursors []int
	done    bool
}

// Tee splits s into n independent single-pass sequences. The source is
// pulled at most once per element, on demand of the fastest branch, and each
// branch sees every element in order regardless of how the branches are
// interleaved. A branch that is ranged again resumes after the last element
// it produced.
func (s Seq[T]) Tee(n int) []Seq[T] {
	if n < 0 {
		fnerr.InvalidArgument("tee count must not be negative, got %d", n)
	}
	if n == 0 {
		return nil
	}

	next, stop := iter.Pull(s.Iter())
	b := &teeBuffer[T]{next: next, stop: stop, cursors: make([]int, n)}
	// Releases a source that was abandoned before exhaustion.
	runtime.AddCleanup(b, func(stop func()) { stop() }, stop)

	branches := make([]Seq[T], n)
	for i := range branches {
		branches[i] = b.branch(i)
	}
	return branches
}

// Partition splits s into the elements satisfying pred and the rest, both in
// source order, from a single pass over s.
func (s Seq[T]) Partition(pred func(T) bool) (Seq[T], Seq[T]) {
	branches := s.Tee(2)
	return branches[0].TakeIf(pred), branches[1].DropIf(pred)
}

func (b *teeBuffer[T]) branch(i int) Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := b.pull(i)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (b *teeBuffer[T]) pull(i int) (T, bool) {
	offset := b.cursors[i] - b.base
	if offset == len(b.buf) {
		if b.done {
			var zero T
			return zero, false
		}
		v, ok := b.next()
		if !ok {
			b.done = true
			b.stop()
			var zero T
			return zero, false
		}
		b.buf = append(b.buf, v)
	}

	v := b.buf[offset]
	b.cursors[i]++
	b.release()
	return v, true
}

// release drops the elements every branch has already produced.
func (b *teeBuffer[T]) release() {
	n := slices.Min(b.cursors) - b.base
	if n <= 0 {
		return
	}
	clear(b.buf[:n])
	b.buf = b.buf[n:]
	b.base += n
}
