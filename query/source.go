package query

import "iter"

// From returns a lazy view over items. The slice is not copied: every
// iteration reads it afresh, so mutating it while a sequence built on it is
// being iterated gives undefined results.
func From[T any](items []T) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		for _, item := range items {
			if !yield(item) {
				return nil
			}
		}
		return nil
	})
}

// Of returns a sequence over the given items.
func Of[T any](items ...T) Sequence[T] { return From(items) }

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] { return Sequence[T]{} }

// FromSeq adapts a standard library iterator. Whether re-iteration restarts
// depends on seq itself.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		for v := range seq {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

// FromEnumerable returns the sequence view of any [Enumerable].
func FromEnumerable[T any](e Enumerable[T]) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		for v, err := range e.Iter() {
			if err != nil {
				return err
			}
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

// Range returns the count consecutive integers starting at start.
// A count <= 0 gives an empty sequence.
func Range(start, count int) Sequence[int] {
	if count <= 0 {
		return Empty[int]()
	}
	return newSequence(func(yield func(int) bool) error {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return nil
			}
		}
		return nil
	})
}

// Repeat returns a sequence yielding v n times. n <= 0 gives an empty
// sequence.
func Repeat[T any](v T, n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return newSequence(func(yield func(T) bool) error {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

// Generate returns an unbounded sequence whose i-th element is fn(i).
// Cap it with [Sequence.Take] or [Sequence.TakeWhile] before materializing.
func Generate[T any](fn func(i int) T) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		for i := 0; ; i++ {
			if !yield(fn(i)) {
				return nil
			}
		}
	})
}
