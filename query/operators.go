package query

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a sequence of the elements for which pred returns true, in
// source order.
func (s Sequence[T]) Filter(pred func(T) bool) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		return s.iterate(func(v T) bool {
			if pred(v) {
				return yield(v)
			}
			return true
		})
	})
}

// Where is an alias for [Sequence.Filter].
func (s Sequence[T]) Where(pred func(T) bool) Sequence[T] { return s.Filter(pred) }

// TryFilter is [Sequence.Filter] for predicates that can fail. The first
// error ends the pipeline and is returned unchanged.
func (s Sequence[T]) TryFilter(pred func(T) (bool, error)) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		var perr error
		err := s.iterate(func(v T) bool {
			ok, err := pred(v)
			if err != nil {
				perr = err
				return false
			}
			if ok {
				return yield(v)
			}
			return true
		})
		if err != nil {
			return err
		}
		return perr
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Select maps every element through selector, one output per input, in
// order. It is a package-level function because Go methods cannot introduce
// the output type parameter.
//
//	names := query.Select(students, func(s Student) string { return s.Last })
func Select[T, U any](s Sequence[T], selector func(T) U) Sequence[U] {
	return newSequence(func(yield func(U) bool) error {
		return s.iterate(func(v T) bool {
			return yield(selector(v))
		})
	})
}

// TrySelect is [Select] for selectors that can fail.
func TrySelect[T, U any](s Sequence[T], selector func(T) (U, error)) Sequence[U] {
	return newSequence(func(yield func(U) bool) error {
		var serr error
		err := s.iterate(func(v T) bool {
			out, err := selector(v)
			if err != nil {
				serr = err
				return false
			}
			return yield(out)
		})
		if err != nil {
			return err
		}
		return serr
	})
}

// Map is a type-preserving [Select].
func (s Sequence[T]) Map(fn func(T) T) Sequence[T] { return Select(s, fn) }

// SelectMany maps every element to a slice and flattens the results.
func SelectMany[T, U any](s Sequence[T], fn func(T) []U) Sequence[U] {
	return newSequence(func(yield func(U) bool) error {
		return s.iterate(func(v T) bool {
			for _, out := range fn(v) {
				if !yield(out) {
					return false
				}
			}
			return true
		})
	})
}

// Tap calls fn for every element as it passes through, without changing
// the sequence. Useful for logging and debugging a pipeline.
func (s Sequence[T]) Tap(fn func(T)) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		return s.iterate(func(v T) bool {
			fn(v)
			return yield(v)
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take yields at most the first n elements. A negative or zero n gives an
// empty sequence without touching the source; the element after the n-th is
// never pulled, so Take is safe on unbounded or expensive sources.
func (s Sequence[T]) Take(n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return newSequence(func(yield func(T) bool) error {
		taken := 0
		return s.iterate(func(v T) bool {
			taken++
			if !yield(v) {
				return false
			}
			return taken < n
		})
	})
}

// Skip drops the first n elements and yields the rest.
// A negative n is treated as zero.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	if n <= 0 {
		return s
	}
	return newSequence(func(yield func(T) bool) error {
		skipped := 0
		return s.iterate(func(v T) bool {
			if skipped < n {
				skipped++
				return true
			}
			return yield(v)
		})
	})
}

// TakeWhile yields elements from the start while pred holds and stops at
// the first element that fails it.
func (s Sequence[T]) TakeWhile(pred func(T) bool) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		return s.iterate(func(v T) bool {
			if !pred(v) {
				return false
			}
			return yield(v)
		})
	})
}

// SkipWhile drops elements while pred holds, then yields the first failing
// element and everything after it.
func (s Sequence[T]) SkipWhile(pred func(T) bool) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		skipping := true
		return s.iterate(func(v T) bool {
			if skipping && pred(v) {
				return true
			}
			skipping = false
			return yield(v)
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set-like and combining operators
// ─────────────────────────────────────────────────────────────────────────────

// Distinct yields each distinct element once, at its first occurrence.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields the first element for every distinct key.
func DistinctBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		seen := make(map[K]struct{})
		return s.iterate(func(v T) bool {
			k := key(v)
			if _, ok := seen[k]; ok {
				return true
			}
			seen[k] = struct{}{}
			return yield(v)
		})
	})
}

// Concat yields all elements of s followed by those of others, in order.
func (s Sequence[T]) Concat(others ...Sequence[T]) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		stopped := false
		emit := func(v T) bool {
			if !yield(v) {
				stopped = true
				return false
			}
			return true
		}
		if err := s.iterate(emit); err != nil || stopped {
			return err
		}
		for _, o := range others {
			if err := o.iterate(emit); err != nil || stopped {
				return err
			}
		}
		return nil
	})
}

// Reverse yields the elements in reverse order. Like ordering, it drains the
// upstream sequence before yielding anything.
func (s Sequence[T]) Reverse() Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		items, err := s.ToSlice()
		if err != nil {
			return err
		}
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return nil
			}
		}
		return nil
	})
}

// Zip pairs up elements of a and b position by position and stops at the
// end of the shorter sequence.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	return newSequence(func(yield func(Pair[A, B]) bool) error {
		next, stop := b.Pull()
		defer stop()
		var berr error
		err := a.iterate(func(x A) bool {
			y, err, ok := next()
			if err != nil {
				berr = err
				return false
			}
			if !ok {
				return false
			}
			return yield(Pair[A, B]{First: x, Second: y})
		})
		if err != nil {
			return err
		}
		return berr
	})
}
