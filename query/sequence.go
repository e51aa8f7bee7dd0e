package query

import "iter"

// Sequence is a lazily evaluated, re-iterable sequence of T.
//
// A Sequence is only a description of how to produce elements: building one
// (from a source or by applying an operator) never touches the source.
// Elements are computed when a terminal such as [Sequence.ToSlice],
// [Sequence.Each] or a range loop over [Sequence.Iter] asks for them, and
// every such iteration re-runs the whole pipeline from the source.
//
// Sequence is a value type; the zero value is an empty sequence. Operators
// never mutate their input and are safe to share between independent
// iterations, provided the underlying source is not mutated meanwhile.
//
// # Errors
//
// Caller functions passed to the Try* operators may return an error. The
// first such error stops the pipeline at that element and is returned
// unchanged by the terminal that was driving iteration. Plain closures that
// panic unwind through the iteration the same way.
type Sequence[T any] struct {
	run func(yield func(T) bool) error
}

// newSequence wraps a run function. run must return nil when yield asks it
// to stop early.
func newSequence[T any](run func(yield func(T) bool) error) Sequence[T] {
	return Sequence[T]{run: run}
}

// iterate runs the pipeline once, feeding every element to yield until it
// returns false.
func (s Sequence[T]) iterate(yield func(T) bool) error {
	if s.run == nil {
		return nil
	}
	return s.run(yield)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns a range-over-func iterator over the sequence.
//
// Each element is yielded with a nil error. If the pipeline fails, a final
// pair (zero, err) is yielded and iteration ends:
//
//	for v, err := range s.Iter() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v)
//	}
func (s Sequence[T]) Iter() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		stopped := false
		err := s.iterate(func(v T) bool {
			if !yield(v, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			var zero T
			yield(zero, err)
		}
	}
}

// Pull exposes the sequence as an explicit cursor. next reports the next
// element, the pipeline error (if any) and whether a value or error was
// produced; stop releases the iteration and must be called when the caller
// is done, typically with defer.
//
//	next, stop := s.Pull()
//	defer stop()
//	v, err, ok := next()
func (s Sequence[T]) Pull() (next func() (T, error, bool), stop func()) {
	return iter.Pull2(s.Iter())
}

// Each calls fn for every element and returns the first pipeline error.
func (s Sequence[T]) Each(fn func(T)) error {
	return s.iterate(func(v T) bool {
		fn(v)
		return true
	})
}

// ForEach calls fn for every element, stopping at and returning the first
// error from either fn or the pipeline.
func (s Sequence[T]) ForEach(fn func(T) error) error {
	var ferr error
	err := s.iterate(func(v T) bool {
		if e := fn(v); e != nil {
			ferr = e
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return ferr
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialization
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice forces full evaluation and returns the elements in a new slice
// owned by the caller. On failure the partial result is discarded.
func (s Sequence[T]) ToSlice() ([]T, error) {
	out := make([]T, 0)
	if err := s.iterate(func(v T) bool {
		out = append(out, v)
		return true
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// ToList forces full evaluation into an immutable [List].
func (s Sequence[T]) ToList() (*List[T], error) {
	items, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Element terminals
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements. It is 0 for an empty sequence and
// fails only when the pipeline does.
func (s Sequence[T]) Count() (int, error) {
	n := 0
	err := s.iterate(func(T) bool {
		n++
		return true
	})
	return n, err
}

// First returns the first element, optionally the first one matching
// preds[0]. It pulls no further than the match.
// Returns [ErrEmptySequence] when nothing qualifies.
func (s Sequence[T]) First(preds ...func(T) bool) (T, error) {
	var (
		found T
		ok    bool
	)
	err := s.iterate(func(v T) bool {
		if len(preds) > 0 && !preds[0](v) {
			return true
		}
		found, ok = v, true
		return false
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		return found, ErrEmptySequence
	}
	return found, nil
}

// Any reports whether at least one element satisfies pred, stopping at the
// first match.
func (s Sequence[T]) Any(pred func(T) bool) (bool, error) {
	matched := false
	err := s.iterate(func(v T) bool {
		if pred(v) {
			matched = true
			return false
		}
		return true
	})
	return matched, err
}
