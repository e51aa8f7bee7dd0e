package query

import "iter"

// Enumerable is the interface satisfied by both [Sequence] and [List].
//
// Accept Enumerable in your own functions when you do not care whether the
// caller hands you a lazy pipeline or already materialized results, and turn
// it into a Sequence with [FromEnumerable].
type Enumerable[T any] interface {
	// Iter yields every element with a nil error, or a final zero value
	// paired with the error that stopped iteration.
	Iter() iter.Seq2[T, error]

	// Count returns the number of elements.
	Count() (int, error)

	// ToSlice returns the elements in a new slice owned by the caller.
	ToSlice() ([]T, error)
}

var (
	_ Enumerable[int] = Sequence[int]{}
	_ Enumerable[int] = (*List[int])(nil)
)
