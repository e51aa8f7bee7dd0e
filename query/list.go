package query

import (
	"encoding/json"
	"fmt"
	"iter"
)

// List is the materialized form of a [Sequence]: an immutable, ordered
// container of already computed elements.
//
// Lists are produced by [Sequence.ToList] or [NewList] and handed back into
// lazy pipelines with [List.Seq]. Nothing in the package modifies a List
// after construction, so it may be read from several goroutines at once.
type List[T any] struct {
	items []T
}

// NewList creates a List holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Seq returns a lazy sequence over the list.
func (l *List[T]) Seq() Sequence[T] { return From(l.items) }

// Iter implements [Enumerable]. A List never fails.
func (l *List[T]) Iter() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range l.items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Count implements [Enumerable]; the error is always nil.
func (l *List[T]) Count() (int, error) { return len(l.items), nil }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// At returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice implements [Enumerable]; it is [List.All] with a nil error.
func (l *List[T]) ToSlice() ([]T, error) { return l.All(), nil }

// ToJSON serialises the elements to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}
