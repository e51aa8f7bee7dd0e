package query

import (
	"cmp"
	"slices"
)

// Ordering is one level of a sort specification: a key and a direction.
// Build levels with [Asc], [Desc], [By] and [ByDesc]; the first level passed
// to [Sequence.OrderBy] is the primary key and each later level only breaks
// ties left by the ones before it.
type Ordering[T any] struct {
	// prepare extracts whatever keys the level needs from items and returns
	// a comparison over their indexes.
	prepare func(items []T) func(i, j int) int
	desc    bool
}

// Asc orders by key, smallest first. Keys are extracted once per element.
func Asc[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	return Ordering[T]{prepare: keyed(key)}
}

// Desc orders by key, largest first.
func Desc[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	return Ordering[T]{prepare: keyed(key), desc: true}
}

// By orders with a three-way comparison (negative when a sorts before b),
// for keys that are not [cmp.Ordered].
func By[T any](compare func(a, b T) int) Ordering[T] {
	return Ordering[T]{prepare: compared(compare)}
}

// ByDesc is [By] with the direction reversed.
func ByDesc[T any](compare func(a, b T) int) Ordering[T] {
	return Ordering[T]{prepare: compared(compare), desc: true}
}

func keyed[T any, K cmp.Ordered](key func(T) K) func([]T) func(i, j int) int {
	return func(items []T) func(i, j int) int {
		keys := make([]K, len(items))
		for i, item := range items {
			keys[i] = key(item)
		}
		return func(i, j int) int { return cmp.Compare(keys[i], keys[j]) }
	}
}

func compared[T any](compare func(a, b T) int) func([]T) func(i, j int) int {
	return func(items []T) func(i, j int) int {
		return func(i, j int) int { return compare(items[i], items[j]) }
	}
}

// OrderBy sorts the sequence by the given levels. Ascending is the default
// per level; a descending level reverses only its own comparison.
//
// The sort is stable: elements that compare equal on every level keep their
// source order. Ordering needs every element before it can produce the
// first one, so iterating the result drains the upstream sequence; building
// it does not.
//
//	s.OrderBy(query.Desc(func(n int) int { return n }))
func (s Sequence[T]) OrderBy(levels ...Ordering[T]) Sequence[T] {
	levels = slices.Clone(levels)
	return newSequence(func(yield func(T) bool) error {
		items, err := s.ToSlice()
		if err != nil {
			return err
		}
		for _, item := range sortStable(items, levels) {
			if !yield(item) {
				return nil
			}
		}
		return nil
	})
}

func sortStable[T any](items []T, levels []Ordering[T]) []T {
	if len(levels) == 0 || len(items) < 2 {
		return items
	}
	compares := make([]func(i, j int) int, len(levels))
	for n, level := range levels {
		c := level.prepare(items)
		if level.desc {
			asc := c
			c = func(i, j int) int { return asc(j, i) }
		}
		compares[n] = c
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		for _, c := range compares {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	})

	out := make([]T, len(items))
	for i, k := range idx {
		out[i] = items[k]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Fluent ordering
// ─────────────────────────────────────────────────────────────────────────────

// Ordered is a sorted sequence that can take further tie-breaking levels
// with [ThenBy] and [ThenByDescending]. It embeds the sorted [Sequence], so
// every Sequence method applies to it directly.
type Ordered[T any] struct {
	Sequence[T]
	source Sequence[T]
	levels []Ordering[T]
}

func newOrdered[T any](source Sequence[T], levels []Ordering[T]) Ordered[T] {
	return Ordered[T]{Sequence: source.OrderBy(levels...), source: source, levels: levels}
}

// OrderBy sorts s ascending by key.
//
//	byName := query.ThenBy(query.OrderBy(people, lastName), firstName)
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) Ordered[T] {
	return newOrdered(s, []Ordering[T]{Asc(key)})
}

// OrderByDescending sorts s descending by key.
func OrderByDescending[T any, K cmp.Ordered](s Sequence[T], key func(T) K) Ordered[T] {
	return newOrdered(s, []Ordering[T]{Desc(key)})
}

// ThenBy adds an ascending tie-breaking level to o.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return newOrdered(o.source, append(slices.Clip(o.levels), Asc(key)))
}

// ThenByDescending adds a descending tie-breaking level to o.
func ThenByDescending[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return newOrdered(o.source, append(slices.Clip(o.levels), Desc(key)))
}
