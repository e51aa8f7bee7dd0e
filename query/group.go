package query

// Group is one partition produced by [GroupBy]: the derived key and the
// members that produced it, in their original relative order.
type Group[K, T any] struct {
	Key   K
	items []T
}

// Items returns the members as a sequence.
func (g Group[K, T]) Items() Sequence[T] { return From(g.items) }

// All returns a copy of the members.
func (g Group[K, T]) All() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Len returns the number of members.
func (g Group[K, T]) Len() int { return len(g.items) }

// grouper accumulates members per key while remembering the order in which
// keys were first seen.
type grouper[B comparable, K, T any] struct {
	order []B
	keys  map[B]K
	items map[B][]T
}

func newGrouper[B comparable, K, T any]() *grouper[B, K, T] {
	return &grouper[B, K, T]{
		keys:  make(map[B]K),
		items: make(map[B][]T),
	}
}

func (g *grouper[B, K, T]) add(bucket B, key K, item T) {
	if _, ok := g.keys[bucket]; !ok {
		g.order = append(g.order, bucket)
		g.keys[bucket] = key
	}
	g.items[bucket] = append(g.items[bucket], item)
}

func (g *grouper[B, K, T]) emit(yield func(Group[K, T]) bool) {
	for _, b := range g.order {
		if !yield(Group[K, T]{Key: g.keys[b], items: g.items[b]}) {
			return
		}
	}
}

// GroupBy partitions s by keyFn. Groups come out in the order their keys
// first appear in s, and each group keeps its members in source order.
//
// Building the grouping is lazy; iterating it drains s once before the first
// group is yielded. An empty s yields no groups.
//
//	byInitial := query.GroupBy(students, func(s Student) byte { return s.Last[0] })
func GroupBy[T any, K comparable](s Sequence[T], keyFn func(T) K) Sequence[Group[K, T]] {
	return GroupBySelect(s, keyFn, func(v T) T { return v })
}

// GroupBySelect is [GroupBy] with the members projected through elemFn.
func GroupBySelect[T any, K comparable, E any](s Sequence[T], keyFn func(T) K, elemFn func(T) E) Sequence[Group[K, E]] {
	return newSequence(func(yield func(Group[K, E]) bool) error {
		g := newGrouper[K, K, E]()
		if err := s.iterate(func(v T) bool {
			k := keyFn(v)
			g.add(k, k, elemFn(v))
			return true
		}); err != nil {
			return err
		}
		g.emit(yield)
		return nil
	})
}

// TryGroupBy is [GroupBy] for key functions that can fail.
func TryGroupBy[T any, K comparable](s Sequence[T], keyFn func(T) (K, error)) Sequence[Group[K, T]] {
	return newSequence(func(yield func(Group[K, T]) bool) error {
		g := newGrouper[K, K, T]()
		var kerr error
		if err := s.iterate(func(v T) bool {
			k, err := keyFn(v)
			if err != nil {
				kerr = err
				return false
			}
			g.add(k, k, v)
			return true
		}); err != nil {
			return err
		}
		if kerr != nil {
			return kerr
		}
		g.emit(yield)
		return nil
	})
}

// GroupByDigest groups by keys that are not comparable, such as slices or
// maps. Keys are matched by [Digest]; each group reports the first key
// instance seen for it.
//
//	byScores := query.GroupByDigest(students, func(s Student) []int { return s.Scores })
func GroupByDigest[T, K any](s Sequence[T], keyFn func(T) K) Sequence[Group[K, T]] {
	return newSequence(func(yield func(Group[K, T]) bool) error {
		g := newGrouper[KeyDigest, K, T]()
		if err := s.iterate(func(v T) bool {
			k := keyFn(v)
			g.add(Digest(k), k, v)
			return true
		}); err != nil {
			return err
		}
		g.emit(yield)
		return nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Lookup is a materialized grouping with keyed access. Keys keep
// first-appearance order.
type Lookup[K comparable, T any] struct {
	groups []Group[K, T]
	index  map[K]int
}

// ToLookup forces the grouping of s by keyFn.
func ToLookup[T any, K comparable](s Sequence[T], keyFn func(T) K) (*Lookup[K, T], error) {
	groups, err := GroupBy(s, keyFn).ToSlice()
	if err != nil {
		return nil, err
	}
	l := &Lookup[K, T]{groups: groups, index: make(map[K]int, len(groups))}
	for i, g := range groups {
		l.index[g.Key] = i
	}
	return l, nil
}

// Get returns the members for key, or an empty sequence if key is absent.
func (l *Lookup[K, T]) Get(key K) Sequence[T] {
	i, ok := l.index[key]
	if !ok {
		return Empty[T]()
	}
	return l.groups[i].Items()
}

// Has reports whether any element produced key.
func (l *Lookup[K, T]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Keys returns the keys in first-appearance order.
func (l *Lookup[K, T]) Keys() []K {
	keys := make([]K, len(l.groups))
	for i, g := range l.groups {
		keys[i] = g.Key
	}
	return keys
}

// Len returns the number of groups.
func (l *Lookup[K, T]) Len() int { return len(l.groups) }

// Groups returns the groups as a sequence.
func (l *Lookup[K, T]) Groups() Sequence[Group[K, T]] { return From(l.groups) }
