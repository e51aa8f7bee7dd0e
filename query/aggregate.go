package query

import "cmp"

// Number is the set of types the numeric aggregates accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up the elements. It is 0 for an empty sequence; overflow and
// rounding follow N's native arithmetic.
func Sum[N Number](s Sequence[N]) (N, error) {
	var total N
	err := s.iterate(func(v N) bool {
		total += v
		return true
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumBy is [Sum] over fn applied to every element.
func SumBy[T any, N Number](s Sequence[T], fn func(T) N) (N, error) {
	return Sum(Select(s, fn))
}

// Min returns the smallest element, or [ErrEmptySequence].
// When several elements are equal the first one wins.
func Min[N cmp.Ordered](s Sequence[N]) (N, error) {
	return extreme(s, func(candidate, current N) bool { return cmp.Less(candidate, current) })
}

// Max returns the largest element, or [ErrEmptySequence].
func Max[N cmp.Ordered](s Sequence[N]) (N, error) {
	return extreme(s, func(candidate, current N) bool { return cmp.Less(current, candidate) })
}

// MinBy returns the element with the smallest key, or [ErrEmptySequence].
// Ties keep the earliest element.
func MinBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) (T, error) {
	b, err := extreme(Let(s, "key", key), func(candidate, current Binding[T, K]) bool {
		return cmp.Less(candidate.Value, current.Value)
	})
	return b.Item, err
}

// MaxBy returns the element with the largest key, or [ErrEmptySequence].
// Ties keep the earliest element.
func MaxBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) (T, error) {
	b, err := extreme(Let(s, "key", key), func(candidate, current Binding[T, K]) bool {
		return cmp.Less(current.Value, candidate.Value)
	})
	return b.Item, err
}

// extreme keeps the first element and replaces it whenever better reports
// a strictly preferable candidate.
func extreme[T any](s Sequence[T], better func(candidate, current T) bool) (T, error) {
	var (
		best T
		seen bool
	)
	err := s.iterate(func(v T) bool {
		if !seen || better(v, best) {
			best, seen = v, true
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !seen {
		return best, ErrEmptySequence
	}
	return best, nil
}

// Average returns the arithmetic mean as a float64, whatever N is. The sum
// is accumulated in float64 and divided by the count with floating-point
// division, so integer inputs are never truncated.
// Returns [ErrEmptySequence] for an empty sequence.
func Average[N Number](s Sequence[N]) (float64, error) {
	var (
		total float64
		count int
	)
	err := s.iterate(func(v N) bool {
		total += float64(v)
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrEmptySequence
	}
	return total / float64(count), nil
}

// AverageBy is [Average] over fn applied to every element.
func AverageBy[T any, N Number](s Sequence[T], fn func(T) N) (float64, error) {
	return Average(Select(s, fn))
}

// Reduce folds the sequence into a single value starting from seed.
//
//	product, _ := query.Reduce(query.Of(1, 2, 3, 4), 1, func(acc, n int) int { return acc * n })
func Reduce[T, U any](s Sequence[T], seed U, fn func(acc U, v T) U) (U, error) {
	acc := seed
	err := s.iterate(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	if err != nil {
		var zero U
		return zero, err
	}
	return acc, nil
}

// PerGroup applies agg independently to the members of every group,
// producing one (key, result) pair per group in group order. An agg error
// stops the pipeline like any other caller error.
//
//	totals := query.PerGroup(groups, func(members query.Sequence[Order]) (float64, error) {
//	    return query.SumBy(members, func(o Order) float64 { return o.Amount })
//	})
func PerGroup[K, T, R any](groups Sequence[Group[K, T]], agg func(Sequence[T]) (R, error)) Sequence[Pair[K, R]] {
	return TrySelect(groups, func(g Group[K, T]) (Pair[K, R], error) {
		r, err := agg(g.Items())
		if err != nil {
			return Pair[K, R]{}, err
		}
		return Pair[K, R]{First: g.Key, Second: r}, nil
	})
}
