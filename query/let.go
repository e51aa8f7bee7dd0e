package query

// Binding is an element augmented with a named, precomputed value: the
// result of [Let]. Later stages read Value instead of recomputing it.
type Binding[T, V any] struct {
	Item  T
	Name  string
	Value V
}

// Let introduces a computed value for each element, like a query-level
// local variable. valueFn runs exactly once per element per iteration;
// every later predicate, selector or key function in the pipeline sees the
// stored result.
//
//	passed := query.Let(students, "total", func(s Student) int {
//	    return s.Scores[0] + s.Scores[1] + s.Scores[2] + s.Scores[3]
//	}).Filter(func(b query.Binding[Student, int]) bool {
//	    return b.Value/4 < b.Item.Scores[0]
//	})
func Let[T, V any](s Sequence[T], name string, valueFn func(T) V) Sequence[Binding[T, V]] {
	return Select(s, func(v T) Binding[T, V] {
		return Binding[T, V]{Item: v, Name: name, Value: valueFn(v)}
	})
}

// TryLet is [Let] for value functions that can fail.
func TryLet[T, V any](s Sequence[T], name string, valueFn func(T) (V, error)) Sequence[Binding[T, V]] {
	return TrySelect(s, func(v T) (Binding[T, V], error) {
		val, err := valueFn(v)
		if err != nil {
			return Binding[T, V]{}, err
		}
		return Binding[T, V]{Item: v, Name: name, Value: val}, nil
	})
}

// Unbind drops the bound values and returns the original elements.
func Unbind[T, V any](s Sequence[Binding[T, V]]) Sequence[T] {
	return Select(s, func(b Binding[T, V]) T { return b.Item })
}
