// Package query provides composable, lazily evaluated query operators over
// in-memory sequences: filter, project, let-bind, order, take, group and
// aggregate, in the spirit of LINQ to Objects.
//
// # Overview
//
// The central type is [Sequence][T], a lazy, re-iterable description of a
// pipeline. Operators return new sequences without running anything:
//
//	q := query.Select(
//	    query.Of(36, 5, 91, 3, 41, 69, 8).
//	        Filter(func(n int) bool { return n != 36 && n < 50 }).
//	        OrderBy(query.Desc(func(n int) int { return n })).
//	        Take(3),
//	    func(n int) int { return n + 5 },
//	)
//	got, err := q.ToSlice() // → [46 13 10]
//
// # Deferred execution
//
// Nothing is evaluated until a terminal pulls elements: [Sequence.ToSlice],
// [Sequence.ToList], [Sequence.Each], a range loop over [Sequence.Iter], an
// aggregate such as [Sum], and so on. Every terminal re-runs the pipeline
// from its source; call ToList once and reuse the [List] to avoid that.
//
// Elements flow one at a time and only as fast as the consumer asks for
// them. The exceptions are [Sequence.OrderBy], [GroupBy] and
// [Sequence.Reverse], which must see every upstream element before they can
// yield their first one.
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so operations that change
// the element type are package-level functions: [Select], [TrySelect],
// [SelectMany], [Let], [GroupBy], [GroupBySelect], [Zip], and the aggregates
// [Sum], [Min], [Max], [Average], [Reduce], [PerGroup].
//
// # Errors
//
// [Min], [Max], [Average] and [Sequence.First] return [ErrEmptySequence]
// when there is nothing to aggregate; [Sum] and [Sequence.Count] return 0.
// Errors from caller functions passed to the Try* operators stop the pipeline
// at the failing element and reach the caller unchanged. There is no
// skipping and no partial result.
//
// # Stages (runtime extension)
//
// Reusable pipeline fragments can be registered by name with
// [RegisterStage] and spliced into a pipeline with [Sequence.Apply]. A stage
// is typed by its element type and stays lazy: it is looked up and built
// when the pipeline runs, and lookup failures surface from the terminal as
// [ErrStageNotFound] or [ErrStageType].
package query
