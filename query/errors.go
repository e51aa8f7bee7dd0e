package query

import "errors"

// Sentinel errors returned by Sequence terminals and aggregates.
//
// Errors returned by caller-supplied functions (TryFilter, TrySelect, …) are
// never wrapped: the terminal that drove iteration returns them as-is, so
// callers compare them directly or with [errors.Is].
var (
	// ErrEmptySequence is returned when an operation needs at least one
	// element (Min, Max, Average, First) but the sequence produced none.
	ErrEmptySequence = errors.New("query: sequence contains no elements")

	// ErrStageNotFound is returned when [Sequence.Apply] or [LookupStage] is
	// asked for a name that was never registered.
	ErrStageNotFound = errors.New("query: stage not found")

	// ErrStageType is returned when a stage registered for one element
	// type is applied to a sequence of another.
	ErrStageType = errors.New("query: stage registered for a different element type")
)
