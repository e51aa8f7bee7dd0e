package query

import (
	"fmt"
	"sync"
)

// Stage is a named, reusable pipeline step over Sequence[T]. args carry
// per-call parameters; a stage should check them and return an error
// rather than panic on a bad argument.
type Stage[T any] func(s Sequence[T], args ...any) (Sequence[T], error)

var stages = struct {
	sync.RWMutex
	byName map[string]any // name -> Stage[T] for the T it was registered with
}{byName: make(map[string]any)}

// RegisterStage stores st under name, replacing any earlier stage with
// that name. A stage is bound to the element type it was registered for.
//
//	query.RegisterStage("under", func(s query.Sequence[int], args ...any) (query.Sequence[int], error) {
//	    limit, ok := args[0].(int)
//	    if !ok {
//	        return s, fmt.Errorf("under: want int limit, got %T", args[0])
//	    }
//	    return s.Filter(func(n int) bool { return n < limit }), nil
//	})
func RegisterStage[T any](name string, st Stage[T]) {
	stages.Lock()
	defer stages.Unlock()
	stages.byName[name] = st
}

// HasStage reports whether any stage is registered under name.
func HasStage(name string) bool {
	stages.RLock()
	defer stages.RUnlock()
	_, ok := stages.byName[name]
	return ok
}

// FlushStages removes every registered stage.
func FlushStages() {
	stages.Lock()
	defer stages.Unlock()
	stages.byName = make(map[string]any)
}

// LookupStage returns the stage registered under name for element type T.
// The error wraps [ErrStageNotFound] when the name is unknown and
// [ErrStageType] when it was registered for another element type.
func LookupStage[T any](name string) (Stage[T], error) {
	stages.RLock()
	entry, ok := stages.byName[name]
	stages.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStageNotFound, name)
	}
	st, ok := entry.(Stage[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %q does not accept %T", ErrStageType, name, zero)
	}
	return st, nil
}

// Apply appends the named stage to the pipeline. The stage is looked up
// and built each time the result is iterated, so Apply itself never fails;
// an unknown stage, a type mismatch or an error from the stage surfaces
// from the terminal like any other pipeline error.
func (s Sequence[T]) Apply(name string, args ...any) Sequence[T] {
	return newSequence(func(yield func(T) bool) error {
		st, err := LookupStage[T](name)
		if err != nil {
			return err
		}
		out, err := st(s, args...)
		if err != nil {
			return err
		}
		return out.iterate(yield)
	})
}
