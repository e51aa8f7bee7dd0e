package demo

import (
	"fmt"

	"github.com/hasbyte1/go-linq-utils/query"
)

// StageUnder keeps the ints strictly below its single int argument.
const StageUnder = "under"

func init() {
	query.RegisterStage(StageUnder, under)
}

func under(s query.Sequence[int], args ...any) (query.Sequence[int], error) {
	if len(args) != 1 {
		return s, fmt.Errorf("demo: stage %s: want 1 argument, got %d", StageUnder, len(args))
	}
	limit, ok := args[0].(int)
	if !ok {
		return s, fmt.Errorf("demo: stage %s: want int limit, got %T", StageUnder, args[0])
	}
	return s.Filter(func(n int) bool { return n < limit }), nil
}
