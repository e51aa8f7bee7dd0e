package query_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hasbyte1/go-linq-utils/query"
)

// ─────────────────────────────────────────────────────────────────────────────
// Empty-sequence behaviour
// ─────────────────────────────────────────────────────────────────────────────

func TestAggregatesOnEmpty(t *testing.T) {
	empty := query.Empty[int]()

	if sum, err := query.Sum(empty); err != nil || sum != 0 {
		t.Fatalf("Sum([]) = %v, %v; want 0, nil", sum, err)
	}
	if n, err := empty.Count(); err != nil || n != 0 {
		t.Fatalf("Count([]) = %v, %v; want 0, nil", n, err)
	}
	if _, err := query.Min(empty); !errors.Is(err, query.ErrEmptySequence) {
		t.Fatalf("Min([]): got %v, want ErrEmptySequence", err)
	}
	if _, err := query.Max(empty); !errors.Is(err, query.ErrEmptySequence) {
		t.Fatalf("Max([]): got %v, want ErrEmptySequence", err)
	}
	if _, err := query.Average(empty); !errors.Is(err, query.ErrEmptySequence) {
		t.Fatalf("Average([]): got %v, want ErrEmptySequence", err)
	}
	if _, err := query.MinBy(query.Empty[student](), totalScore); !errors.Is(err, query.ErrEmptySequence) {
		t.Fatalf("MinBy([]): got %v, want ErrEmptySequence", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric semantics
// ─────────────────────────────────────────────────────────────────────────────

func TestSumMinMax(t *testing.T) {
	s := ints(36, 5, 91, 3, 41, 69, 8)
	sum, _ := query.Sum(s)
	lo, _ := query.Min(s)
	hi, _ := query.Max(s)
	if sum != 253 || lo != 3 || hi != 91 {
		t.Fatalf("Sum/Min/Max = %d/%d/%d; want 253/3/91", sum, lo, hi)
	}
}

func TestMinMaxStrings(t *testing.T) {
	words := query.Of("pear", "apple", "zucchini")
	lo, _ := query.Min(words)
	hi, _ := query.Max(words)
	if lo != "apple" || hi != "zucchini" {
		t.Fatalf("Min/Max = %q/%q", lo, hi)
	}
}

func TestAverageUsesFloatDivision(t *testing.T) {
	avg, err := query.Average(ints(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if avg != 1.5 {
		t.Fatalf("Average(1, 2) = %v; want 1.5", avg)
	}
}

func TestSumNativeOverflow(t *testing.T) {
	sum, err := query.Sum(query.Of[int8](100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if sum != -56 {
		t.Fatalf("Sum(int8 100, 100) = %d; want -56 (wrapped)", sum)
	}
}

func TestSumFloat(t *testing.T) {
	sum, _ := query.Sum(query.Of(0.1, 0.2))
	if math.Abs(sum-0.3) > 1e-9 {
		t.Fatalf("Sum = %v; want ≈0.3", sum)
	}
}

func TestMinByMaxByFirstTieWins(t *testing.T) {
	people := query.From(students())
	top, err := query.MaxBy(people, func(s student) int { return s.Scores[0] })
	if err != nil {
		t.Fatal(err)
	}
	// Fakhouri and Adams both open with 99; Fakhouri comes first.
	if top.Last != "Fakhouri" {
		t.Fatalf("MaxBy = %s; want Fakhouri", top.Last)
	}
	low, _ := query.MinBy(people, totalScore)
	if low.Last != "Keller" {
		t.Fatalf("MinBy = %s; want Keller", low.Last)
	}
}

func TestSumByAverageBy(t *testing.T) {
	people := query.From(students())
	sum, _ := query.SumBy(people, totalScore)
	if sum != 4186 {
		t.Fatalf("SumBy = %d; want 4186", sum)
	}
	avg, _ := query.AverageBy(people, totalScore)
	if avg != 322 {
		t.Fatalf("AverageBy = %v; want 322", avg)
	}
}

func TestReduce(t *testing.T) {
	product, err := query.Reduce(ints(1, 2, 3, 4), 1, func(acc, n int) int { return acc * n })
	if err != nil || product != 24 {
		t.Fatalf("Reduce = %d, %v; want 24, nil", product, err)
	}
}

func TestAggregatePropagatesUserError(t *testing.T) {
	s := query.TrySelect(ints(1, 2), func(n int) (int, error) {
		if n == 2 {
			return 0, errBoom
		}
		return n, nil
	})
	if _, err := query.Sum(s); !errors.Is(err, errBoom) {
		t.Fatalf("Sum: got %v, want errBoom", err)
	}
	if _, err := query.Average(s); !errors.Is(err, errBoom) {
		t.Fatalf("Average: got %v, want errBoom", err)
	}
	if _, err := s.Count(); !errors.Is(err, errBoom) {
		t.Fatalf("Count: got %v, want errBoom", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Per-group aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestPerGroup(t *testing.T) {
	groups := query.GroupBy(query.From(students()), func(s student) byte { return s.Last[0] })
	best := collect(t, query.PerGroup(groups, func(members query.Sequence[student]) (int, error) {
		return query.Max(query.Select(members, totalScore))
	}))
	if len(best) != 8 {
		t.Fatalf("groups = %d; want 8", len(best))
	}
	want := map[byte]int{'O': 330, 'M': 338, 'G': 353, 'F': 369, 'T': 368, 'A': 341, 'Z': 332, 'K': 176}
	for _, p := range best {
		if want[p.First] != p.Second {
			t.Fatalf("group %c: got %d want %d", p.First, p.Second, want[p.First])
		}
	}
}

func TestPerGroupErrorStopsPipeline(t *testing.T) {
	groups := query.GroupBy(ints(1, 2, 3), func(n int) int { return n })
	_, err := query.PerGroup(groups, func(members query.Sequence[int]) (float64, error) {
		return query.Average(members.Filter(func(n int) bool { return n > 1 }))
	}).ToSlice()
	if !errors.Is(err, query.ErrEmptySequence) {
		t.Fatalf("got %v, want ErrEmptySequence from the first group", err)
	}
}
