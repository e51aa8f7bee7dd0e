package query_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-linq-utils/query"
)

func TestLetFilterTruncatesIntegerAverage(t *testing.T) {
	passed := query.Select(
		query.Let(query.From(students()), "totalScore", totalScore).
			Filter(func(b query.Binding[student, int]) bool {
				return b.Value/4 < b.Item.Scores[0]
			}),
		func(b query.Binding[student, int]) string { return b.Item.Last + " " + b.Item.First },
	)
	assertSlice(t, collect(t, passed), []string{
		"Omelchenko Svetlana",
		"O'Donnell Claire",
		"Mortensen Sven",
		"Garcia Cesar",
		"Fakhouri Fadi",
		"Feng Hanying",
		"Garcia Hugo",
		"Adams Terry",
		"Zabokritski Eugene",
		"Tucker Michael",
	})
}

func TestLetTruncationDecidesBorderline(t *testing.T) {
	// 330/4 is 82.5: truncated to 82 it passes "< 83", rounded to 83 it would not.
	s := student{First: "Edge", Last: "Case", Scores: []int{83, 82, 82, 83}}
	got := collect(t, query.Let(query.Of(s), "totalScore", totalScore).
		Filter(func(b query.Binding[student, int]) bool { return b.Value/4 < b.Item.Scores[0] }))
	if len(got) != 1 {
		t.Fatal("expected the truncated average to pass the filter")
	}
}

func TestLetEvaluatesOncePerElement(t *testing.T) {
	calls := 0
	bound := query.Let(ints(1, 2, 3), "sq", func(n int) int {
		calls++
		return n * n
	})
	got := collect(t, query.Select(
		bound.Filter(func(b query.Binding[int, int]) bool { return b.Value > 1 }),
		func(b query.Binding[int, int]) int { return b.Value + b.Value },
	))
	assertSlice(t, got, []int{8, 18})
	if calls != 3 {
		t.Fatalf("valueFn calls = %d; want 3", calls)
	}
}

func TestLetName(t *testing.T) {
	b, err := query.Let(ints(4), "double", func(n int) int { return n * 2 }).First()
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "double" || b.Value != 8 || b.Item != 4 {
		t.Fatalf("unexpected binding %+v", b)
	}
}

func TestTryLet(t *testing.T) {
	_, err := query.TryLet(ints(1, 0), "inv", func(n int) (float64, error) {
		if n == 0 {
			return 0, errBoom
		}
		return 1 / float64(n), nil
	}).ToSlice()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
}

func TestUnbind(t *testing.T) {
	bound := query.Let(ints(1, 2, 3), "odd", func(n int) bool { return n%2 == 1 })
	got := collect(t, query.Unbind(bound.Filter(func(b query.Binding[int, bool]) bool { return b.Value })))
	assertSlice(t, got, []int{1, 3})
}

func TestClassAverage(t *testing.T) {
	totals := query.Select(
		query.Let(query.From(students()), "totalScore", totalScore),
		func(b query.Binding[student, int]) int { return b.Value },
	)
	avg, err := query.Average(totals)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 322 {
		t.Fatalf("class average = %v; want 322", avg)
	}
}
