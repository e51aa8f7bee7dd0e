package query_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-linq-utils/query"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

func ints(ns ...int) query.Sequence[int] { return query.Of(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// collect materializes s and fails the test on a pipeline error.
func collect[T any](t *testing.T, s query.Sequence[T]) []T {
	t.Helper()
	got, err := s.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice: unexpected error: %v", err)
	}
	return got
}

// counted returns a sequence over items that counts how many elements have
// been pulled from it across all iterations.
func counted(items ...int) (query.Sequence[int], *int) {
	pulls := new(int)
	return query.Select(query.From(items), func(n int) int {
		*pulls++
		return n
	}), pulls
}

type student struct {
	First  string
	Last   string
	ID     int
	Scores []int
}

func students() []student {
	return []student{
		{First: "Svetlana", Last: "Omelchenko", ID: 111, Scores: []int{97, 92, 81, 60}},
		{First: "Claire", Last: "O'Donnell", ID: 112, Scores: []int{75, 84, 91, 39}},
		{First: "Sven", Last: "Mortensen", ID: 113, Scores: []int{88, 94, 65, 91}},
		{First: "Cesar", Last: "Garcia", ID: 114, Scores: []int{97, 89, 85, 82}},
		{First: "Debra", Last: "Garcia", ID: 115, Scores: []int{35, 72, 91, 70}},
		{First: "Fadi", Last: "Fakhouri", ID: 116, Scores: []int{99, 86, 90, 94}},
		{First: "Hanying", Last: "Feng", ID: 117, Scores: []int{93, 92, 80, 87}},
		{First: "Hugo", Last: "Garcia", ID: 118, Scores: []int{92, 90, 83, 78}},
		{First: "Lance", Last: "Tucker", ID: 119, Scores: []int{68, 79, 88, 92}},
		{First: "Terry", Last: "Adams", ID: 120, Scores: []int{99, 82, 81, 79}},
		{First: "Eugene", Last: "Zabokritski", ID: 121, Scores: []int{96, 85, 91, 60}},
		{First: "Michael", Last: "Tucker", ID: 122, Scores: []int{94, 92, 91, 91}},
		{First: "Jake", Last: "Keller", ID: 123, Scores: []int{20, 80, 22, 54}},
	}
}

func totalScore(s student) int {
	return s.Scores[0] + s.Scores[1] + s.Scores[2] + s.Scores[3]
}
