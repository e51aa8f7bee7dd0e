package query_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-linq-utils/query"
)

func ExampleSequence_Filter() {
	result, _ := query.Of(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleSelect() {
	result, _ := query.Select(
		query.Of("Tuna", "Chicken", "Beef"),
		func(s string) string { return s + " with extra cheese!" },
	).ToSlice()
	fmt.Println(strings.Join(result, "\n"))
	// Output:
	// Tuna with extra cheese!
	// Chicken with extra cheese!
	// Beef with extra cheese!
}

func ExampleSequence_OrderBy() {
	route := query.Select(
		query.Of(36, 5, 91, 3, 41, 69, 8).
			Filter(func(n int) bool { return n != 36 && n < 50 }).
			OrderBy(query.Desc(func(n int) int { return n })).
			Take(3),
		func(n int) int { return n + 5 },
	)
	bears, _ := route.ToSlice()
	sum, _ := query.Sum(query.Select(route, func(n int) int { return n - 1 }))
	fmt.Println(bears, sum)
	// Output: [46 13 10] 66
}

func ExampleGroupBy() {
	words := query.Of("apple", "avocado", "banana", "blueberry", "cherry")
	for g, err := range query.GroupBy(words, func(w string) byte { return w[0] }).Iter() {
		if err != nil {
			return
		}
		fmt.Printf("%c %v\n", g.Key, g.All())
	}
	// Output:
	// a [apple avocado]
	// b [banana blueberry]
	// c [cherry]
}

func ExampleLet() {
	type order struct {
		qty   int
		price float64
	}
	orders := query.Of(order{2, 3.5}, order{1, 20}, order{4, 1.25})
	big, _ := query.Select(
		query.Let(orders, "total", func(o order) float64 { return float64(o.qty) * o.price }).
			Filter(func(b query.Binding[order, float64]) bool { return b.Value > 5 }),
		func(b query.Binding[order, float64]) float64 { return b.Value },
	).ToSlice()
	fmt.Println(big)
	// Output: [7 20]
}

func ExampleAverage() {
	avg, _ := query.Average(query.Of(1, 2, 3, 4))
	_, err := query.Average(query.Empty[int]())
	fmt.Println(avg, err)
	// Output: 2.5 query: sequence contains no elements
}

func ExamplePerGroup() {
	type sale struct {
		region string
		amount int
	}
	sales := query.Of(sale{"north", 10}, sale{"south", 5}, sale{"north", 7})
	totals, _ := query.PerGroup(
		query.GroupBy(sales, func(s sale) string { return s.region }),
		func(members query.Sequence[sale]) (int, error) {
			return query.SumBy(members, func(s sale) int { return s.amount })
		},
	).ToSlice()
	fmt.Println(totals)
	// Output: [(north, 17) (south, 5)]
}
