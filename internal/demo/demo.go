// Package demo walks through the query operators section by section,
// printing each result the way a console tutorial would.
package demo

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-linq-utils/internal/config"
	"github.com/hasbyte1/go-linq-utils/internal/logger"
	"github.com/hasbyte1/go-linq-utils/query"
)

// Badgers is the fixed input of the route section.
var Badgers = []int{36, 5, 91, 3, 41, 69, 8}

// Runner prints the demo sections to an output writer.
type Runner struct {
	cfg   config.Config
	out   io.Writer
	log   zerolog.Logger
	rng   *rand.Rand
	money *Money
}

// New creates a Runner. Random sections draw from cfg.Seed.
func New(cfg config.Config, out io.Writer, log zerolog.Logger) (*Runner, error) {
	money, err := NewMoney(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:   cfg,
		out:   out,
		log:   log,
		rng:   newRand(cfg.Seed),
		money: money,
	}, nil
}

type section struct {
	label string
	name  string
	run   func() error
}

func (r *Runner) sections() []section {
	return []section{
		{"1", "projection", r.printSandwiches},
		{"2", "aggregates", r.printNumberStats},
		{"3", "under-fifty", r.printUnderFifty},
		{"4", "prices", r.printPrices},
		{"5", "route", r.printRoute},
		{"5", "groups", r.printGroups},
		{"6", "let", r.printAboveAverage},
		{"7", "class-average", r.printClassAverage},
	}
}

// Run prints every section in order and stops at the first failure.
func (r *Runner) Run() error {
	for _, s := range r.sections() {
		r.log.Debug().Str(logger.FieldSection, s.name).Msg("running section")
		fmt.Fprintf(r.out, "\n----%s----\n\n", s.label)
		if err := s.run(); err != nil {
			return fmt.Errorf("demo: section %s: %w", s.name, err)
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// ExtraCheese appends the topping to every sandwich.
func ExtraCheese(sandwiches []string) query.Sequence[string] {
	return query.Select(query.From(sandwiches), func(s string) string {
		return s + " with extra cheese!"
	})
}

// UnderFifty keeps values below 50, largest first.
func UnderFifty(numbers []int) query.Sequence[int] {
	return query.From(numbers).
		Apply(StageUnder, 50).
		OrderBy(query.Desc(func(n int) int { return n }))
}

// Route is the badger puzzle: drop 36 and anything from 50 up, sort
// descending, add 5, keep three, subtract 1, and add them up.
func Route(badgers []int) (int, error) {
	mountainLion := query.Select(
		query.From(badgers).
			Filter(func(n int) bool { return n != 36 && n < 50 }).
			OrderBy(query.Desc(func(n int) int { return n })),
		func(n int) int { return n + 5 },
	)
	bears := mountainLion.Take(3)
	weasel := query.Select(bears, func(n int) int { return n - 1 })
	return query.Sum(weasel)
}

// GroupByInitial groups students by the first letter of their last name,
// in the order the letters first appear.
func GroupByInitial(students []Student) query.Sequence[query.Group[byte, Student]] {
	return query.GroupBy(query.From(students), func(s Student) byte { return s.Last[0] })
}

// AboveAverage returns "Last First" for students whose first score beats
// their average. The average uses integer division and truncates, so 82.5
// counts as 82.
func AboveAverage(students []Student) query.Sequence[string] {
	bound := query.Let(query.From(students), "totalScore", Student.TotalScore)
	return query.Select(
		bound.Filter(func(b query.Binding[Student, int]) bool {
			return b.Value/4 < b.Item.Scores[0]
		}),
		func(b query.Binding[Student, int]) string { return b.Item.Last + " " + b.Item.First },
	)
}

// ClassAverage is the mean total score across all students.
func ClassAverage(students []Student) (float64, error) {
	totals := query.Select(
		query.Let(query.From(students), "totalScore", Student.TotalScore),
		func(b query.Binding[Student, int]) int { return b.Value },
	)
	return query.Average(totals)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sections
// ─────────────────────────────────────────────────────────────────────────────

func (r *Runner) printSandwiches() error {
	return ExtraCheese([]string{"Tuna", "Chicken", "Beef"}).Each(func(s string) {
		fmt.Fprintln(r.out, s)
	})
}

func (r *Runner) printNumberStats() error {
	numbers := query.From(RandomInts(r.rng, r.cfg.Numbers))

	count, err := numbers.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "There are %d numbers\n", count)

	lo, err := query.Min(numbers)
	if errors.Is(err, query.ErrEmptySequence) {
		fmt.Fprintln(r.out, "Nothing to compare")
		return nil
	}
	if err != nil {
		return err
	}
	hi, err := query.Max(numbers)
	if err != nil {
		return err
	}
	sum, err := query.Sum(numbers)
	if err != nil {
		return err
	}
	avg, err := query.Average(numbers)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "The smallest is %d\n", lo)
	fmt.Fprintf(r.out, "The biggest is %d\n", hi)
	fmt.Fprintf(r.out, "Their sum is %d\n", sum)
	fmt.Fprintf(r.out, "Their average is %.2f\n", avg)
	return nil
}

func (r *Runner) printUnderFifty() error {
	numbers := RandomInts(r.rng, r.cfg.Numbers)
	sorted, err := UnderFifty(numbers).
		Tap(func(n int) { r.log.Trace().Int("value", n).Msg("under fifty") }).
		ToList()
	if err != nil {
		return err
	}
	r.log.Debug().Int("matched", sorted.Len()).Int("of", len(numbers)).Msg("filtered numbers")

	return sorted.Seq().Take(r.cfg.Take).Each(func(n int) {
		fmt.Fprintln(r.out, n)
	})
}

func (r *Runner) printPrices() error {
	values := RandomInts(r.rng, r.cfg.Prices)
	prices := query.Select(
		query.From(values).OrderBy(query.Asc(func(v int) int { return v })),
		r.money.Format,
	)
	return prices.Take(r.cfg.Take).Each(func(p string) {
		fmt.Fprintln(r.out, p)
	})
}

func (r *Runner) printRoute() error {
	route, err := Route(Badgers)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Have fun on route %d\n", route)
	return nil
}

func (r *Runner) printGroups() error {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Initial", "Last", "First"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)

	err := GroupByInitial(Students()).Each(func(g query.Group[byte, Student]) {
		for _, s := range g.All() {
			table.Append([]string{string(g.Key), s.Last, s.First})
		}
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func (r *Runner) printAboveAverage() error {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Student"})
	err := AboveAverage(Students()).Each(func(name string) {
		table.Append([]string{name})
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func (r *Runner) printClassAverage() error {
	avg, err := ClassAverage(Students())
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Class average score = %s\n", strconv.FormatFloat(avg, 'f', -1, 64))
	return nil
}
