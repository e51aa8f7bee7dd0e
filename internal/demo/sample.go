package demo

import (
	"math/rand/v2"
	"time"

	"github.com/hasbyte1/go-linq-utils/internal/config"
	"github.com/hasbyte1/go-linq-utils/query"
)

// newRand returns a PCG source for seed; zero means time based.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInts draws a length from [r.MinCount, r.MaxCount) and returns that
// many values from [0, r.MaxValue).
func RandomInts(rng *rand.Rand, r config.RangeConfig) []int {
	n := r.MinCount + rng.IntN(r.MaxCount-r.MinCount)
	// Generate and Take have no failing stages.
	values, _ := query.Generate(func(int) int { return rng.IntN(r.MaxValue) }).Take(n).ToSlice()
	return values
}
