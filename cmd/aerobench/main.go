// Command aerobench sweeps pkg/aerosort across a range of input sizes and
// distributions, reporting wall time and comparison count for each. The
// comparison count comes from internal/stats, wrapped around the same
// less predicate the sort itself uses; moves are not counted. Modeled on cmd/bulk-delete's
// iterate-and-log-each-step shape, swapped from channel deletion to sort
// sizes.
package main

import (
	"flag"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/edirooss/aerosort/internal/stats"
	"github.com/edirooss/aerosort/internal/telemetry"
	"github.com/edirooss/aerosort/pkg/aerosort"
)

type distribution struct {
	name string
	gen  func(n int, r *rand.Rand) []int64
}

var distributions = []distribution{
	{"random", func(n int, r *rand.Rand) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = r.Int63n(int64(n) + 1)
		}
		return v
	}},
	{"sorted", func(n int, r *rand.Rand) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(i)
		}
		return v
	}},
	{"reverse", func(n int, r *rand.Rand) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(n - i)
		}
		return v
	}},
	{"few-unique", func(n int, r *rand.Rand) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = r.Int63n(8)
		}
		return v
	}},
}

func main() {
	start := flag.Int("start", 1000, "smallest n to benchmark")
	end := flag.Int("end", 100000, "largest n to benchmark")
	steps := flag.Int("steps", 5, "number of sizes to sample between start and end")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	log := telemetry.New("aerobench")
	telemetry.SetLogger(log)

	if *start <= 0 || *end < *start || *steps <= 0 {
		log.Fatal("invalid range", zap.Int("start", *start), zap.Int("end", *end), zap.Int("steps", *steps))
	}

	r := rand.New(rand.NewSource(*seed))
	sizes := sweep(*start, *end, *steps)

	for _, n := range sizes {
		for _, dist := range distributions {
			v := dist.gen(n, r)

			var c stats.Counters
			less := stats.WrapLess(&c, func(a, b int64) bool { return a < b })

			iterStart := time.Now()
			aerosort.SortFunc(v, less)
			took := time.Since(iterStart)

			log.Info("benchmark",
				zap.Int("n", n),
				zap.String("distribution", dist.name),
				zap.Int64("comparisons", c.Comparisons),
				zap.Duration("took", took),
			)
		}
	}
}

func sweep(start, end, steps int) []int {
	if steps == 1 {
		return []int{start}
	}
	out := make([]int, steps)
	for i := 0; i < steps; i++ {
		out[i] = start + (end-start)*i/(steps-1)
	}
	return out
}
