// Package sweep runs many short simulations in parallel and summarizes how
// each rule settles.
package sweep

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mkj/centres/pkg/sims/centres"
)

// Scenario is one simulation to run.
type Scenario struct {
	Mode    centres.Mode
	Density float64
	Seed    uint64
}

func (s Scenario) String() string {
	return fmt.Sprintf("mode=%s density=%.2f seed=%d", s.Mode, s.Density, s.Seed)
}

// Result summarizes one scenario.
type Result struct {
	Scenario Scenario
	Start    float64
	Final    float64
	// Settled is the first iteration after which the grid never changed, or
	// -1 if it was still changing at the end.
	Settled int
	Elapsed time.Duration
	Err     error
}

// Params holds the settings shared by every scenario.
type Params struct {
	Width, Height int
	Steps         int
	Neighborhood  centres.Neighborhood
}

// Grid builds the cartesian product of modes, densities and seeds.
func Grid(modes []centres.Mode, densities []float64, seeds []uint64) []Scenario {
	out := make([]Scenario, 0, len(modes)*len(densities)*len(seeds))
	for _, m := range modes {
		for _, d := range densities {
			for _, s := range seeds {
				out = append(out, Scenario{Mode: m, Density: d, Seed: s})
			}
		}
	}
	return out
}

// Run evaluates scenarios on workers goroutines and returns the results
// sorted by mode, density and seed. Each simulation steps single-threaded so
// the pool is the only source of parallelism.
func Run(p Params, scenarios []Scenario, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(p, sc)
			}
		}()
	}
	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, 0, len(scenarios))
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Scenario, out[j].Scenario
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		if a.Density != b.Density {
			return a.Density < b.Density
		}
		return a.Seed < b.Seed
	})
	return out
}

func runScenario(p Params, sc Scenario) Result {
	res := Result{Scenario: sc, Settled: -1}
	sim, err := centres.New(centres.Config{
		Width:        p.Width,
		Height:       p.Height,
		Mode:         sc.Mode,
		Seed:         sc.Seed,
		Density:      sc.Density,
		Neighborhood: p.Neighborhood,
		Workers:      1,
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Start = sim.Snapshot().AliveFraction()
	prev := sim.Snapshot()
	for i := 1; i <= p.Steps; i++ {
		sim.Step()
		cur := sim.Snapshot()
		if cur.Equal(prev) {
			if res.Settled < 0 {
				res.Settled = i - 1
			}
		} else {
			res.Settled = -1
		}
		prev = cur
	}
	res.Final = prev.AliveFraction()
	res.Elapsed = sim.Elapsed()
	return res
}
