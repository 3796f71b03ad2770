package core

import "math/rand/v2"

// SeedLimit is the exclusive upper bound for simulation seeds.
const SeedLimit uint64 = 1_000_000_000_000

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// FillDensity sets each cell to 1 with probability density, drawing exactly
// one value per cell in slice order.
func (r *RNG) FillDensity(buf []int8, density float64) {
	for i := range buf {
		if r.r.Float64() < density {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// RandomSeed draws a fresh, non-reproducible seed in [0, SeedLimit).
func RandomSeed() uint64 {
	return rand.Uint64N(SeedLimit)
}
