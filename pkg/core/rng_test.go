package core

import (
	"slices"
	"testing"
)

func TestFillDensityDeterministic(t *testing.T) {
	a := make([]int8, 1024)
	b := make([]int8, 1024)
	NewRNG(7).FillDensity(a, 0.3)
	NewRNG(7).FillDensity(b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different cells")
	}

	NewRNG(8).FillDensity(b, 0.3)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical cells")
	}
}

func TestFillDensityExtremes(t *testing.T) {
	buf := make([]int8, 256)
	NewRNG(1).FillDensity(buf, 0)
	for i, c := range buf {
		if c != 0 {
			t.Fatalf("density 0 set cell %d", i)
		}
	}
	NewRNG(1).FillDensity(buf, 1)
	for i, c := range buf {
		if c != 1 {
			t.Fatalf("density 1 left cell %d dead", i)
		}
	}
}

func TestRandomSeedInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if s := RandomSeed(); s >= SeedLimit {
			t.Fatalf("seed %d outside [0, %d)", s, SeedLimit)
		}
	}
}
