package centres

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/mkj/centres/pkg/core"
)

func TestInitializeDeterministic(t *testing.T) {
	a, err := Initialize(64, 48, 123456789, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Initialize(64, 48, 123456789, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical arguments produced different grids")
	}

	c, err := Initialize(64, 48, 123456790, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestInitializeDensityCalibration(t *testing.T) {
	g, err := Initialize(500, 500, 42, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Cells()) != 500*500 {
		t.Fatalf("grid has %d cells, want %d", len(g.Cells()), 500*500)
	}
	if f := g.AliveFraction(); math.Abs(f-0.5) > 0.01 {
		t.Fatalf("alive fraction %.4f not within 0.01 of 0.5", f)
	}
}

func TestInitializeDensityExtremes(t *testing.T) {
	empty, err := Initialize(10, 10, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Alive() != 0 {
		t.Fatalf("density 0 produced %d alive cells", empty.Alive())
	}
	full, err := Initialize(10, 10, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if full.Alive() != 100 {
		t.Fatalf("density 1 produced %d alive cells", full.Alive())
	}
}

func TestInitializeRejectsBadArguments(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		seed    uint64
		density float64
		want    error
	}{
		{"narrow", 2, 10, 1, 0.5, ErrInvalidDimensions},
		{"short", 10, 2, 1, 0.5, ErrInvalidDimensions},
		{"negative", -5, 10, 1, 0.5, ErrInvalidDimensions},
		{"overflow", math.MaxInt / 2, 8, 1, 0.5, ErrGridTooLarge},
		{"seed", 10, 10, core.SeedLimit, 0.5, ErrInvalidSeed},
		{"density high", 10, 10, 1, 1.5, ErrInvalidDensity},
		{"density low", 10, 10, 1, -0.1, ErrInvalidDensity},
		{"density nan", 10, 10, 1, math.NaN(), ErrInvalidDensity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Initialize(tc.w, tc.h, tc.seed, tc.density)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if g != nil {
				t.Fatal("grid returned alongside error")
			}
		})
	}
}

func TestNewGridCopiesCells(t *testing.T) {
	cells := make([]int8, 9)
	cells[4] = 1
	g, err := NewGrid(3, 3, cells)
	if err != nil {
		t.Fatal(err)
	}
	cells[4] = 0
	if g.At(1, 1) != 1 {
		t.Fatal("grid shares the caller's slice")
	}
	if _, err := NewGrid(3, 3, cells[:8]); !errors.Is(err, ErrCellCount) {
		t.Fatalf("err = %v, want ErrCellCount", err)
	}
}
