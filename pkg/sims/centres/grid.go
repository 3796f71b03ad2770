package centres

import (
	"errors"
	"fmt"
	"math"

	"github.com/mkj/centres/pkg/core"
)

// MinSize is the smallest accepted width or height. Anything smaller leaves
// no interior for the rules to update.
const MinSize = 3

// MaxCells caps the number of cells in one grid. The RGBA frame is four bytes
// per cell, so the cap keeps that product addressable as well.
const MaxCells = math.MaxInt32 / 4

var (
	// ErrInvalidDimensions reports a width or height below MinSize.
	ErrInvalidDimensions = errors.New("centres: width and height must be at least 3")
	// ErrGridTooLarge reports a width*height that overflows the index range.
	ErrGridTooLarge = errors.New("centres: grid too large")
	// ErrInvalidSeed reports a seed outside [0, core.SeedLimit).
	ErrInvalidSeed = errors.New("centres: seed out of range")
	// ErrInvalidDensity reports a density outside [0, 1].
	ErrInvalidDensity = errors.New("centres: density must be within [0, 1]")
	// ErrInvalidMode reports a Mode outside the defined set.
	ErrInvalidMode = errors.New("centres: invalid mode")
	// ErrCellCount reports a cell slice whose length is not width*height.
	ErrCellCount = errors.New("centres: cell count does not match dimensions")
)

// Grid is one generation of the automaton. It is never modified after
// construction, so a superseded grid stays valid for any reader holding it.
type Grid struct {
	w, h  int
	cells []int8
}

// ValidateSize checks that a width/height pair can back a grid.
func ValidateSize(w, h int) error {
	if w < MinSize || h < MinSize {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	if w > MaxCells/h {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, w, h, MaxCells)
	}
	return nil
}

// Initialize builds a seeded random grid. Each cell, in row-major order,
// consumes one uniform draw and is alive iff the draw is below density.
// Identical arguments always yield identical grids.
func Initialize(w, h int, seed uint64, density float64) (*Grid, error) {
	if err := ValidateSize(w, h); err != nil {
		return nil, err
	}
	if seed >= core.SeedLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeed, seed)
	}
	if !validDensity(density) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	g := newBlank(w, h)
	core.NewRNG(seed).FillDensity(g.cells, density)
	return g, nil
}

// NewGrid builds a grid from explicit cell values. The slice is copied.
func NewGrid(w, h int, cells []int8) (*Grid, error) {
	if err := ValidateSize(w, h); err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrCellCount, len(cells), w*h)
	}
	g := newBlank(w, h)
	copy(g.cells, cells)
	return g, nil
}

func newBlank(w, h int) *Grid {
	return &Grid{w: w, h: h, cells: make([]int8, w*h)}
}

func validDensity(d float64) bool {
	return d >= 0 && d <= 1
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// At returns the value of cell (x, y).
func (g *Grid) At(x, y int) int8 { return g.cells[y*g.w+x] }

// Cells exposes the backing slice in row-major order. Callers must not
// modify it.
func (g *Grid) Cells() []int8 { return g.cells }

// Alive counts the nonzero cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// AliveFraction returns Alive divided by the number of cells.
func (g *Grid) AliveFraction() float64 {
	return float64(g.Alive()) / float64(len(g.cells))
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
