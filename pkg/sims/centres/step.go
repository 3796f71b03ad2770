package centres

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minBandRows keeps bands large enough that scheduling does not dominate.
const minBandRows = 16

// StepSequential computes the next generation on the calling goroutine. It is
// the reference the parallel Step is checked against.
func StepSequential(g *Grid, rule Rule) *Grid {
	next := newBlank(g.w, g.h)
	stepRows(g, next.cells, rule, 1, g.h-1)
	return next
}

// Step computes the next generation, splitting the interior rows into
// contiguous bands evaluated by up to workers goroutines. Each band writes
// only its own rows of the new buffer and reads only g, so the result is
// identical to StepSequential. workers <= 0 uses GOMAXPROCS.
func Step(g *Grid, rule Rule, workers int) *Grid {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows := g.h - 2
	bands := bandCount(rows, workers)
	if bands <= 1 {
		return StepSequential(g, rule)
	}

	next := newBlank(g.w, g.h)
	// bands <= workers, so every band gets its own goroutine.
	var eg errgroup.Group
	per := rows / bands
	extra := rows % bands
	y0 := 1
	for b := 0; b < bands; b++ {
		n := per
		if b < extra {
			n++
		}
		start, end := y0, y0+n
		eg.Go(func() error {
			stepRows(g, next.cells, rule, start, end)
			return nil
		})
		y0 = end
	}
	// Bands never fail; Wait is only the join point.
	_ = eg.Wait()
	return next
}

// bandCount splits rows into at most workers bands of at least minBandRows
// rows each, except when there are fewer rows than that in total.
func bandCount(rows, workers int) int {
	bands := workers
	if limit := (rows + minBandRows - 1) / minBandRows; bands > limit {
		bands = limit
	}
	return bands
}

// stepRows writes rows [y0, y1) of dst from src. Border columns are left at
// zero, as are rows outside the range.
func stepRows(src *Grid, dst []int8, rule Rule, y0, y1 int) {
	w := src.w
	c := src.cells
	centre := rule.Neighborhood == MooreWithCentre
	for y := y0; y < y1; y++ {
		row := y * w
		up := row - w
		down := row + w
		for x := 1; x < w-1; x++ {
			total := int(c[up+x-1]) + int(c[up+x]) + int(c[up+x+1]) +
				int(c[row+x-1]) + int(c[row+x+1]) +
				int(c[down+x-1]) + int(c[down+x]) + int(c[down+x+1])
			prev := c[row+x]
			if centre {
				total += int(prev)
			}
			dst[row+x] = rule.Next(total, prev)
		}
	}
}
