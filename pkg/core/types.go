package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }
