package centres

import "image/color"

// Palette maps alive and dead cells to colors. Alpha is always forced opaque.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DefaultPalette draws alive cells black on white, or white on black when
// invert is set.
func DefaultPalette(invert bool) Palette {
	if invert {
		return Palette{Alive: white, Dead: black}
	}
	return Palette{Alive: black, Dead: white}
}

// Render converts g into a row-major RGBA buffer of len w*h*4.
func Render(g *Grid, p Palette) []byte {
	return RenderInto(nil, g, p)
}

// RenderInto is Render reusing dst when it has enough capacity. The returned
// slice has length w*h*4.
func RenderInto(dst []byte, g *Grid, p Palette) []byte {
	n := len(g.cells) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range g.cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		base := i * 4
		dst[base+0] = col.R
		dst[base+1] = col.G
		dst[base+2] = col.B
		dst[base+3] = 0xff
	}
	return dst
}
