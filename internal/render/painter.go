//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads RGBA frames into a single image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Resize reallocates the backing image when the grid dimensions change.
func (gp *GridPainter) Resize(w, h int) {
	if w == gp.w && h == gp.h {
		return
	}
	gp.img.Dispose()
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads pix (len w*h*4) and draws it onto dst at the given scale.
// Frames of the wrong size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
