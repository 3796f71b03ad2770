//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the run state shown by the overlay.
type Status struct {
	Iteration uint64
	Elapsed   time.Duration
	Running   bool
	Jump      uint64
}

// Overlay draws a status strip over the top-left corner of the grid.
type Overlay struct {
	visible bool
	status  Status
	pixel   *ebiten.Image
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update records the status to draw on the next frame.
func (o *Overlay) Update(s Status) { o.status = s }

// Draw paints the status strip.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	state := "paused"
	if o.status.Running {
		state = "running"
	}
	line := fmt.Sprintf("iter %d  %s  %s  jump %d", o.status.Iteration, o.status.Elapsed.Round(time.Millisecond), state, o.status.Jump)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*overlayPad), float64(bounds.Dy()+2*overlayPad))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 20, B: 24, A: 200})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, line, face, overlayPad, overlayPad-bounds.Min.Y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

const overlayPad = 4
