//go:build !ebiten

package ui

import "time"

// Status is the run state shown by the overlay.
type Status struct {
	Iteration uint64
	Elapsed   time.Duration
	Running   bool
	Jump      uint64
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle is a no-op in headless builds.
func (o *Overlay) Toggle() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update(Status) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
