//go:build !ebiten

package ui

import "github.com/mkj/centres/pkg/core"

// Sim is what the HUD needs from a simulation.
type Sim interface {
	Name() string
	Size() core.Size
	core.ParameterProvider
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Sim, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// MinHeight is zero in the headless build.
func (h *HUD) MinHeight() int { return 0 }

// Update never reports a change in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
