//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/mkj/centres/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Sim is what the HUD needs from a simulation.
type Sim interface {
	Name() string
	Size() core.Size
	core.ParameterProvider
}

// HUD renders the parameter panel to the right of the simulation view. The
// first snapshot group is shown read-only; controls edit the rest.
type HUD struct {
	sim        Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// MinHeight is the smallest height that fits every control.
func (h *HUD) MinHeight() int {
	if h == nil || h.width <= 0 {
		return 0
	}
	return minPanelHeight
}

// Update refreshes the cached snapshot and handles clicks. It reports whether
// a parameter changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.sim.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height < minPanelHeight {
		height = minPanelHeight
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawInfo()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt, core.ParamTypeChoice:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = h.formatInt(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = h.formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	target, ok := h.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt, core.ParamTypeChoice:
		v := int(math.Round(target))
		if h.intSetter.SetIntParameter(state.control.Key, v) {
			state.intValue = v
			state.floatValue = target
			state.value = h.formatInt(state.control, v)
			return true
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = h.formatFloat(state.control, target)
			return true
		}
	}
	return false
}

// target computes the clamped value one step in direction, reporting false
// when no setter exists or the value would not change.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt, core.ParamTypeChoice:
		if h.intSetter == nil {
			return 0, false
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
	default:
		return 0, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	target := state.floatValue + float64(direction)*step
	if ctrl.Type == core.ParamTypeFloat {
		// Snap to the step grid so repeated clicks do not drift.
		target = math.Round(target/step) * step
	}
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.snapshot.Groups) == 0 {
		return
	}
	for _, p := range h.snapshot.Groups[0].Params {
		y += infoSpacing
		line := fmt.Sprintf("%-13s %s", p.Label, p.Value)
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		return
	}
	header := "Next restart"
	if len(h.snapshot.Groups) > 1 {
		header = h.snapshot.Groups[1].Name
	}
	text.Draw(h.panel, header, face, panelPadding, controlsTop-6, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := h.target(state, -1)
		_, plusEnabled := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}
	hintY := controlsTop + len(h.controls)*lineHeight + labelBaseline
	text.Draw(h.panel, "R applies, D rolls a seed", face, panelPadding, hintY, color.RGBA{R: 140, G: 140, B: 150, A: 255})
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) formatInt(ctrl core.ParameterControl, value int) string {
	if ctrl.Type == core.ParamTypeChoice && value >= 0 && value < len(ctrl.Choices) {
		return ctrl.Choices[value]
	}
	return strconv.Itoa(value)
}

func (h *HUD) formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 16
	infoLines      = 6
	controlsTop    = panelPadding + headerBaseline + (infoLines+2)*infoSpacing
	minPanelHeight = controlsTop + 6*lineHeight + 2*labelBaseline
)
