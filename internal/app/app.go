//go:build ebiten

package app

import (
	"log"

	"github.com/mkj/centres/internal/core"
	"github.com/mkj/centres/internal/render"
	"github.com/mkj/centres/internal/ui"
	"github.com/mkj/centres/pkg/sims/centres"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var modeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Game adapts a centres simulation to the ebiten.Game interface. The
// simulation only advances from Update; the pacing lives here.
type Game struct {
	sim     *centres.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep
	frame   []byte

	scale    int
	jump     uint64
	fit      bool
	running  bool
	tickOnce bool

	lastWinW, lastWinH int
}

// New constructs a Game for the provided simulation.
func New(sim *centres.Simulation, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(),
		pacer:   core.NewFixedStep(cfg.Interval, cfg.MaxPerTick),
		scale:   cfg.Scale,
		jump:    cfg.Jump,
		fit:     cfg.Fit,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart(g.sim.RestartCurrent())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.restart(g.sim.Reseed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.sim.SetInvert(!g.sim.Inverted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.overlay.Toggle()
	}
	for i, key := range modeKeys {
		if inpututil.IsKeyJustPressed(key) && g.sim.SetMode(centres.Modes[i]) {
			g.restart(g.sim.RestartCurrent())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		n := g.sim.Skip(g.jump)
		log.Printf("jumped %d steps to iteration %d", n, g.sim.Iteration())
	}
	if g.fit {
		g.followWindow()
	}

	g.hud.Update(g.gridWidth())

	if g.shouldRun() {
		for n := g.pacer.Due(); n > 0; n-- {
			g.sim.Step()
		}
	} else {
		g.pacer.Pause()
	}
	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	g.overlay.Update(ui.Status{
		Iteration: g.sim.Iteration(),
		Elapsed:   g.sim.Elapsed(),
		Running:   g.shouldRun(),
		Jump:      g.jump,
	})
	return nil
}

// shouldRun combines the toggle with holding the mouse over the grid.
func (g *Game) shouldRun() bool {
	if g.running {
		return true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return x >= 0 && y >= 0 && x < g.gridWidth() && y < g.sim.Size().H*g.scale
}

func (g *Game) restart(err error) {
	if err != nil {
		log.Printf("restart: %v", err)
		return
	}
	size := g.sim.Size()
	g.painter.Resize(size.W, size.H)
}

// followWindow resizes the grid when the window area changes.
func (g *Game) followWindow() {
	ww, wh := ebiten.WindowSize()
	if ww == g.lastWinW && wh == g.lastWinH {
		return
	}
	g.lastWinW, g.lastWinH = ww, wh
	w := (ww - g.hud.Width()) / g.scale
	h := wh / g.scale
	if s := g.sim.Size(); s.W == w && s.H == h {
		return
	}
	g.restart(g.sim.Resize(w, h))
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame = g.sim.RenderInto(g.frame)
	g.painter.Blit(screen, g.frame, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.fit {
		return outsideWidth, outsideHeight
	}
	s := g.sim.Size()
	h := s.H * g.scale
	if m := g.hud.MinHeight(); m > h {
		h = m
	}
	return s.W*g.scale + g.hud.Width(), h
}

// WindowSize returns the initial window size for the game.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
