package centres

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mkj/centres/pkg/core"
)

// Simulation drives one automaton run. It has a single owner: Restart, Step,
// Skip, Resize and the setters must not be called concurrently. Snapshot,
// Iteration and Elapsed may be read from any goroutine.
//
// Mode, seed and density are stored separately from the running grid, the
// way a control panel edits values that apply on the next restart.
type Simulation struct {
	cfg  Config // stored values for the next restart
	run  Config // values the current grid was built from
	rule Rule

	grid    atomic.Pointer[Grid]
	iter    atomic.Uint64
	elapsed atomic.Int64

	palette Palette
	now     func() time.Time
}

// New builds a simulation and its initial grid from cfg.
func New(cfg Config) (*Simulation, error) {
	s := &Simulation{cfg: cfg, now: time.Now}
	s.SetInvert(cfg.Invert)
	if err := s.Restart(cfg.Width, cfg.Height, cfg.Mode, cfg.Seed, cfg.Density); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current grid and builds a fresh one, resetting the
// iteration counter and elapsed time. The arguments also replace the stored
// values. On error nothing changes.
func (s *Simulation) Restart(w, h int, mode Mode, seed uint64, density float64) error {
	run := s.cfg
	run.Width, run.Height = w, h
	run.Mode = mode
	run.Seed = seed
	run.Density = density
	if err := s.start(run); err != nil {
		return err
	}
	s.cfg = run
	return nil
}

// RestartCurrent restarts with the stored dimensions, mode, seed and density.
func (s *Simulation) RestartCurrent() error {
	return s.Restart(s.cfg.Width, s.cfg.Height, s.cfg.Mode, s.cfg.Seed, s.cfg.Density)
}

func (s *Simulation) start(run Config) error {
	if !run.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(run.Mode))
	}
	g, err := Initialize(run.Width, run.Height, run.Seed, run.Density)
	if err != nil {
		return err
	}
	s.run = run
	s.rule = run.Rule()
	s.grid.Store(g)
	s.iter.Store(0)
	s.elapsed.Store(0)
	return nil
}

// Step advances one generation and publishes it.
func (s *Simulation) Step() {
	start := s.now()
	next := Step(s.grid.Load(), s.rule, s.run.Workers)
	s.grid.Store(next)
	s.iter.Add(1)
	s.elapsed.Add(int64(s.now().Sub(start)))
}

// Skip steps until the iteration counter reaches target and returns the number
// of steps taken. It never goes backwards.
func (s *Simulation) Skip(target uint64) int {
	n := 0
	for s.iter.Load() < target {
		s.Step()
		n++
	}
	return n
}

// Resize restarts at the new dimensions with the running mode, seed and
// density. Progress is discarded. Stored values not yet applied by a restart
// stay pending, apart from the dimensions, which become w and h.
func (s *Simulation) Resize(w, h int) error {
	run := s.run
	run.Width, run.Height = w, h
	if err := s.start(run); err != nil {
		return err
	}
	s.cfg.Width, s.cfg.Height = w, h
	return nil
}

// RandomizeSeed stores a fresh seed for the next restart and returns it.
func (s *Simulation) RandomizeSeed() uint64 {
	s.cfg.Seed = core.RandomSeed()
	return s.cfg.Seed
}

// Reseed draws a new seed and restarts with it.
func (s *Simulation) Reseed() error {
	s.RandomizeSeed()
	return s.RestartCurrent()
}

// SetMode stores the mode used by the next restart.
func (s *Simulation) SetMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	s.cfg.Mode = m
	return true
}

// SetSeed stores the seed used by the next restart. Out-of-range seeds are
// ignored and the previous seed kept.
func (s *Simulation) SetSeed(seed uint64) bool {
	if seed >= core.SeedLimit {
		return false
	}
	s.cfg.Seed = seed
	return true
}

// SetDensity stores the density used by the next restart. Values outside
// [0, 1] are ignored.
func (s *Simulation) SetDensity(d float64) bool {
	if !validDensity(d) {
		return false
	}
	s.cfg.Density = d
	return true
}

// SetInvert selects the palette used by Render.
func (s *Simulation) SetInvert(invert bool) {
	s.cfg.Invert = invert
	s.palette = DefaultPalette(invert)
}

// Inverted reports whether alive cells are drawn white on black.
func (s *Simulation) Inverted() bool { return s.cfg.Invert }

// Name identifies the running rule.
func (s *Simulation) Name() string { return "centres " + s.rule.Mode.String() }

// Mode returns the mode of the running grid.
func (s *Simulation) Mode() Mode { return s.rule.Mode }

// Neighborhood returns the neighborhood used when summing totals.
func (s *Simulation) Neighborhood() Neighborhood { return s.rule.Neighborhood }

// Size returns the dimensions of the running grid.
func (s *Simulation) Size() core.Size { return s.grid.Load().Size() }

// Seed returns the stored seed.
func (s *Simulation) Seed() uint64 { return s.cfg.Seed }

// Density returns the stored start density.
func (s *Simulation) Density() float64 { return s.cfg.Density }

// Config returns the stored parameters, including any not yet applied by a
// restart.
func (s *Simulation) Config() Config { return s.cfg }

// Iteration returns the number of steps since the last restart.
func (s *Simulation) Iteration() uint64 { return s.iter.Load() }

// Elapsed returns the cumulative compute time spent in Step since the last
// restart.
func (s *Simulation) Elapsed() time.Duration { return time.Duration(s.elapsed.Load()) }

// Snapshot returns the current generation.
func (s *Simulation) Snapshot() *Grid { return s.grid.Load() }

// Render draws the current generation with the simulation palette.
func (s *Simulation) Render() []byte {
	return Render(s.grid.Load(), s.palette)
}

// RenderInto is Render reusing dst.
func (s *Simulation) RenderInto(dst []byte) []byte {
	return RenderInto(dst, s.grid.Load(), s.palette)
}
