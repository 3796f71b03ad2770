package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/mkj/centres/pkg/core"
	"github.com/mkj/centres/pkg/sims/centres"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim centres.Config

	Scale      int
	Interval   time.Duration
	MaxPerTick int
	HUDWidth   int
	Jump       uint64
	Fit        bool
	RandomSeed bool
	Centre     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        centres.DefaultConfig(),
		Scale:      1,
		Interval:   10 * time.Millisecond,
		MaxPerTick: 8,
		HUDWidth:   240,
		Jump:       1000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Width, "w", c.Sim.Width, "grid width in cells")
	fs.IntVar(&c.Sim.Height, "h", c.Sim.Height, "grid height in cells")
	fs.Func("mode", "transition rule: majority, annealing, star1, twobonus, experiment (default "+c.Sim.Mode.String()+")", func(s string) error {
		m, err := centres.ParseMode(s)
		if err != nil {
			return err
		}
		c.Sim.Mode = m
		return nil
	})
	fs.Uint64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for grid initialization")
	fs.Float64Var(&c.Sim.Density, "density", c.Sim.Density, "probability that a cell starts alive")
	fs.IntVar(&c.Sim.Workers, "workers", c.Sim.Workers, "goroutines per step (0 uses GOMAXPROCS)")
	fs.BoolVar(&c.Sim.Invert, "invert", c.Sim.Invert, "draw alive cells white on black")
	fs.BoolVar(&c.Centre, "centre", c.Centre, "include the cell itself in its neighborhood total")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between steps while running")
	fs.IntVar(&c.MaxPerTick, "max-per-frame", c.MaxPerTick, "cap on steps run in one frame")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.Uint64Var(&c.Jump, "jump", c.Jump, "iteration reached by the jump key")
	fs.BoolVar(&c.Fit, "fit", c.Fit, "resize the grid to follow the window")
	fs.BoolVar(&c.RandomSeed, "random-seed", c.RandomSeed, "ignore -seed and draw a fresh one")
}

// Validate checks values the flag package cannot range-check and resolves
// the derived simulation settings.
func (c *Config) Validate() error {
	if c.Centre {
		c.Sim.Neighborhood = centres.MooreWithCentre
	}
	if c.RandomSeed {
		c.Sim.Seed = core.RandomSeed()
	}
	if c.Sim.Seed >= core.SeedLimit {
		return fmt.Errorf("seed %d must be below %d", c.Sim.Seed, core.SeedLimit)
	}
	if c.Sim.Density < 0 || c.Sim.Density > 1 {
		return fmt.Errorf("density %v must be within [0, 1]", c.Sim.Density)
	}
	if err := centres.ValidateSize(c.Sim.Width, c.Sim.Height); err != nil {
		return err
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	return nil
}
