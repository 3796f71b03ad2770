package centres

import (
	"strconv"

	"github.com/mkj/centres/pkg/core"
)

// Config controls how a Simulation is built.
type Config struct {
	Width  int
	Height int

	Mode    Mode
	Seed    uint64
	Density float64

	Neighborhood Neighborhood
	// Workers bounds the goroutines used per step; <= 0 uses GOMAXPROCS.
	Workers int
	// Invert draws alive cells white on black.
	Invert bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   500,
		Height:  500,
		Mode:    Annealing,
		Seed:    42,
		Density: 0.5,
	}
}

// Apply returns c with the flag-style key/value pairs of cfg overriding its
// fields. Recognized keys
// are w, h, mode, seed, density, centre, workers and invert. Values that fail
// to parse or fall out of range are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinSize {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinSize {
			c.Height = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil && parsed < core.SeedLimit {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validDensity(parsed) {
			c.Density = parsed
		}
	}
	if v, ok := cfg["centre"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Neighborhood = Moore
			if parsed {
				c.Neighborhood = MooreWithCentre
			}
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["invert"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Invert = parsed
		}
	}
	return c
}

// Rule returns the transition rule selected by the config.
func (c Config) Rule() Rule {
	return Rule{Mode: c.Mode, Neighborhood: c.Neighborhood}
}
