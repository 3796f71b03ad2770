package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/mkj/centres/pkg/core"
	"github.com/mkj/centres/pkg/sims/centres"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != centres.DefaultConfig() {
		t.Fatalf("sim config = %+v", cfg.Sim)
	}
	if cfg.Interval != 10*time.Millisecond || cfg.Scale != 1 {
		t.Fatalf("interval %v scale %d", cfg.Interval, cfg.Scale)
	}
}

func TestConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-w", "320", "-h", "200", "-mode", "star1", "-seed", "17",
		"-density", "0.25", "-centre", "-invert", "-interval", "5ms", "-jump", "250", "-scale", "0")
	if err != nil {
		t.Fatal(err)
	}
	want := centres.Config{
		Width: 320, Height: 200, Mode: centres.Star1, Seed: 17, Density: 0.25,
		Neighborhood: centres.MooreWithCentre, Invert: true,
	}
	if cfg.Sim != want {
		t.Fatalf("sim config = %+v, want %+v", cfg.Sim, want)
	}
	if cfg.Interval != 5*time.Millisecond || cfg.Jump != 250 || cfg.Scale != 1 {
		t.Fatalf("interval %v jump %d scale %d", cfg.Interval, cfg.Jump, cfg.Scale)
	}
}

func TestConfigRejectsInvalid(t *testing.T) {
	if _, err := parse(t, "-mode", "life"); err == nil {
		t.Fatal("unknown mode accepted")
	}
	if _, err := parse(t, "-density", "3"); err == nil {
		t.Fatal("density 3 accepted")
	}
	if _, err := parse(t, "-seed", "1000000000000"); err == nil {
		t.Fatal("seed at limit accepted")
	}
	if _, err := parse(t, "-w", "1"); !errors.Is(err, centres.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestConfigRandomSeed(t *testing.T) {
	cfg, err := parse(t, "-random-seed", "-seed", "5")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim.Seed >= core.SeedLimit {
		t.Fatalf("random seed %d out of range", cfg.Sim.Seed)
	}
}
