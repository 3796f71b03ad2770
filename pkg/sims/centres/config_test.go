package centres

import (
	"testing"

	"github.com/mkj/centres/pkg/core"
)

func TestApplyParsesValues(t *testing.T) {
	c := DefaultConfig().Apply(map[string]string{
		"w":       "120",
		"h":       "80",
		"mode":    "Experiment",
		"seed":    "31337",
		"density": "0.3",
		"centre":  "true",
		"workers": "3",
		"invert":  "1",
	})
	want := Config{
		Width: 120, Height: 80, Mode: Experiment, Seed: 31337, Density: 0.3,
		Neighborhood: MooreWithCentre, Workers: 3, Invert: true,
	}
	if c != want {
		t.Fatalf("Apply = %+v, want %+v", c, want)
	}
}

func TestApplyIgnoresInvalidValues(t *testing.T) {
	c := DefaultConfig().Apply(map[string]string{
		"w":       "2",
		"h":       "tall",
		"mode":    "life",
		"seed":    "1000000000000",
		"density": "1.2",
		"workers": "-1",
		"invert":  "maybe",
	})
	if c != DefaultConfig() {
		t.Fatalf("Apply = %+v, want defaults", c)
	}
	if DefaultConfig().Apply(nil) != DefaultConfig() {
		t.Fatal("nil map did not yield defaults")
	}
}

func TestApplyOverridesBase(t *testing.T) {
	base := Config{
		Width: 64, Height: 48, Mode: Star1, Seed: 5, Density: 0.2,
		Neighborhood: MooreWithCentre, Workers: 2,
	}
	c := base.Apply(map[string]string{"density": "0.6", "centre": "false", "seed": "-3"})
	want := base
	want.Density = 0.6
	want.Neighborhood = Moore
	if c != want {
		t.Fatalf("Apply = %+v, want %+v", c, want)
	}
	if base.Apply(nil) != base {
		t.Fatal("nil map changed the base")
	}
}

func TestConfigRule(t *testing.T) {
	c := Config{Mode: TwoBonus, Neighborhood: MooreWithCentre}
	if r := c.Rule(); r != (Rule{Mode: TwoBonus, Neighborhood: MooreWithCentre}) {
		t.Fatalf("Rule = %+v", r)
	}
}

func TestParametersRoundTrip(t *testing.T) {
	sim := newTestSim(t, nil)
	if !sim.SetIntParameter("mode", int(Star1)) {
		t.Fatal("mode rejected")
	}
	if !sim.SetFloatParameter("density", 0.75) {
		t.Fatal("density rejected")
	}
	if !sim.SetIntParameter("w", 90) {
		t.Fatal("width rejected")
	}
	if sim.SetIntParameter("h", 1) || sim.SetIntParameter("seed", -4) || sim.SetIntParameter("bogus", 1) {
		t.Fatal("invalid parameter accepted")
	}
	if sim.SetFloatParameter("density", -0.5) {
		t.Fatal("negative density accepted")
	}

	snap := sim.Parameters()
	checks := map[string]string{
		"mode":      "2",
		"density":   "0.75",
		"w":         "90",
		"h":         "48",
		"seed":      "99",
		"running_w": "64",
		"iteration": "0",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}

	for _, ctrl := range sim.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no parameter", ctrl.Key)
		}
		if ctrl.Type == core.ParamTypeChoice && len(ctrl.Choices) != len(Modes) {
			t.Fatalf("mode control lists %d choices", len(ctrl.Choices))
		}
	}
}
