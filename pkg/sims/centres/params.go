package centres

import (
	"strconv"
	"time"

	"github.com/mkj/centres/pkg/core"
)

// Parameters reports the running state and the values stored for the next
// restart.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				textParam("running_mode", "Mode", s.rule.Mode.String()),
				intParam("running_w", "Width", size.W),
				intParam("running_h", "Height", size.H),
				uintParam("iteration", "Iteration", s.Iteration()),
				textParam("elapsed", "Compute", s.Elapsed().Round(time.Microsecond).String()),
				textParam("neighborhood", "Neighborhood", s.rule.Neighborhood.String()),
			},
		},
		{
			Name: "Next restart",
			Params: []core.Parameter{
				choiceParam("mode", "Mode", int(s.cfg.Mode)),
				floatParam("density", "Density", s.cfg.Density),
				uintParam("seed", "Seed", s.cfg.Seed),
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}
	return []core.ParameterControl{
		{Key: "mode", Label: "Mode", Type: core.ParamTypeChoice, Step: 1, Min: 0, Max: float64(len(Modes) - 1), HasMin: true, HasMax: true, Choices: names},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(core.SeedLimit - 1), HasMin: true, HasMax: true},
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 10, Min: MinSize, HasMin: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 10, Min: MinSize, HasMin: true},
	}
}

// SetIntParameter updates an integer or choice parameter for the next restart.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "mode":
		return s.SetMode(Mode(value))
	case "seed":
		if value < 0 {
			return false
		}
		return s.SetSeed(uint64(value))
	case "w", "h":
		w, h := s.cfg.Width, s.cfg.Height
		if key == "w" {
			w = value
		} else {
			h = value
		}
		if ValidateSize(w, h) != nil {
			return false
		}
		s.cfg.Width, s.cfg.Height = w, h
		return true
	}
	return false
}

// SetFloatParameter updates a floating point parameter for the next restart.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if key == "density" {
		return s.SetDensity(value)
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatUint(value, 10)}
}

func choiceParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeChoice, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: value}
}
