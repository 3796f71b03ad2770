package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/mkj/centres/pkg/sims/centres"
)

// Sample is the population of one captured generation.
type Sample struct {
	Iteration uint64
	Alive     float64
}

// History accumulates samples in capture order.
type History struct {
	Samples []Sample
}

// Capture records the alive fraction of the current generation.
func (h *History) Capture(sim *centres.Simulation) error {
	h.Samples = append(h.Samples, Sample{
		Iteration: sim.Iteration(),
		Alive:     sim.Snapshot().AliveFraction(),
	})
	return nil
}

// Last returns the most recent sample.
func (h *History) Last() (Sample, bool) {
	if len(h.Samples) == 0 {
		return Sample{}, false
	}
	return h.Samples[len(h.Samples)-1], true
}

// ErrTooFewSamples is returned when a chart would have no x range.
var ErrTooFewSamples = errors.New("record: need at least two samples to chart")

// WriteChart plots alive fraction against iteration as PNG.
func (h *History) WriteChart(w io.Writer, title string) error {
	if len(h.Samples) < 2 {
		return ErrTooFewSamples
	}
	xs := make([]float64, len(h.Samples))
	ys := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		xs[i] = float64(s.Iteration)
		ys[i] = s.Alive
	}
	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "iteration"},
		YAxis: chart.YAxis{
			Name:  "alive fraction",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "alive",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render chart: %w", err)
	}
	return nil
}
