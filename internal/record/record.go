// Package record captures headless simulation runs as MJPEG video and
// population curves.
package record

import (
	"bytes"
	"fmt"

	"github.com/icza/mjpeg"

	"github.com/mkj/centres/internal/render"
	"github.com/mkj/centres/pkg/sims/centres"
)

// Sink consumes captured generations.
type Sink interface {
	Capture(sim *centres.Simulation) error
}

// Run advances sim by steps generations, handing the current generation to
// every sink before the first step, every every steps, and after the last.
func Run(sim *centres.Simulation, steps, every int, sinks ...Sink) error {
	if every <= 0 {
		every = 1
	}
	capture := func() error {
		for _, s := range sinks {
			if err := s.Capture(sim); err != nil {
				return fmt.Errorf("iteration %d: %w", sim.Iteration(), err)
			}
		}
		return nil
	}
	if err := capture(); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		sim.Step()
		if i%every == 0 || i == steps {
			if err := capture(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Options controls video output.
type Options struct {
	Scale   int
	FPS     int
	Quality int
}

// DefaultOptions returns the standard video options.
func DefaultOptions() Options {
	return Options{Scale: 1, FPS: 25, Quality: 85}
}

// Video writes each captured generation as one MJPEG frame of an AVI file.
type Video struct {
	aw     mjpeg.AviWriter
	opts   Options
	w, h   int
	frame  []byte
	jpeg   bytes.Buffer
	frames int
}

// NewVideo creates path for a w x h grid. The caller must Close it.
func NewVideo(path string, w, h int, opts Options) (*Video, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultOptions().Quality
	}
	aw, err := mjpeg.New(path, int32(w*opts.Scale), int32(h*opts.Scale), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &Video{aw: aw, opts: opts, w: w, h: h}, nil
}

// Capture encodes the current generation. Grids whose size differs from the
// video's are rejected.
func (v *Video) Capture(sim *centres.Simulation) error {
	if s := sim.Size(); s.W != v.w || s.H != v.h {
		return fmt.Errorf("record: grid is %dx%d, video is %dx%d", s.W, s.H, v.w, v.h)
	}
	v.frame = sim.RenderInto(v.frame)
	img, err := render.Image(v.frame, v.w, v.h)
	if err != nil {
		return err
	}
	v.jpeg.Reset()
	if err := render.EncodeJPEG(&v.jpeg, render.Upscale(img, v.opts.Scale), v.opts.Quality); err != nil {
		return fmt.Errorf("record: encode frame: %w", err)
	}
	if err := v.aw.AddFrame(v.jpeg.Bytes()); err != nil {
		return fmt.Errorf("record: add frame: %w", err)
	}
	v.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (v *Video) Frames() int { return v.frames }

// Close finalizes the AVI index.
func (v *Video) Close() error {
	return v.aw.Close()
}
