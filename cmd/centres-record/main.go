package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mkj/centres/internal/record"
	"github.com/mkj/centres/internal/render"
	"github.com/mkj/centres/pkg/core"
	"github.com/mkj/centres/pkg/sims/centres"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("centres-record: ")

	cfg := centres.DefaultConfig()
	steps := flag.Int("steps", 500, "generations to simulate")
	every := flag.Int("every", 5, "capture a frame every n generations")
	video := flag.String("video", "", "write an MJPEG AVI to this path")
	chartPath := flag.String("chart", "", "write the alive fraction chart (PNG) to this path")
	final := flag.String("png", "", "write the final generation (PNG) to this path")
	scale := flag.Int("scale", 1, "pixel scale for video and PNG output")
	fps := flag.Int("fps", 25, "video frame rate")
	randomSeed := flag.Bool("random-seed", false, "ignore -seed and draw a fresh one")
	centre := flag.Bool("centre", false, "include the cell itself in its neighborhood total")
	mode := cfg.Mode.String()
	flag.StringVar(&mode, "mode", mode, "transition rule")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for grid initialization")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "probability that a cell starts alive")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines per step (0 uses GOMAXPROCS)")
	flag.BoolVar(&cfg.Invert, "invert", cfg.Invert, "draw alive cells white on black")
	overrides := map[string]string{}
	flag.Func("set", "override a config key (k=v, repeatable; keys w, h, mode, seed, density, centre, workers, invert)", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("want key=value, got %q", s)
		}
		overrides[strings.TrimSpace(k)] = strings.TrimSpace(v)
		return nil
	})
	flag.Parse()

	m, err := centres.ParseMode(mode)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Mode = m
	if *randomSeed {
		cfg.Seed = core.RandomSeed()
	}
	if *centre {
		cfg.Neighborhood = centres.MooreWithCentre
	}
	cfg = cfg.Apply(overrides)

	sim, err := centres.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %dx%d seed=%d density=%.2f steps=%d\n", sim.Name(), cfg.Width, cfg.Height, sim.Seed(), sim.Density(), *steps)

	var hist record.History
	sinks := []record.Sink{&hist}
	var vid *record.Video
	if *video != "" {
		vid, err = record.NewVideo(*video, cfg.Width, cfg.Height, record.Options{Scale: *scale, FPS: *fps})
		if err != nil {
			log.Fatal(err)
		}
		sinks = append(sinks, vid)
	}

	runErr := record.Run(sim, *steps, *every, sinks...)
	if vid != nil {
		if err := vid.Close(); err != nil && runErr == nil {
			runErr = err
		}
		fmt.Printf("wrote %d frames to %s\n", vid.Frames(), *video)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}

	if last, ok := hist.Last(); ok {
		fmt.Printf("iteration %d alive %.4f compute %v\n", last.Iteration, last.Alive, sim.Elapsed())
	}
	if *chartPath != "" {
		if err := writeFile(*chartPath, func(f *os.File) error {
			return hist.WriteChart(f, sim.Name())
		}); err != nil {
			log.Fatal(err)
		}
	}
	if *final != "" {
		size := sim.Size()
		img, err := render.Image(sim.Render(), size.W, size.H)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeFile(*final, func(f *os.File) error {
			return render.EncodePNG(f, render.Upscale(img, *scale))
		}); err != nil {
			log.Fatal(err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
