//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/mkj/centres/internal/app"
	"github.com/mkj/centres/pkg/sims/centres"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := centres.New(cfg.Sim)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}
	log.Printf("%s %dx%d seed=%d density=%.2f", sim.Name(), cfg.Sim.Width, cfg.Sim.Height, sim.Seed(), sim.Density())

	game := app.New(sim, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("centres: " + sim.Mode().String())
	ebiten.SetWindowSize(w, h)
	if cfg.Fit {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
