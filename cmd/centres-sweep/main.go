package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mkj/centres/internal/sweep"
	"github.com/mkj/centres/pkg/sims/centres"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("centres-sweep: ")

	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 160, "grid width for sweep runs")
	height := flag.Int("h", 160, "grid height for sweep runs")
	modes := flag.String("modes", "majority,annealing,star1,twobonus,experiment", "comma-separated modes")
	densities := flag.String("densities", "0.3,0.4,0.5,0.6,0.7", "comma-separated start densities")
	seeds := flag.String("seeds", "1,2,3", "comma-separated seeds")
	centre := flag.Bool("centre", false, "include the cell itself in its neighborhood total")
	flag.Parse()

	ms, err := parseModes(*modes)
	if err != nil {
		log.Fatal(err)
	}
	ds, err := parseFloats(*densities)
	if err != nil {
		log.Fatal(err)
	}
	ss, err := parseSeeds(*seeds)
	if err != nil {
		log.Fatal(err)
	}

	p := sweep.Params{Width: *width, Height: *height, Steps: *steps}
	if *centre {
		p.Neighborhood = centres.MooreWithCentre
	}
	scenarios := sweep.Grid(ms, ds, ss)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *width, *height)

	start := time.Now()
	results := sweep.Run(p, scenarios, *workers)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("%-44s error: %v\n", res.Scenario, res.Err)
			continue
		}
		settled := "-"
		if res.Settled >= 0 {
			settled = strconv.Itoa(res.Settled)
		}
		fmt.Printf("%-44s start=%.3f final=%.3f settled=%-5s compute=%v\n",
			res.Scenario, res.Start, res.Final, settled, res.Elapsed.Round(time.Millisecond))
	}
	fmt.Printf("done in %v\n", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		log.Fatalf("%d scenarios failed", failed)
	}
}

func parseModes(s string) ([]centres.Mode, error) {
	var out []centres.Mode
	for _, part := range strings.Split(s, ",") {
		m, err := centres.ParseMode(part)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseSeeds(s string) ([]uint64, error) {
	var out []uint64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
