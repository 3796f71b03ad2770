package centres

import (
	"slices"
	"testing"
)

func TestParallelMatchesSequential(t *testing.T) {
	start, err := Initialize(97, 131, 2024, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	for _, nb := range []Neighborhood{Moore, MooreWithCentre} {
		for _, m := range Modes {
			rule := Rule{Mode: m, Neighborhood: nb}
			for _, workers := range []int{0, 1, 2, 3, 8, 64} {
				seq, par := start, start
				for i := 0; i < 6; i++ {
					seq = StepSequential(seq, rule)
					par = Step(par, rule, workers)
					if !slices.Equal(seq.Cells(), par.Cells()) {
						t.Fatalf("%s/%s workers=%d: step %d differs", m, nb, workers, i+1)
					}
				}
			}
		}
	}
}

func TestBordersStayZero(t *testing.T) {
	g, err := Initialize(40, 37, 5, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range Modes {
		cur := g
		for i := 0; i < 10; i++ {
			cur = Step(cur, Rule{Mode: m}, 4)
			w, h := cur.Width(), cur.Height()
			for x := 0; x < w; x++ {
				if cur.At(x, 0) != 0 || cur.At(x, h-1) != 0 {
					t.Fatalf("%s step %d: border row at x=%d is set", m, i+1, x)
				}
			}
			for y := 0; y < h; y++ {
				if cur.At(0, y) != 0 || cur.At(w-1, y) != 0 {
					t.Fatalf("%s step %d: border column at y=%d is set", m, i+1, y)
				}
			}
		}
	}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	g, err := Initialize(50, 50, 77, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	before := slices.Clone(g.Cells())
	next := Step(g, Rule{Mode: Experiment}, 3)
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("step modified its input grid")
	}
	if next.Width() != g.Width() || next.Height() != g.Height() {
		t.Fatalf("step changed size to %dx%d", next.Width(), next.Height())
	}
}

func BenchmarkStep(b *testing.B) {
	g, err := Initialize(500, 500, 42, 0.5)
	if err != nil {
		b.Fatal(err)
	}
	rule := Rule{Mode: Annealing}
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			StepSequential(g, rule)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Step(g, rule, 0)
		}
	})
}

func TestBandCountNeverExceedsWorkers(t *testing.T) {
	for _, rows := range []int{1, 15, 16, 17, 129, 998} {
		for _, workers := range []int{1, 2, 3, 8, 64} {
			n := bandCount(rows, workers)
			if n > workers {
				t.Fatalf("rows=%d workers=%d: %d bands", rows, workers, n)
			}
			if n < 1 {
				t.Fatalf("rows=%d workers=%d: no bands", rows, workers)
			}
		}
	}
}
