package centres

import (
	"fmt"
	"strings"
)

// Mode selects the transition rule.
type Mode int

const (
	// Majority turns a cell on when more than four neighbors are on.
	Majority Mode = iota
	// Annealing is the twisted majority vote: on for exactly four or more than five.
	Annealing
	// Star1 adds a one point bonus to cells that change state.
	Star1
	// TwoBonus adds a two point bonus to cells that change state.
	TwoBonus
	// Experiment applies a three point bonus only to crowded neighborhoods.
	Experiment
)

// Modes lists every mode in declaration order.
var Modes = []Mode{Majority, Annealing, Star1, TwoBonus, Experiment}

var modeNames = [...]string{
	Majority:   "majority",
	Annealing:  "annealing",
	Star1:      "star1",
	TwoBonus:   "twobonus",
	Experiment: "experiment",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= Majority && m <= Experiment
}

// ParseMode maps a mode name (case-insensitive) back to its Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("centres: unknown mode %q", s)
}

// Neighborhood selects which cells contribute to a cell's total.
type Neighborhood int

const (
	// Moore sums the eight surrounding cells.
	Moore Neighborhood = iota
	// MooreWithCentre sums the full 3x3 block, the cell itself included.
	MooreWithCentre
)

// String returns the neighborhood name.
func (n Neighborhood) String() string {
	if n == MooreWithCentre {
		return "moore+centre"
	}
	return "moore"
}

// Rule bundles everything the transition needs besides the grid.
type Rule struct {
	Mode         Mode
	Neighborhood Neighborhood
}

// Next returns the new value of a cell given its neighborhood total and its
// previous value.
func (r Rule) Next(total int, prev int8) int8 {
	switch r.Mode {
	case Majority:
		return b2i(total > 4)
	case Annealing:
		return b2i(anneal(total))
	case Star1:
		return bonus(anneal(total), prev, 1)
	case TwoBonus:
		return bonus(anneal(total), prev, 2)
	case Experiment:
		on := anneal(total)
		v := b2i(on)
		if total > 5 {
			switch {
			case on && prev < 0:
				v += 3
			case !on && prev > 0:
				v -= 3
			}
		}
		return v
	}
	panic(fmt.Sprintf("centres: unhandled mode %d", int(r.Mode)))
}

func anneal(total int) bool {
	return total == 4 || total > 5
}

// bonus rewards a cell for flipping: a cell turning on from below one gains
// mag, a cell turning off from one or above loses mag.
func bonus(on bool, prev int8, mag int8) int8 {
	v := b2i(on)
	switch {
	case on && prev < 1:
		v += mag
	case !on && prev >= 1:
		v -= mag
	}
	return v
}

func b2i(b bool) int8 {
	if b {
		return 1
	}
	return 0
}
