// Package search implements the exhaustive backtracking search for sorting
// networks of a given width and depth.
//
// # How the search is organized
//
// Every explored network is in first normal form (layer 0 is the pairing
// (0,1), (2,3), ...) and second normal form (layer 1 is one representative
// per equivalence class of matchings under permutations of the layer-0
// pairs). [Level2Candidates] produces those representatives; each one seeds
// an independent [Task], and a [Pool] runs the tasks across worker
// goroutines.
//
// Within a task, a [Searcher] walks every assignment of matchings to the
// remaining layers with a non-recursive backtracking loop and decides
// sortedness with a ternary-Gray-code flip-and-propagate test: each Gray
// step flips one input bit and traces the single changed value through the
// network, so a candidate is accepted or rejected in one pass over
// 3^⌊n/2⌋ inputs instead of 2^n full evaluations.
//
// The deepest layers need not be enumerated at all: [Autocomplete]
// synthesizes the last layer while the test runs, and [Nearsort] /
// [Nearsort2] prune the last one or two enumerated layers with a
// reachability bound before they are expanded.
package search

import (
	"errors"
	"fmt"
	"runtime"
)

// Heuristic selects how the deepest layers of the network are handled.
// The choice is made once per run; every inner loop then runs the code for
// that variant only.
type Heuristic int

const (
	// Plain enumerates every layer and runs the full sorting test.
	Plain Heuristic = iota

	// Autocomplete leaves the last layer unfilled and builds it
	// opportunistically while the sorting test runs. Requires depth >= 3.
	Autocomplete

	// Nearsort additionally prunes the second-last layer with a
	// reachability bound before enumerating it. Requires depth >= 4.
	Nearsort

	// Nearsort2 prunes the last two enumerated layers with a wider
	// reachability bound. Requires depth >= 5.
	Nearsort2
)

var heuristicNames = map[Heuristic]string{
	Plain:        "plain",
	Autocomplete: "autocomplete",
	Nearsort:     "nearsort",
	Nearsort2:    "nearsort2",
}

func (h Heuristic) String() string {
	if s, ok := heuristicNames[h]; ok {
		return s
	}
	return fmt.Sprintf("heuristic(%d)", int(h))
}

// ParseHeuristic converts a name accepted on the command line into a
// Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	for h, name := range heuristicNames {
		if name == s {
			return h, nil
		}
	}
	return Plain, fmt.Errorf("unknown heuristic %q", s)
}

// AutoHeuristic picks the heuristic used when none is requested explicitly:
// the deepest-pruning variant the depth supports, with nearsort2 only on
// request because its wider bounds prune less per candidate.
func AutoHeuristic(depth int, nearsort2 bool) Heuristic {
	switch {
	case depth >= 5 && nearsort2:
		return Nearsort2
	case depth >= 4:
		return Nearsort
	case depth >= 3:
		return Autocomplete
	default:
		return Plain
	}
}

// minDepth is the shallowest depth each heuristic supports: the layers it
// hides must leave at least the pinned first layer to propagate through.
var minDepth = map[Heuristic]int{
	Plain:        2,
	Autocomplete: 3,
	Nearsort:     4,
	Nearsort2:    5,
}

// Config carries the fixed parameters of one search run. It is immutable
// once the run starts; every task reads the same value.
type Config struct {
	// Width is the number of input channels, 3..12.
	Width int

	// Depth is the number of comparator layers, 2..8.
	Depth int

	// Heuristic selects the last-layer strategy. Must be compatible with
	// Depth; see AutoHeuristic.
	Heuristic Heuristic

	// OutDir receives one text file per sorting network found. Ignored
	// when CountOnly is set.
	OutDir string

	// CountOnly skips writing network files.
	CountOnly bool

	// Workers is the number of concurrent search goroutines. Zero means
	// one per CPU.
	Workers int

	// LogFile is the append-only run log. Empty disables logging to file.
	LogFile string
}

// Sentinel errors for configuration validation.
var (
	ErrWidthRange = errors.New("width out of range")
	ErrDepthRange = errors.New("depth out of range")
)

// DepthRange returns the depths worth searching for a width: from one less
// than the optimal depth (where exhaustion proves a lower bound) up to the
// optimal depth itself.
func DepthRange(width int) (lo, hi int) {
	switch {
	case width <= 4:
		return 2, 3
	case width <= 6:
		return 4, 5
	case width <= 8:
		return 5, 6
	case width <= 10:
		return 6, 7
	default:
		return 7, 8
	}
}

// Validate checks the configuration and fills defaults (Workers).
func (c *Config) Validate() error {
	if c.Width < 3 || c.Width > 12 {
		return fmt.Errorf("%w: %d (want 3..12)", ErrWidthRange, c.Width)
	}
	lo, hi := DepthRange(c.Width)
	if c.Depth < lo || c.Depth > hi {
		return fmt.Errorf("%w: %d for width %d (want %d..%d)", ErrDepthRange, c.Depth, c.Width, lo, hi)
	}
	need, ok := minDepth[c.Heuristic]
	if !ok {
		return fmt.Errorf("unknown heuristic %d", int(c.Heuristic))
	}
	if c.Depth < need {
		return fmt.Errorf("heuristic %s needs depth >= %d, have %d", c.Heuristic, need, c.Depth)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}
