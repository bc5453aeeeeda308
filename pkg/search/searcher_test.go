package search

import (
	"testing"

	"github.com/depthlab/sortnet/pkg/network"
)

// oracleCount exhaustively enumerates every first/second normal form
// network of the given dimensions with an odometer over the free layers and
// counts the ones that sort, using the brute-force 0/1 oracle. This is the
// reference the Gray code search must agree with.
func oracleCount(t *testing.T, width, depth int) uint64 {
	t.Helper()

	var all []*network.Matching
	m := network.NewMatching(width)
	for {
		snapshot := *m
		all = append(all, &snapshot)
		if !m.Next() {
			break
		}
	}

	install := func(c *network.Network, level int, mt *network.Matching) {
		for j := 0; j < width; j += 2 {
			x, y := mt.At(j), mt.At(j+1)
			if y == width {
				c.Clear(level, x)
			} else {
				c.Join(level, x, y)
			}
		}
	}

	var count uint64
	for _, cand := range Level2Candidates(width) {
		free := depth - 2
		idx := make([]int, free)
		for {
			c := network.New(width, depth)
			c.SetIdentityPairs(0)
			cm := cand
			install(c, 1, &cm)
			for l := 0; l < free; l++ {
				install(c, 2+l, all[idx[l]])
			}
			if c.Sorts() {
				count++
			}

			// odometer over the free layers
			l := free - 1
			for l >= 0 {
				idx[l]++
				if idx[l] < len(all) {
					break
				}
				idx[l] = 0
				l--
			}
			if l < 0 {
				break
			}
		}
	}
	return count
}

// searchCount runs every layer-2 task sequentially with the given heuristic
// and returns the aggregate count, verifying each emitted network with the
// brute-force oracle along the way.
func searchCount(t *testing.T, width, depth int, h Heuristic) uint64 {
	t.Helper()

	cfg := Config{Width: width, Depth: depth, Heuristic: h, CountOnly: true, Workers: 1}

	var total uint64
	for i, cand := range Level2Candidates(width) {
		s := NewSearcher(cfg, cand, i, func(net *network.Network, seq uint64) {
			if !net.Sorts() {
				t.Errorf("%s (%d,%d): emitted network #%d of candidate %d does not sort", h, width, depth, seq, i)
			}
		})
		s.Backtrack()
		total += s.Found()
	}
	return total
}

func TestPlainSearchMatchesOracle(t *testing.T) {
	tests := []struct {
		width, depth int
	}{
		{3, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 4},
	}
	for _, tt := range tests {
		want := oracleCount(t, tt.width, tt.depth)
		got := searchCount(t, tt.width, tt.depth, Plain)
		if got != want {
			t.Errorf("(%d,%d): search found %d sorters, oracle found %d", tt.width, tt.depth, got, want)
		}
	}
}

func TestNoDepth2SorterOnThreeChannels(t *testing.T) {
	if got := searchCount(t, 3, 2, Plain); got != 0 {
		t.Errorf("found %d 3-input depth-2 sorters, want 0", got)
	}
}

func TestDepth3SortersExist(t *testing.T) {
	if got := searchCount(t, 3, 3, Plain); got == 0 {
		t.Error("no 3-input depth-3 sorter found")
	}
	if got := searchCount(t, 4, 3, Plain); got == 0 {
		t.Error("no 4-input depth-3 sorter found")
	}
}

func TestPlainWidth5Depth5Nonempty(t *testing.T) {
	if got := searchCount(t, 5, 5, Plain); got == 0 {
		t.Error("no 5-input depth-5 sorter found")
	}
}

// The nearsort heuristics only discard prefixes with no sorting completion,
// and both fall through to the same autocomplete bottom stage, so all three
// variants must agree on the count.
func TestHeuristicsAgree(t *testing.T) {
	tests := []struct {
		width, depth int
		heuristics   []Heuristic
	}{
		{5, 4, []Heuristic{Autocomplete, Nearsort}}, // zero sorters; counts must still agree
		{5, 5, []Heuristic{Autocomplete, Nearsort, Nearsort2}},
		{6, 5, []Heuristic{Autocomplete, Nearsort}},
	}
	for _, tt := range tests {
		base := searchCount(t, tt.width, tt.depth, tt.heuristics[0])
		for _, h := range tt.heuristics[1:] {
			if got := searchCount(t, tt.width, tt.depth, h); got != base {
				t.Errorf("(%d,%d): %s found %d, %s found %d",
					tt.width, tt.depth, h, got, tt.heuristics[0], base)
			}
		}
	}
}

// Autocomplete accepts a prefix iff some last layer completes it, so its
// count must be the number of distinct accepted prefixes: positive exactly
// when the plain count is.
func TestAutocompleteExistenceAgreesWithPlain(t *testing.T) {
	tests := []struct {
		width, depth int
	}{
		{3, 3},
		{4, 3},
		{5, 4},
	}
	for _, tt := range tests {
		plain := searchCount(t, tt.width, tt.depth, Plain)
		auto := searchCount(t, tt.width, tt.depth, Autocomplete)
		if (plain == 0) != (auto == 0) {
			t.Errorf("(%d,%d): plain found %d but autocomplete found %d",
				tt.width, tt.depth, plain, auto)
		}
	}
}

func TestAutocompleteLastLayerIsMatching(t *testing.T) {
	cfg := Config{Width: 6, Depth: 5, Heuristic: Autocomplete, CountOnly: true, Workers: 1}

	checked := false
	for i, cand := range Level2Candidates(6) {
		s := NewSearcher(cfg, cand, i, func(net *network.Network, seq uint64) {
			checked = true
			last := net.Depth() - 1
			for j := 0; j < net.Width(); j++ {
				k := net.Comp(last, j)
				if net.Comp(last, k) != j {
					t.Fatalf("synthesized last layer is not an involution at channel %d", j)
				}
			}
			if !net.Sorts() {
				t.Fatal("autocompleted network does not sort")
			}
		})
		s.Backtrack()
	}
	if !checked {
		t.Error("no 6-input depth-5 sorter found")
	}
}

// partialMatchings returns every set of disjoint channel pairs on width
// channels, including the empty set. Unrestricted networks may use any of
// these per layer.
func partialMatchings(width int) [][][2]int {
	var out [][][2]int
	var grow func(from int, cur [][2]int)
	grow = func(from int, cur [][2]int) {
		snapshot := make([][2]int, len(cur))
		copy(snapshot, cur)
		out = append(out, snapshot)

		for j := from; j < width; j++ {
			for k := j + 1; k < width; k++ {
				free := true
				for _, p := range cur {
					if p[0] == j || p[1] == j || p[0] == k || p[1] == k {
						free = false
						break
					}
				}
				if free {
					grow(j+1, append(cur, [2]int{j, k}))
				}
			}
		}
	}
	grow(0, nil)
	return out
}

// Pinning layer 0 to the identity pairing and quotienting layer 1 must not
// change whether a sorter of the given dimensions exists at all.
func TestFirstNormalFormLossless(t *testing.T) {
	tests := []struct {
		width, depth int
	}{
		{3, 2},
		{3, 3},
		{4, 2},
		{4, 3},
	}
	for _, tt := range tests {
		layers := partialMatchings(tt.width)

		unrestricted := false
		idx := make([]int, tt.depth)
		for {
			c := network.New(tt.width, tt.depth)
			for l := 0; l < tt.depth; l++ {
				for _, p := range layers[idx[l]] {
					c.Join(l, p[0], p[1])
				}
			}
			if c.Sorts() {
				unrestricted = true
				break
			}

			l := tt.depth - 1
			for l >= 0 {
				idx[l]++
				if idx[l] < len(layers) {
					break
				}
				idx[l] = 0
				l--
			}
			if l < 0 {
				break
			}
		}

		restricted := searchCount(t, tt.width, tt.depth, Plain) > 0
		if unrestricted != restricted {
			t.Errorf("(%d,%d): unrestricted existence %v, normal form search existence %v",
				tt.width, tt.depth, unrestricted, restricted)
		}
	}
}

func TestSearcherRepresentationSyncDuringBacktrack(t *testing.T) {
	cfg := Config{Width: 5, Depth: 4, Heuristic: Plain, CountOnly: true, Workers: 1}
	cands := Level2Candidates(5)

	s := NewSearcher(cfg, cands[0], 0, nil)
	s.firstNetwork(2)
	for step := 0; step < 2000; step++ {
		for level := 0; level < cfg.Depth; level++ {
			for j := 0; j < cfg.Width; j++ {
				k := s.net.Comp(level, j)
				if s.net.Comp(level, k) != j {
					t.Fatalf("step %d: map form broken at level %d channel %d", step, level, j)
				}
			}
		}
		if !s.nextNetwork() {
			return
		}
	}
}
