package search

import (
	"github.com/depthlab/sortnet/pkg/gray"
	"github.com/depthlab/sortnet/pkg/network"
)

// Searcher performs the backtracking search over one layer-2 candidate.
//
// It owns every piece of mutable search state: the comparator network in map
// form, the per-layer matchings in sequence form, the layer counters that
// drive backtracking, the Gray code cursor, and the value table of the
// sorting test. Nothing is shared between searchers, so each task mutates
// its own searcher without synchronization.
type Searcher struct {
	width     int
	depth     int
	heuristic Heuristic

	net  *network.Network
	code *gray.Ternary

	// value[i][j] is the value on channel j entering layer i while the
	// sorting test runs.
	value [network.MaxDepth][network.MaxWidth]int

	// matchings holds the enumerable sequence form of every layer;
	// counters counts how many matchings each layer has consumed.
	matchings [network.MaxDepth]network.Matching
	counters  [network.MaxDepth]uint64

	numMatchings uint64
	top          int // shallowest enumerated layer (2 in second normal form)
	tos          int // layer currently advancing

	level2 int
	found  uint64

	// onSort is called for every sorting network found, with the network
	// and the 1-based within-task sequence number. The network is only
	// valid for the duration of the call. May be nil.
	onSort func(net *network.Network, seq uint64)

	// reachability state, used by the nearsort variants only
	reachFrom   [network.MaxWidth][network.MaxWidth]bool
	reachTo     [network.MaxWidth][network.MaxWidth]bool
	reachEither [network.MaxWidth][network.MaxWidth]bool
	countFrom   [network.MaxWidth]int
	countTo     [network.MaxWidth]int
	countEither [network.MaxWidth]int
}

// NewSearcher builds a searcher for one layer-2 candidate. The candidate
// index only tags output; the matching itself is installed as layer 1 and
// never advanced. onSort may be nil to count without emitting.
func NewSearcher(cfg Config, level2 network.Matching, index int, onSort func(*network.Network, uint64)) *Searcher {
	s := &Searcher{
		width:        cfg.Width,
		depth:        cfg.Depth,
		heuristic:    cfg.Heuristic,
		net:          network.New(cfg.Width, cfg.Depth),
		code:         gray.NewTernary(cfg.Width),
		numMatchings: network.CountMatchings(cfg.Width),
		level2:       index,
		onSort:       onSort,
	}

	for i := 0; i < s.depth; i++ {
		s.matchings[i] = *network.NewMatching(s.width)
	}

	s.initMatching(0) // layer 0 is the identity pairing
	s.matchings[1] = level2
	s.sync(1)

	return s
}

// Level2 reports the candidate index this searcher explores.
func (s *Searcher) Level2() int { return s.level2 }

// Found reports the number of sorting networks found so far.
func (s *Searcher) Found() uint64 { return s.found }

// Backtrack runs the search to exhaustion, processing every comparator
// network that extends the installed first two layers.
func (s *Searcher) Backtrack() {
	s.found = 0
	s.firstNetwork(2)
	for {
		s.process()
		if !s.nextNetwork() {
			return
		}
	}
}

// firstNetwork resets every layer from toplevel down to the identity
// matching, making the current network the first in backtracking order.
func (s *Searcher) firstNetwork(toplevel int) {
	s.top = toplevel
	for i := toplevel; i < s.depth; i++ {
		s.initMatching(i)
	}
}

// initMatching resets one layer in both representations and rewinds its
// counter.
func (s *Searcher) initMatching(level int) {
	s.matchings[level].Init()
	s.counters[level] = 0
	s.net.SetIdentityPairs(level)
}

// sync rewrites the map form of a layer from its sequence form. The virtual
// channel of an odd-width matching marks its partner as the layer's free
// channel.
func (s *Searcher) sync(level int) {
	m := &s.matchings[level]
	for j := 0; j < s.width; j += 2 {
		x := m.At(j)
		y := m.At(j + 1)
		if y == s.width {
			s.net.Clear(level, x)
		} else {
			s.net.Join(level, x, y)
		}
	}
}

// setToS returns the deepest layer the backtracking loop advances; the
// layers below it are covered by the heuristic.
func (s *Searcher) setToS() int {
	switch s.heuristic {
	case Autocomplete:
		return s.depth - 2
	case Nearsort:
		return s.depth - 3
	case Nearsort2:
		return s.depth - 4
	default:
		return s.depth - 1
	}
}

// nextNetwork advances to the next comparator network in backtracking
// order: the deepest enumerated layer steps through its matchings, and an
// exhausted layer resets and carries into the one above. It reports false
// when the whole range top..deepest has been exhausted.
func (s *Searcher) nextNetwork() bool {
	s.tos = s.setToS()
	if s.tos < s.top {
		return false // no free layers; single candidate per task
	}

	s.counters[s.tos]++
	if s.matchings[s.tos].Next() {
		s.sync(s.tos)
	}

	for s.tos >= s.top && s.counters[s.tos] == s.numMatchings {
		s.initMatching(s.tos)
		s.tos--
		if s.tos >= s.top {
			s.counters[s.tos]++
			if s.counters[s.tos] < s.numMatchings && s.matchings[s.tos].Next() {
				s.sync(s.tos)
			}
		}
	}

	return s.tos >= s.top
}

// process tests the current comparator network with the heuristic's sorting
// test and records every sorter.
func (s *Searcher) process() {
	switch s.heuristic {
	case Plain:
		if s.sorts() {
			s.record()
		}
	case Autocomplete:
		if s.sortsAutocomplete() {
			s.record()
		}
	case Nearsort:
		s.processNearsort()
	case Nearsort2:
		s.processNearsort2()
	}
}

func (s *Searcher) record() {
	s.found++
	if s.onSort != nil {
		s.onSort(s.net, s.found)
	}
}
