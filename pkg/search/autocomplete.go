package search

// The autocomplete variant never enumerates the last layer. The sorting
// test propagates flips only to layer depth-2; whenever the toggled channel
// differs from the required target, the only comparator that can fix it is
// (j, k) on the last layer, so it is installed on the spot if both channels
// are still free. A conflict with an earlier installation means no last
// layer can complete this prefix, and the candidate dies without the
// prefix's matchings ever being enumerated.

// stillSortsAutocomplete propagates one flip through the enumerated layers
// and extends the last layer lazily.
func (s *Searcher) stillSortsAutocomplete(delta int) bool {
	j := s.flipInput(delta, 1, s.depth-2)
	k := s.target(delta)

	if j == k {
		return true
	}

	last := s.depth - 1
	cj := s.net.Comp(last, j)
	ck := s.net.Comp(last, k)

	switch {
	case cj == k && ck == j:
		return true // comparator already installed
	case cj == j && ck == k:
		s.net.Join(last, j, k)
		return true
	default:
		return false // conflicting comparator, cannot complete
	}
}

func (s *Searcher) evenSortsAutocomplete() bool {
	for {
		delta := s.code.Next()
		if delta >= s.width {
			return true
		}
		if !s.stillSortsAutocomplete(delta) {
			return false
		}
	}
}

// sortsAutocomplete reports whether some last layer completes the current
// prefix into a sorting network, building that layer as a side effect. On
// success the network (including the synthesized layer) is the sorter. The
// last layer survives across the odd-width second pass: both passes must
// agree on it.
func (s *Searcher) sortsAutocomplete() bool {
	s.net.ClearLevel(s.depth - 1)

	s.code.Init()
	s.initValues(1, s.depth-2)
	if !s.evenSortsAutocomplete() {
		return false
	}

	if odd(s.width) {
		s.code.Init()
		s.initValues(1, s.depth-2)
		for i := 0; i < s.depth; i++ {
			s.value[i][s.width-1] = 1
		}
		s.code.SetZeros(s.width - 1)
		if !s.evenSortsAutocomplete() {
			return false
		}
	}

	return true
}
