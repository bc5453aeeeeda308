package search

// The nearsort variants prune whole families of candidates before their
// deepest layers are enumerated. With the last hidden layers missing, every
// Gray code flip yields a pair (j, k): the changed value surfaces on channel
// j but must reach channel k. The hidden layers can only realize all those
// routes if the demand stays small: nearsort stops propagation two layers
// short of the output, and through two comparators a value can reach at
// most three channels other than its own, so a channel that must feed more
// than 3 distinct targets (or be fed by more than 3 sources, or touch more
// than 5 channels in either direction) is unsatisfiable. Nearsort2 stops
// three layers short, and its bounds are 7, 7 and 9. A prefix that exceeds
// a bound has no sorting
// completion; a prefix that passes may still fail, so survivors fall
// through to full enumeration of the hidden layers.

func (s *Searcher) clearReach() {
	for i := 0; i < s.width; i++ {
		for j := 0; j < s.width; j++ {
			s.reachFrom[i][j] = false
			s.reachTo[i][j] = false
			s.reachEither[i][j] = false
		}
		s.countFrom[i] = 0
		s.countTo[i] = 0
		s.countEither[i] = 0
	}
}

// stillNearsorts records the route demand (j -> k) of one flip, with
// propagation stopping at layer last, and fails as soon as a demand set
// exceeds its bound.
func (s *Searcher) stillNearsorts(delta, last, limFrom, limTo, limEither int) bool {
	k := s.target(delta)
	j := s.flipInput(delta, 1, last)

	if j == k {
		return true
	}

	if !s.reachFrom[j][k] {
		if s.countFrom[j] >= limFrom {
			return false
		}
		s.countFrom[j]++
		s.reachFrom[j][k] = true
	}

	if !s.reachTo[j][k] {
		if s.countTo[k] >= limTo {
			return false
		}
		s.countTo[k]++
		s.reachTo[j][k] = true
	}

	if !s.reachEither[j][k] {
		if s.countEither[j] >= limEither || s.countEither[k] >= limEither {
			return false
		}
		s.countEither[j]++
		s.countEither[k]++
		s.reachEither[j][k] = true
		s.reachEither[k][j] = true
	}

	return true
}

func (s *Searcher) evenNearsorts(last, limFrom, limTo, limEither int) bool {
	for {
		delta := s.code.Next()
		if delta >= s.width {
			return true
		}
		if !s.stillNearsorts(delta, last, limFrom, limTo, limEither) {
			return false
		}
	}
}

// nearsorts runs the reachability check over all Gray code flips, with both
// odd-width passes sharing one demand table.
func (s *Searcher) nearsorts(last, limFrom, limTo, limEither int) bool {
	s.code.Init()
	s.initValues(1, last)
	s.clearReach()
	if !s.evenNearsorts(last, limFrom, limTo, limEither) {
		return false
	}

	if odd(s.width) {
		s.code.Init()
		s.initValues(1, last)
		for i := 1; i < s.depth; i++ {
			s.value[i][s.width-1] = 1
		}
		s.code.SetZeros(s.width - 1)
		if !s.evenNearsorts(last, limFrom, limTo, limEither) {
			return false
		}
	}

	return true
}

// processNearsort tests the prefix above the last two layers; if it can
// still nearsort, layer depth-2 is enumerated in full with the last layer
// autocompleted.
func (s *Searcher) processNearsort() {
	if !s.nearsorts(s.depth-3, 3, 3, 5) {
		return
	}

	s.initMatching(s.depth - 2)
	for {
		if s.sortsAutocomplete() {
			s.record()
		}
		if !s.matchings[s.depth-2].Next() {
			return
		}
		s.sync(s.depth - 2)
	}
}

// processNearsort2 tests the prefix above the last three layers with the
// wider bounds; survivors enumerate layer depth-3 and run the nearsort
// stage for each assignment.
func (s *Searcher) processNearsort2() {
	if !s.nearsorts(s.depth-4, 7, 7, 9) {
		return
	}

	s.initMatching(s.depth - 3)
	for {
		s.processNearsort()
		if !s.matchings[s.depth-3].Next() {
			return
		}
		s.sync(s.depth - 3)
	}
}
