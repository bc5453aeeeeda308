package search

// The sorting test. A comparator network sorts every input iff it sorts
// every 0/1 input (the zero-one principle), and with the first layer pinned
// to the identity pairing only inputs whose channel pairs read 00, 01, or 11
// need checking, since those pass the first layer unchanged. The ternary
// Gray code streams exactly that input set one bit flip at a time, and
// flipInput traces the one changed value through the network.

func odd(n int) bool { return n&1 == 1 }

// initValues zeroes the value table between two layers inclusive.
func (s *Searcher) initValues(first, last int) {
	for i := first; i <= last; i++ {
		for j := 0; j < s.width; j++ {
			s.value[i][j] = 0
		}
	}
}

// flipInput flips the value entering layer first on channel j and
// propagates the change down to layer last, following the comparator that
// routes the changed value at every layer. It returns the channel whose
// output toggled after layer last.
func (s *Searcher) flipInput(j, first, last int) int {
	for i := first; i <= last; i++ {
		s.value[i][j] ^= 1

		k := s.net.Comp(i, j)
		if v := s.value[i][k]; (v == 1 && j > k) || (v == 0 && j <= k) {
			j = k
		}
	}
	return j
}

// target returns the output channel that must toggle for the network to
// still sort after the current Gray code flip: the zero/one boundary of the
// sorted output moves up or down by one.
func (s *Searcher) target(delta int) int {
	if s.code.Bit(delta) == 1 {
		return s.code.Zeros()
	}
	return s.code.Zeros() - 1
}

// stillSorts checks that the network maps the flipped input to the expected
// sorted output by propagating the single changed bit.
func (s *Searcher) stillSorts(delta int) bool {
	return s.flipInput(delta, 1, s.depth-1) == s.target(delta)
}

// evenSorts drains the Gray code, checking every flip. For odd widths the
// pinned last channel keeps whatever value the caller fixed.
func (s *Searcher) evenSorts() bool {
	for {
		delta := s.code.Next()
		if delta >= s.width {
			return true
		}
		if !s.stillSorts(delta) {
			return false
		}
	}
}

// sorts reports whether the current network sorts every 0/1 input. For odd
// widths the test runs twice: the ternary code never flips the last
// channel, so it is checked once held at zero and once held at one.
func (s *Searcher) sorts() bool {
	s.code.Init()
	s.initValues(1, s.depth-1)
	if !s.evenSorts() {
		return false
	}

	if odd(s.width) {
		s.code.Init()
		s.initValues(1, s.depth-1)
		for i := 0; i < s.depth; i++ {
			s.value[i][s.width-1] = 1
		}
		s.code.SetZeros(s.width - 1)
		if !s.evenSorts() {
			return false
		}
	}

	return true
}
