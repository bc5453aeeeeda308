// Package network provides the two comparator network representations used
// by the sorting network search: [Matching], a per-layer perfect matching
// optimized for lexicographic enumeration, and [Network], a depth×width
// table optimized for the sorting test and for serialization.
//
// # Representations
//
// A matching is held in two synchronized forms. The sequence form is a
// permutation of the channels in which consecutive entries pair up:
// (seq[0],seq[1]), (seq[2],seq[3]), and so on. It supports an O(1) amortized
// "next matching" step driven by a small control stack. The map form, kept by
// [Network], maps each channel to its partner and supports O(1) probes while
// values propagate through the network.
//
// Odd widths are handled with a virtual extra channel: a matching over an odd
// number of channels is enumerated as a perfect matching over width+1
// channels, and whichever channel ends up paired with the virtual one is the
// layer's fixed point. The virtual channel always sits in the last sequence
// slot, so it never migrates during enumeration.
package network

// Hard limits of the search. Widths above 12 are out of reach for an
// exhaustive depth search anyway, so fixed-size arrays keep every per-layer
// structure on the stack.
const (
	MaxWidth = 12
	MaxDepth = 8
)

func odd(n int) bool { return n&1 == 1 }

// oddFloor rounds even numbers down to the next odd number.
func oddFloor(n int) int {
	if odd(n) {
		return n
	}
	return n - 1
}

// evenCeil rounds odd numbers up to the next even number.
func evenCeil(n int) int {
	if odd(n) {
		return n + 1
	}
	return n
}

// Matching is a perfect matching over the channels of one layer, enumerable
// in a fixed lexicographic order.
//
// The zero value is not usable; call [NewMatching]. Copying a Matching with
// plain assignment yields an independent snapshot, which the search uses to
// install layer-2 candidates.
type Matching struct {
	width int

	seq   [MaxWidth + 1]int // sequence form: (seq[2k], seq[2k+1]) are pairs
	pos   [MaxWidth + 1]int // pos[channel] = index of channel in seq
	stack [MaxWidth + 1]int // control stack, removes recursion from Next
}

// NewMatching returns the identity matching (0,1), (2,3), ... over the given
// width. For odd widths the virtual channel `width` occupies the last slot.
func NewMatching(width int) *Matching {
	m := &Matching{width: width}
	m.Init()
	return m
}

// Init resets to the identity matching and rewinds the enumeration.
func (m *Matching) Init() {
	for i := 0; i < evenCeil(m.width); i++ {
		m.seq[i] = i
		m.pos[i] = i
		m.stack[i] = i - 1
	}
}

// Width reports the number of real channels.
func (m *Matching) Width() int { return m.width }

// At returns the channel in sequence slot i.
func (m *Matching) At(i int) int { return m.seq[i] }

// Partner returns the channel paired with the given channel. For the fixed
// point of an odd-width matching it returns the virtual channel index.
func (m *Matching) Partner(channel int) int { return m.seq[m.pos[channel]^1] }

// Next advances to the next matching in lexicographic pair order, keeping
// both forms synchronized. It reports false when the enumeration is
// exhausted; the matching is then back in a reset-like state and Init must
// be called before reuse.
func (m *Matching) Next() bool {
	s := 4
	i := m.stack[s-1]

	for i < 1 && s < oddFloor(m.width) {
		tmp := m.seq[s-2]

		for j := s - 1; j >= 2; j-- {
			m.seq[j-1] = m.seq[j-2]
			m.pos[m.seq[j-1]] = j - 1
		}

		m.seq[0] = tmp
		m.pos[tmp] = 0

		for j := 0; j < s; j++ {
			m.stack[j] = j - 1
		}

		s += 2
		i = m.stack[s-1]
	}

	if i > 0 {
		m.seq[i-1], m.seq[s-2] = m.seq[s-2], m.seq[i-1]
		m.pos[m.seq[i-1]] = i - 1
		m.pos[m.seq[s-2]] = s - 2
		m.stack[s-1] = i - 1
	}

	return m.stack[i] >= 0
}

// Normalize relabels channel pairs greedily so that low channels find their
// partners as early as possible, then rewrites the sequence form with each
// pair sorted low-to-high and pairs ordered by their low channel. Matchings
// that differ only by a relabeling of the identity-layer pairs tend to
// normalize to the same form, which is what makes it useful for comparing
// layer-2 candidates; the level-2 enumerator additionally minimizes over all
// pair permutations because the greedy pass alone does not always land two
// equivalent matchings on one form.
//
// Enumeration state is not preserved; Normalize is for comparing and
// installing matchings, not for resuming Next.
func (m *Matching) Normalize() {
	n := evenCeil(m.width)

	var cp [MaxWidth + 1]int
	for j := 0; j < n; j++ {
		cp[j] = m.seq[m.pos[j]^1]
	}

	next := 1
	for j := 0; j < n; j++ {
		src := max(next, j/2+1)
		next++

		if cp[j] > 2*src+1 {
			m.swapPair(cp[:], src, cp[j]/2)
		}
	}

	top := 0
	for k := 0; k < n; k++ {
		if cp[k] >= 0 {
			m.seq[top] = k
			m.seq[top+1] = cp[k]
			cp[cp[k]] = -1
			top += 2
		}
	}

	for i := 0; i < n; i++ {
		m.pos[m.seq[i]] = i
	}
}

// swapPair exchanges pairs i and j in a partner-map scratch array, patching
// every reference to the four moved channels.
func (m *Matching) swapPair(cp []int, i, j int) {
	i0, i1 := 2*i, 2*i+1
	j0, j1 := 2*j, 2*j+1

	cp[i0], cp[j0] = cp[j0], cp[i0]
	cp[i1], cp[j1] = cp[j1], cp[i1]

	for k := 0; k < m.width; k++ {
		switch cp[k] {
		case i0:
			cp[k] = j0
		case j0:
			cp[k] = i0
		case i1:
			cp[k] = j1
		case j1:
			cp[k] = i1
		}
	}
}

// SwapPairs exchanges the channel pairs (2i, 2i+1) and (2j, 2j+1) in the
// live matching, keeping both forms synchronized. This is the generating
// operation of the first-layer pair-permutation symmetry that the level-2
// enumerator quotients out.
func (m *Matching) SwapPairs(i, j int) {
	i0 := m.pos[2*i]
	j0 := m.pos[2*j]

	m.seq[i0] = 2 * j
	m.seq[j0] = 2 * i
	m.pos[m.seq[i0]] = i0
	m.pos[m.seq[j0]] = j0

	i1 := m.pos[2*i+1]
	j1 := m.pos[2*j+1]

	m.seq[i1] = 2*j + 1
	m.seq[j1] = 2*i + 1
	m.pos[m.seq[i1]] = i1
	m.pos[m.seq[j1]] = j1
}

// String renders the sequence form as space-separated channels.
func (m *Matching) String() string {
	b := make([]byte, 0, 3*m.width)
	for i := 0; i < m.width; i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendInt(b, m.seq[i])
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v >= 10 {
		b = append(b, byte('0'+v/10))
	}
	return append(b, byte('0'+v%10))
}

// FromPairs builds a matching from explicit channel pairs. Pairs are stored
// in the order given, each sorted low-to-high; for odd widths the channel
// missing from pairs becomes the fixed point, stored against the virtual
// channel in the last slot. FromPairs panics if pairs do not form a matching
// of the width's channels.
func FromPairs(width int, pairs [][2]int) *Matching {
	m := NewMatching(width)

	var used [MaxWidth + 1]bool
	slot := 0
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a > b {
			a, b = b, a
		}
		if a < 0 || b >= width || a == b || used[a] || used[b] {
			panic("network: FromPairs: not a matching")
		}
		used[a], used[b] = true, true
		m.seq[slot] = a
		m.seq[slot+1] = b
		slot += 2
	}

	if odd(width) {
		free := -1
		for ch := 0; ch < width; ch++ {
			if !used[ch] {
				free = ch
				break
			}
		}
		if free < 0 || slot != width-1 {
			panic("network: FromPairs: not a matching")
		}
		m.seq[slot] = free
		m.seq[slot+1] = width
		slot += 2
	} else if slot != width {
		panic("network: FromPairs: not a matching")
	}

	for i := 0; i < slot; i++ {
		m.pos[m.seq[i]] = i
	}
	return m
}

// CountMatchings returns the number of distinct matchings Next enumerates
// for a width: (n-1)(n-3)...1 for even n, and n(n-2)...1 for odd n (any
// channel may be the fixed point).
func CountMatchings(width int) uint64 {
	count := uint64(1)
	for i := oddFloor(width); i > 1; i -= 2 {
		count *= uint64(i)
	}
	return count
}
