package network

import (
	"fmt"
	"testing"
)

// enumerate runs the matching enumerator to exhaustion and returns the
// canonical string of every matching visited.
func enumerate(width int) []string {
	m := NewMatching(width)
	var all []string
	for {
		all = append(all, canonicalKey(m))
		if !m.Next() {
			return all
		}
	}
}

// canonicalKey renders a matching as its sorted pair set, independent of the
// order Next happens to store the pairs in.
func canonicalKey(m *Matching) string {
	n := evenCeil(m.Width())
	var pairs [MaxWidth/2 + 1][2]int
	for k := 0; k < n/2; k++ {
		a, b := m.At(2*k), m.At(2*k+1)
		if a > b {
			a, b = b, a
		}
		pairs[k] = [2]int{a, b}
	}
	// selection sort; at most 6 pairs
	for i := 0; i < n/2; i++ {
		for j := i + 1; j < n/2; j++ {
			if pairs[j][0] < pairs[i][0] {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
	}
	s := ""
	for k := 0; k < n/2; k++ {
		s += fmt.Sprintf("(%d,%d)", pairs[k][0], pairs[k][1])
	}
	return s
}

func TestMatchingTotality(t *testing.T) {
	for width := 2; width <= 12; width++ {
		all := enumerate(width)

		if want := CountMatchings(width); uint64(len(all)) != want {
			t.Errorf("width %d: enumerated %d matchings, want %d", width, len(all), want)
		}

		seen := make(map[string]bool, len(all))
		for _, k := range all {
			if seen[k] {
				t.Errorf("width %d: matching %s enumerated twice", width, k)
			}
			seen[k] = true
		}
	}
}

func TestCountMatchings(t *testing.T) {
	tests := []struct {
		width int
		want  uint64
	}{
		{2, 1},
		{3, 3},
		{4, 3},
		{5, 15},
		{6, 15},
		{7, 105},
		{8, 105},
		{9, 945},
		{10, 945},
		{11, 10395},
		{12, 10395},
	}
	for _, tt := range tests {
		if got := CountMatchings(tt.width); got != tt.want {
			t.Errorf("CountMatchings(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestMatchingRepresentationSync(t *testing.T) {
	for width := 2; width <= 8; width++ {
		m := NewMatching(width)
		for step := 0; ; step++ {
			n := evenCeil(width)
			for ch := 0; ch < n; ch++ {
				p := m.Partner(ch)
				if m.Partner(p) != ch {
					t.Fatalf("width %d step %d: partner(partner(%d)) = %d", width, step, ch, m.Partner(p))
				}
			}
			for i := 0; i < n; i++ {
				if m.pos[m.seq[i]] != i {
					t.Fatalf("width %d step %d: pos desynced at slot %d", width, step, i)
				}
			}
			if !m.Next() {
				break
			}
		}
	}
}

func TestMatchingVirtualChannelStaysPut(t *testing.T) {
	for _, width := range []int{3, 5, 7, 9} {
		m := NewMatching(width)
		for {
			if m.At(evenCeil(width)-1) != width {
				t.Fatalf("width %d: virtual channel moved out of the last slot", width)
			}
			if !m.Next() {
				break
			}
		}
	}
}

func TestNormalizeCanonicalShape(t *testing.T) {
	for _, width := range []int{4, 6, 8} {
		m := NewMatching(width)
		for {
			n := *m // Normalize a copy; Next state is not preserved
			n.Normalize()

			for k := 0; k < width/2; k++ {
				if n.At(2*k) > n.At(2*k+1) {
					t.Fatalf("width %d: pair %d not sorted after Normalize: %s", width, k, n.String())
				}
				if k > 0 && n.At(2*(k-1)) > n.At(2*k) {
					t.Fatalf("width %d: pairs out of order after Normalize: %s", width, n.String())
				}
			}

			again := n
			again.Normalize()
			for i := 0; i < evenCeil(width); i++ {
				if again.At(i) != n.At(i) {
					t.Fatalf("width %d: Normalize is not idempotent: %s -> %s", width, n.String(), again.String())
				}
			}

			if !m.Next() {
				break
			}
		}
	}
}

func TestSwapPairsKeepsPairSet(t *testing.T) {
	m := NewMatching(8)
	m.Next()
	m.Next()

	before := canonicalKey(m)
	m.SwapPairs(0, 2)
	m.SwapPairs(0, 2)

	if got := canonicalKey(m); got != before {
		t.Errorf("double SwapPairs changed the matching: %s -> %s", before, got)
	}
}
