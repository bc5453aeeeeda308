package search

import (
	"slices"
	"sort"

	"github.com/depthlab/sortnet/pkg/network"
)

// Level2Candidates returns the layer-2 matchings the search explores: one
// representative per equivalence class of matchings under permutations of
// the identity first layer's channel pairs. Permuting those pairs relabels
// a first-normal-form network into another first-normal-form network with
// the same sortedness (the relabeling is undone by a twist at the outputs
// that cancels across the remaining layers), so only one member of each
// class needs searching.
//
// The representative is the class member whose sorted pair set is
// lexicographically smallest; candidates appear in the enumeration order of
// their classes. The caller indexes the slice to name output files, so the
// order is part of the output contract.
func Level2Candidates(width int) []network.Matching {
	perms := pairPermutations(width / 2)

	seen := make(map[string]bool)
	var out []network.Matching

	m := network.NewMatching(width)
	for {
		key, rep := canonicalize(m, perms)
		if !seen[key] {
			seen[key] = true
			out = append(out, *rep)
		}
		if !m.Next() {
			break
		}
	}

	return out
}

// canonicalize returns the orbit-minimal form of a matching under the given
// pair permutations, as a comparable key plus the representative matching
// itself.
func canonicalize(m *network.Matching, perms [][]int) (string, *network.Matching) {
	width := m.Width()
	npairs := width / 2

	var bestKey string
	var bestPairs [][2]int

	for _, sigma := range perms {
		relabel := func(ch int) int {
			if ch < 2*npairs {
				return 2*sigma[ch/2] + ch&1
			}
			return ch
		}

		var pairs [][2]int
		for k := 0; 2*k+1 < evenCeil(width); k++ {
			a, b := m.At(2*k), m.At(2*k+1)
			if a == width || b == width {
				continue // fixed point, implied by the remaining pairs
			}
			x, y := relabel(a), relabel(b)
			if x > y {
				x, y = y, x
			}
			pairs = append(pairs, [2]int{x, y})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

		key := pairKey(pairs)
		if bestKey == "" || key < bestKey {
			bestKey = key
			bestPairs = pairs
		}
	}

	return bestKey, network.FromPairs(width, bestPairs)
}

func pairKey(pairs [][2]int) string {
	b := make([]byte, 0, 2*len(pairs))
	for _, p := range pairs {
		b = append(b, byte('a'+p[0]), byte('a'+p[1]))
	}
	return string(b)
}

func evenCeil(n int) int {
	if odd(n) {
		return n + 1
	}
	return n
}

// pairPermutations returns every permutation of [0, 1, ..., n-1] by Heap's
// algorithm. n is at most 6 here (six channel pairs at width 12), so the
// full set is small.
func pairPermutations(n int) [][]int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n <= 1 {
		return [][]int{slices.Clone(perm)}
	}

	state := make([]int, n)
	result := [][]int{slices.Clone(perm)}

	for i := 0; i < n; {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}
