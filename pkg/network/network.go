package network

// Network is a comparator network in map form: Comp(i, j) == k with k != j
// means a comparator joins channels j and k at layer i, routing the minimum
// to the lower channel and the maximum to the higher one. Comp(i, j) == j
// means channel j is untouched at layer i.
//
// The map form is what the sorting test probes, so lookups are O(1). The
// searcher mutates one layer at a time as it walks the backtracking lattice.
type Network struct {
	width int
	depth int

	comp      [MaxDepth][MaxWidth]int
	redundant [MaxDepth][MaxWidth]bool
}

// New returns a network of the given dimensions with no comparators.
func New(width, depth int) *Network {
	c := &Network{width: width, depth: depth}
	for i := 0; i < depth; i++ {
		c.ClearLevel(i)
	}
	return c
}

// Width reports the number of channels.
func (c *Network) Width() int { return c.width }

// Depth reports the number of layers.
func (c *Network) Depth() int { return c.depth }

// Comp returns the partner of a channel at a layer; a channel with no
// comparator returns itself.
func (c *Network) Comp(level, channel int) int { return c.comp[level][channel] }

// Join places a comparator between channels j and k at the given layer.
func (c *Network) Join(level, j, k int) {
	c.comp[level][j] = k
	c.comp[level][k] = j
}

// Clear removes the comparator endpoint on a channel at a layer.
func (c *Network) Clear(level, channel int) {
	c.comp[level][channel] = channel
}

// ClearLevel removes every comparator at a layer.
func (c *Network) ClearLevel(level int) {
	for j := 0; j < c.width; j++ {
		c.comp[level][j] = j
	}
}

// SetIdentityPairs installs the pairing (0,1), (2,3), ... at a layer. For
// odd widths the last channel is left free. This is the fixed first layer of
// a first normal form network.
func (c *Network) SetIdentityPairs(level int) {
	for j := 0; j < c.width; j++ {
		c.comp[level][j] = j ^ 1
	}
	if odd(c.width) {
		c.comp[level][c.width-1] = c.width - 1
	}
}

// RemoveRedundant marks every comparator that duplicates the comparator on
// the same channels one layer up, and returns the number of comparators that
// remain. Marked comparators are skipped by [Network.Encode].
//
// A repeated comparator can never change anything: its channels already
// carry a sorted pair.
func (c *Network) RemoveRedundant() int {
	count := 0
	for j := 0; j < c.width; j++ {
		if c.comp[0][j] != j {
			count++
		}
	}

	for i := 0; i < c.depth; i++ {
		for j := 0; j < c.width; j++ {
			c.redundant[i][j] = false
		}
	}

	for i := 1; i < c.depth; i++ {
		for j := 0; j < c.width; j++ {
			if c.comp[i][j] == c.comp[i-1][j] && !c.redundant[i][j] {
				c.redundant[i][j] = true
			} else if c.comp[i][j] != j {
				count++
			}
		}
	}

	return count / 2
}

// Sorts reports whether the network sorts every input, decided by brute
// force over all 2^width zero-one inputs. This is the reference oracle; the
// search itself uses the incremental Gray code test, which is exponentially
// cheaper per candidate.
func (c *Network) Sorts() bool {
	for input := 0; input < 1<<c.width; input++ {
		var v [MaxWidth]int
		for j := 0; j < c.width; j++ {
			v[j] = (input >> j) & 1
		}

		for i := 0; i < c.depth; i++ {
			for j := 0; j < c.width; j++ {
				k := c.comp[i][j]
				if k > j && v[j] > v[k] {
					v[j], v[k] = v[k], v[j]
				}
			}
		}

		for j := 1; j < c.width; j++ {
			if v[j-1] > v[j] {
				return false
			}
		}
	}
	return true
}
