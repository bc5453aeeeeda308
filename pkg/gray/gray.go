// Package gray provides loopless Gray code generators used by the sorting
// network search.
//
// Both generators stream the index of the single bit that changes between
// consecutive code words, which is what makes the flip-and-propagate sorting
// test cheap: the tester only has to trace one changed value through the
// network per step instead of re-evaluating all channels.
//
// [Binary] implements the nonrecursive binary reflected Gray code from
// Bitner, Ehrlich, and Reingold, "Efficient generation of the Binary
// Reflected Gray Code and its applications", CACM 19(9), 1976.
//
// [Ternary] overlays a per-pair direction array on the binary generator so
// that each channel pair only ever takes the values 00, 01, and 11. Inputs of
// that shape pass unchanged through a first layer that compares channels
// 0-1, 2-3, ..., which is what lets the search pin the first layer and test
// 3^⌊n/2⌋ inputs instead of 2^n.
package gray

// maxWidth is the widest network the search supports. The state arrays carry
// three spare slots because the generators write one step past the last
// channel when they exhaust.
const maxWidth = 12

// Binary streams the n-bit binary reflected Gray code.
//
// The zero value is not usable; call [NewBinary], or [Binary.Init] to rewind
// an existing generator.
type Binary struct {
	width int
	zeros int

	bit   [maxWidth + 3]int // current code word, 1-based
	stack [maxWidth + 3]int // pending positions, removes recursion
}

// NewBinary returns a generator for width-bit code words, positioned at the
// all-zero word.
func NewBinary(width int) *Binary {
	g := &Binary{width: width}
	g.Init()
	return g
}

// Init rewinds the generator to the all-zero word.
func (g *Binary) Init() {
	g.zeros = g.width
	for i := 0; i <= g.width+2; i++ {
		g.bit[i] = 0
		g.stack[i] = i + 1
	}
}

// Next advances to the next code word and returns the channel whose bit
// changed. A returned channel >= Width means the sequence is exhausted.
func (g *Binary) Next() int {
	i := g.stack[0]
	g.stack[0] = 1
	g.bit[i] ^= 1
	g.stack[i-1] = g.stack[i]
	g.stack[i] = i + 1
	g.zeros += 1 - 2*g.bit[i]
	return i - 1
}

// Bit reports the current value of the bit on the given channel.
func (g *Binary) Bit(channel int) int { return g.bit[channel+1] }

// Zeros reports the number of zero bits in the current code word.
func (g *Binary) Zeros() int { return g.zeros }

// SetZeros overrides the zero count. The sorting test uses this when it fixes
// the last channel of an odd-width network to one, which the generator itself
// never flips.
func (g *Binary) SetZeros(z int) { g.zeros = z }

// Width reports the code word width in bits.
func (g *Binary) Width() int { return g.width }

// Ternary streams a width-bit Gray code whose channel pairs (0,1), (2,3), ...
// are restricted to the values 00, 01, and 11. For odd widths the last
// channel is never flipped. The sequence visits 3^⌊width/2⌋ words, one bit
// flip apart.
type Ternary struct {
	Binary
	dir [maxWidth + 3]int // per-pair flip direction
}

// NewTernary returns a generator for width-bit code words, positioned at the
// all-zero word.
func NewTernary(width int) *Ternary {
	g := &Ternary{}
	g.width = width
	g.Init()
	return g
}

// Init rewinds the generator to the all-zero word.
func (g *Ternary) Init() {
	g.Binary.Init()
	for i := 0; i <= g.width+2; i++ {
		g.dir[i] = 0
	}
}

// Next advances to the next code word and returns the channel whose bit
// changed. A returned channel >= Width means the sequence is exhausted.
//
// Each step flips one bit of one pair, walking the pair through
// 00 -> 01 -> 11 and back. When a pair's two bits equalize the pair reverses
// direction and the pair-level stack advances, mirroring the binary
// generator one level up.
func (g *Ternary) Next() int {
	i := g.stack[0]
	g.stack[0] = 1
	j := 2*i - g.bit[2*i-g.dir[i]]
	g.bit[j] ^= 1

	if g.bit[2*i] == g.bit[2*i-1] {
		g.dir[i] ^= 1
		g.stack[i-1] = g.stack[i]
		g.stack[i] = i + 1
	}

	g.zeros += 1 - 2*g.bit[j]
	return j - 1
}
