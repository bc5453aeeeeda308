package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadFormat is returned when a network file does not parse.
var ErrBadFormat = errors.New("malformed network file")

// Encode writes the network as text: one line per layer, each comparator as
// "j k " with j < k, comparators marked redundant by [Network.RemoveRedundant]
// omitted. Call RemoveRedundant first; Encode uses whatever marks are set.
func (c *Network) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < c.depth; i++ {
		for j := 0; j < c.width; j++ {
			k := c.comp[i][j]
			if !c.redundant[i][j] && k > j {
				fmt.Fprintf(bw, "%d %d ", j, k)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Save encodes the network to a file.
func (c *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Parse reads a network in the Encode format. The file carries no header, so
// the caller supplies width and depth (typically recovered from the file
// name, see [ParseFilename]). Lines beyond depth must be absent or blank.
func Parse(r io.Reader, width, depth int) (*Network, error) {
	if width < 2 || width > MaxWidth || depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range", ErrBadFormat, width, depth)
	}

	c := New(width, depth)
	sc := bufio.NewScanner(r)

	level := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			level++
			continue
		}
		if level >= depth {
			return nil, fmt.Errorf("%w: more than %d layers", ErrBadFormat, depth)
		}

		fields := strings.Fields(line)
		if len(fields)%2 != 0 {
			return nil, fmt.Errorf("%w: odd channel count at layer %d", ErrBadFormat, level)
		}

		for f := 0; f < len(fields); f += 2 {
			j, err1 := strconv.Atoi(fields[f])
			k, err2 := strconv.Atoi(fields[f+1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: layer %d: %q %q", ErrBadFormat, level, fields[f], fields[f+1])
			}
			if j < 0 || k >= width || j >= k {
				return nil, fmt.Errorf("%w: layer %d: comparator (%d, %d)", ErrBadFormat, level, j, k)
			}
			if c.comp[level][j] != j || c.comp[level][k] != k {
				return nil, fmt.Errorf("%w: layer %d: channel reused by (%d, %d)", ErrBadFormat, level, j, k)
			}
			c.Join(level, j, k)
		}
		level++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Filename builds the canonical output file name for a found sorting
// network: w{width}d{depth}x{level2}s{size}n{seq}.txt, where level2 is the
// 0-based layer-2 candidate index, size the comparator count after
// redundancy removal, and seq the 1-based within-task sequence number.
func Filename(width, depth, level2, size, seq int) string {
	return fmt.Sprintf("w%dd%dx%ds%dn%d.txt", width, depth, level2, size, seq)
}

var filenameRe = regexp.MustCompile(`^w(\d+)d(\d+)x(\d+)s(\d+)n(\d+)\.txt$`)

// FileInfo is the metadata a network file name encodes.
type FileInfo struct {
	Width  int
	Depth  int
	Level2 int
	Size   int
	Seq    int
}

// ParseFilename recovers the dimensions and counters from a file name
// produced by [Filename]. The argument may carry a directory prefix.
func ParseFilename(name string) (FileInfo, error) {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	m := filenameRe.FindStringSubmatch(base)
	if m == nil {
		return FileInfo{}, fmt.Errorf("%w: file name %q", ErrBadFormat, base)
	}

	atoi := func(s string) int {
		v, _ := strconv.Atoi(s)
		return v
	}
	return FileInfo{
		Width:  atoi(m[1]),
		Depth:  atoi(m[2]),
		Level2: atoi(m[3]),
		Size:   atoi(m[4]),
		Seq:    atoi(m[5]),
	}, nil
}
