package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/depthlab/sortnet/pkg/search"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("aborted")

// searchParams are the resolved inputs of one search run.
type searchParams struct {
	width     int
	depth     int
	heuristic search.Heuristic
}

// resolveParams fills in whatever the flags left open. On a terminal the
// missing values come from an interactive picker; otherwise from plain
// stdin prompts that re-ask until the value is in range.
func resolveParams(opts searchOpts) (searchParams, error) {
	interactive := isatty.IsTerminal(os.Stdout.Fd())

	var p searchParams
	var err error

	p.width = opts.width
	if p.width == 0 {
		if p.width, err = askWidth(interactive); err != nil {
			return p, err
		}
	}

	p.depth = opts.depth
	if p.depth == 0 {
		if p.depth, err = askDepth(interactive, p.width); err != nil {
			return p, err
		}
	}

	if opts.heuristic != "auto" && opts.heuristic != "" {
		p.heuristic, err = search.ParseHeuristic(opts.heuristic)
		return p, err
	}

	nearsort2 := opts.nearsort2
	if !nearsort2 && p.depth >= 5 && opts.width == 0 {
		// interactive run: offer the deeper pruning variant
		if nearsort2, err = askNearsort2(interactive); err != nil {
			return p, err
		}
	}
	p.heuristic = search.AutoHeuristic(p.depth, nearsort2)
	return p, nil
}

func askWidth(interactive bool) (int, error) {
	if interactive {
		return pickNumber("Number of input channels", numberRange(3, 12))
	}
	return promptInt(os.Stdin, os.Stderr, "Number of input channels (3-12): ", 3, 12)
}

func askDepth(interactive bool, width int) (int, error) {
	lo, hi := search.DepthRange(width)
	if interactive {
		return pickNumber(fmt.Sprintf("Depth for %d channels", width), numberRange(lo, hi))
	}
	return promptInt(os.Stdin, os.Stderr, fmt.Sprintf("Depth (%d-%d): ", lo, hi), lo, hi)
}

func askNearsort2(interactive bool) (bool, error) {
	if interactive {
		v, err := pickNumber("Use the nearsort2 heuristic?", []pickItem{
			{label: "no (nearsort)", value: 0},
			{label: "yes (nearsort2)", value: 1},
		})
		return v == 1, err
	}
	return promptYesNo(os.Stdin, os.Stderr, "Use the nearsort2 heuristic? (y/n): ")
}

// promptInt reads integers from r until one falls inside [lo, hi].
func promptInt(r io.Reader, w io.Writer, label string, lo, hi int) (int, error) {
	br := bufio.NewReader(r)
	for {
		fmt.Fprint(w, label)
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("%w: %v", ErrAborted, err)
		}

		v, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && v >= lo && v <= hi {
			return v, nil
		}
		fmt.Fprintf(w, "value must be between %d and %d\n", lo, hi)

		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}
}

// promptYesNo reads y/n answers from r until one parses.
func promptYesNo(r io.Reader, w io.Writer, label string) (bool, error) {
	br := bufio.NewReader(r)
	for {
		fmt.Fprint(w, label)
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("%w: %v", ErrAborted, err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w, "answer y or n")

		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}
}

func numberRange(lo, hi int) []pickItem {
	items := make([]pickItem, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		items = append(items, pickItem{label: strconv.Itoa(v), value: v})
	}
	return items
}
