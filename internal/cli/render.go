package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depthlab/sortnet/pkg/network"
	"github.com/depthlab/sortnet/pkg/render"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	format   string // dot, svg, or png
	detailed bool   // label every rail node with layer and channel
}

// renderCommand creates the render command, which draws a saved network
// file as a comparator network diagram. Width and depth are recovered from
// the canonical file name.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render <network-file>",
		Short: "Draw a saved sorting network as a diagram",
		Long: `Render a network file produced by search as a diagram.

The file name must be the canonical w{n}d{d}x{L2}s{size}n{seq}.txt form,
which is where the dimensions come from.

Examples:
  sortnet render w8d6x12s19n1.txt
  sortnet render w8d6x12s19n1.txt --format png -o sorter.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults next to the input)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "dot, svg, or png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label every rail node")

	return cmd
}

func (c *CLI) runRender(path string, opts renderOpts) error {
	info, err := network.ParseFilename(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	net, err := network.Parse(f, info.Width, info.Depth)
	f.Close()
	if err != nil {
		return err
	}

	dot := render.ToDOT(net, render.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		if data, err = render.SVG(dot); err != nil {
			return err
		}
	case formatPNG:
		if data, err = render.PNG(dot); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or png)", opts.format)
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + opts.format
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}

	printSuccess("%s (%d comparators) → %s", filepath.Base(path), info.Size, out)
	return nil
}
