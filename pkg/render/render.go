// Package render draws comparator networks as diagrams.
//
// The DOT form lays channels out as horizontal rails running left to right
// through one column per layer, with comparators as vertical links inside
// their column — the standard way sorting networks are drawn. The DOT text
// can be kept as-is or rasterized to SVG or PNG through Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/depthlab/sortnet/pkg/network"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed labels every rail node with its layer and channel instead
	// of showing the channel number only at the ends.
	Detailed bool
}

// ToDOT converts a comparator network to Graphviz DOT. The resulting DOT
// string can be rendered with [SVG] or [PNG].
func ToDOT(c *network.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=point, width=0.08, color=black];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	// end labels
	for j := 0; j < c.Width(); j++ {
		fmt.Fprintf(&buf, "  in%d [shape=plaintext, label=\"%d\"];\n", j, j)
		fmt.Fprintf(&buf, "  out%d [shape=plaintext, label=\"%d\"];\n", j, j)
	}
	buf.WriteString("\n")

	// one column of rail nodes per layer
	for i := 0; i < c.Depth(); i++ {
		fmt.Fprintf(&buf, "  { rank=same;")
		for j := 0; j < c.Width(); j++ {
			if opts.Detailed {
				// point nodes show no label; draw the name instead
				fmt.Fprintf(&buf, " %s [shape=plaintext];", railNode(i, j, opts))
			} else {
				fmt.Fprintf(&buf, " %s;", railNode(i, j, opts))
			}
		}
		buf.WriteString(" }\n")
	}
	buf.WriteString("\n")

	// channel rails
	for j := 0; j < c.Width(); j++ {
		rail := make([]string, 0, c.Depth()+2)
		rail = append(rail, fmt.Sprintf("in%d", j))
		for i := 0; i < c.Depth(); i++ {
			rail = append(rail, railNode(i, j, opts))
		}
		rail = append(rail, fmt.Sprintf("out%d", j))
		fmt.Fprintf(&buf, "  %s [weight=10];\n", strings.Join(rail, " -> "))
	}
	buf.WriteString("\n")

	// comparators
	for i := 0; i < c.Depth(); i++ {
		for j := 0; j < c.Width(); j++ {
			if k := c.Comp(i, j); k > j {
				fmt.Fprintf(&buf, "  %s -> %s [constraint=false, penwidth=2];\n",
					railNode(i, j, opts), railNode(i, k, opts))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func railNode(layer, channel int, opts Options) string {
	if opts.Detailed {
		return fmt.Sprintf("\"L%d C%d\"", layer, channel)
	}
	return fmt.Sprintf("l%dc%d", layer, channel)
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
