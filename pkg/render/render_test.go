package render

import (
	"strings"
	"testing"

	"github.com/depthlab/sortnet/pkg/network"
)

func testNetwork() *network.Network {
	c := network.New(4, 3)
	c.Join(0, 0, 1)
	c.Join(0, 2, 3)
	c.Join(1, 0, 2)
	c.Join(1, 1, 3)
	c.Join(2, 1, 2)
	return c
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(testNetwork(), Options{})

	if !strings.HasPrefix(dot, "digraph network {") {
		t.Fatalf("not a digraph: %q", dot[:30])
	}
	for _, want := range []string{
		"rankdir=LR",
		"l0c0 -> l0c1 [constraint=false",
		"l2c1 -> l2c2 [constraint=false",
		"in0 -> l0c0 -> l1c0 -> l2c0 -> out0",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
}

func TestToDOTComparatorCount(t *testing.T) {
	dot := ToDOT(testNetwork(), Options{})
	if got := strings.Count(dot, "constraint=false"); got != 5 {
		t.Errorf("DOT has %d comparator edges, want 5", got)
	}
}

func TestToDOTOneRankPerLayer(t *testing.T) {
	dot := ToDOT(testNetwork(), Options{})
	if got := strings.Count(dot, "rank=same"); got != 3 {
		t.Errorf("DOT has %d layer ranks, want 3", got)
	}
}
