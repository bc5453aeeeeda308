package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestPromptIntRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("0\nfifteen\n13\n8\n")
	var out strings.Builder

	v, err := promptInt(in, &out, "width: ", 3, 12)
	if err != nil {
		t.Fatal(err)
	}
	if v != 8 {
		t.Errorf("promptInt = %d, want 8", v)
	}
	if got := strings.Count(out.String(), "must be between"); got != 3 {
		t.Errorf("expected 3 rejections, saw %d: %q", got, out.String())
	}
}

func TestPromptIntAbortsOnEOF(t *testing.T) {
	in := strings.NewReader("99\n")
	var out strings.Builder

	_, err := promptInt(in, &out, "width: ", 3, 12)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("promptInt error = %v, want ErrAborted", err)
	}
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"maybe\nno\n", false},
	}
	for _, tt := range tests {
		var out strings.Builder
		got, err := promptYesNo(strings.NewReader(tt.input), &out, "? ")
		if err != nil {
			t.Fatalf("input %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("promptYesNo(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveParamsExplicitFlags(t *testing.T) {
	p, err := resolveParams(searchOpts{width: 8, depth: 6, heuristic: "nearsort"})
	if err != nil {
		t.Fatal(err)
	}
	if p.width != 8 || p.depth != 6 {
		t.Errorf("params %dx%d, want 8x6", p.width, p.depth)
	}
	if p.heuristic.String() != "nearsort" {
		t.Errorf("heuristic = %s", p.heuristic)
	}
}

func TestResolveParamsAutoHeuristic(t *testing.T) {
	p, err := resolveParams(searchOpts{width: 4, depth: 3, heuristic: "auto"})
	if err != nil {
		t.Fatal(err)
	}
	if p.heuristic.String() != "autocomplete" {
		t.Errorf("auto heuristic for depth 3 = %s, want autocomplete", p.heuristic)
	}

	p, err = resolveParams(searchOpts{width: 9, depth: 7, heuristic: "auto", nearsort2: true})
	if err != nil {
		t.Fatal(err)
	}
	if p.heuristic.String() != "nearsort2" {
		t.Errorf("auto heuristic with nearsort2 flag = %s, want nearsort2", p.heuristic)
	}
}
