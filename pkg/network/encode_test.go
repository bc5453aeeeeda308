package network

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeFormat(t *testing.T) {
	c := knownSorter4()
	c.RemoveRedundant()

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	want := "0 1 2 3 \n0 2 1 3 \n1 2 \n"
	if buf.String() != want {
		t.Errorf("Encode produced %q, want %q", buf.String(), want)
	}
}

func TestEncodeSkipsRedundant(t *testing.T) {
	c := New(4, 2)
	c.SetIdentityPairs(0)
	c.SetIdentityPairs(1)
	c.RemoveRedundant()

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	want := "0 1 2 3 \n\n"
	if buf.String() != want {
		t.Errorf("Encode produced %q, want %q", buf.String(), want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	c := knownSorter4()
	c.RemoveRedundant()

	var first bytes.Buffer
	if err := c.Encode(&first); err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(bytes.NewReader(first.Bytes()), 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	parsed.RemoveRedundant()

	var second bytes.Buffer
	if err := parsed.Encode(&second); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("round trip changed encoding: %q -> %q", first.String(), second.String())
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"odd fields", "0 1 2 \n\n\n"},
		{"channel out of range", "0 9 \n\n\n"},
		{"inverted pair", "1 0 \n\n\n"},
		{"reused channel", "0 1 1 2 \n\n\n"},
		{"too many layers", "0 1 \n0 1 \n0 1 \n0 1 \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), 4, 3)
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrBadFormat", tt.input, err)
			}
		})
	}
}

func TestFilenameRoundTrip(t *testing.T) {
	name := Filename(8, 6, 12, 19, 3)
	if name != "w8d6x12s19n3.txt" {
		t.Fatalf("Filename = %q", name)
	}

	info, err := ParseFilename("out/" + name)
	if err != nil {
		t.Fatal(err)
	}
	want := FileInfo{Width: 8, Depth: 6, Level2: 12, Size: 19, Seq: 3}
	if info != want {
		t.Errorf("ParseFilename = %+v, want %+v", info, want)
	}
}

func TestParseFilenameRejectsForeignNames(t *testing.T) {
	for _, name := range []string{"log.txt", "w8d6.txt", "w8d6x1s2n3.json"} {
		if _, err := ParseFilename(name); err == nil {
			t.Errorf("ParseFilename(%q) should fail", name)
		}
	}
}
