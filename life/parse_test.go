package life

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agentultra/horton/grid"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestParse(t *testing.T) {
	w, err := Parse(stringsReader("! a blinker\n.O.\n.O.\n.O.\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "0 1 0\n0 1 0\n0 1 0\n"; w.String() != want {
		t.Errorf("Parse() = %q, want %q", w.String(), want)
	}
	if w.Wraps() {
		t.Error("Parse() without options returned a torus")
	}
}

func TestParseAliveCharacters(t *testing.T) {
	w, err := Parse(stringsReader("1 O o # *\n0 . - . 0\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if want := "1 1 1 1 1\n0 0 0 0 0\n"; w.String() != want {
		t.Errorf("Parse() = %q, want %q", w.String(), want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	seed, _ := grid.FromSlice(4, 2, []int{1, 0, 0, 1, 0, 1, 1, 0})
	back, err := Parse(stringsReader(seed.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !grid.Equal(seed, back) {
		t.Errorf("round trip = %q, want %q", back.String(), seed.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"ragged", "OOO\nOO\n", grid.ErrShapeMismatch},
		{"bad cell", "O?O\n", ErrInvalidCell},
		{"empty", "\n! nothing\n", grid.ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(stringsReader(tt.input)); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestPatternsParse(t *testing.T) {
	for name, text := range Patterns {
		w, err := Parse(stringsReader(text))
		if err != nil {
			t.Errorf("pattern %s: %v", name, err)
			continue
		}
		if Population(w) == 0 {
			t.Errorf("pattern %s is empty", name)
		}
	}
}
