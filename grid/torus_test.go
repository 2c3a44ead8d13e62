package grid

import (
	"errors"
	"testing"
)

func TestTorusWraps(t *testing.T) {
	tor, err := FromSlice(3, 3, []int{
		0, 1, 0,
		0, 0, 0,
		0, 2, 0,
	}, WithWrap[int]())
	if err != nil {
		t.Fatal(err)
	}
	if !tor.Wraps() {
		t.Fatal("Wraps() = false for a torus")
	}

	tests := []struct {
		x, y int
		want int
	}{
		{1, 0, 1},
		{1, -1, 2},
		{4, 0, 1},
		{-2, 3, 1},
		{1, -4, 2},
	}
	for _, tt := range tests {
		got, err := tor.Get(tt.x, tt.y)
		if err != nil {
			t.Errorf("Get(%d, %d) error = %v", tt.x, tt.y, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTorusMatchesModulo(t *testing.T) {
	const w, h = 4, 3
	tor, _ := NewTorus[int](w, h)
	for i, c := range tor.Coordinates() {
		_ = tor.Put(c, i)
	}
	for _, x := range []int{-1000001, -13, -4, -1, 0, 3, 7, 999999} {
		for _, y := range []int{-999, -3, -1, 0, 2, 5, 1 << 40} {
			got, err := tor.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d) error = %v", x, y, err)
			}
			want, _ := tor.Get(mod(x, w), mod(y, h))
			if got != want {
				t.Errorf("Get(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestTorusSetWraps(t *testing.T) {
	tor, _ := NewTorus[string](2, 2)
	if err := tor.Set(-1, 5, "x"); err != nil {
		t.Fatalf("Set(-1, 5) error = %v", err)
	}
	if v, _ := tor.Get(1, 1); v != "x" {
		t.Errorf("Get(1, 1) = %q, want %q", v, "x")
	}
	if _, err := tor.Resolve(-7, 9); errors.Is(err, ErrOutOfBounds) {
		t.Error("torus reported out of bounds")
	}
}

func TestTorusSharesGridBehaviour(t *testing.T) {
	tor, _ := NewTorus[int](3, 2)
	if w, h := tor.Dimensions(); w != 3 || h != 2 {
		t.Errorf("Dimensions() = (%d, %d), want (3, 2)", w, h)
	}
	if len(tor.Coordinates()) != 6 {
		t.Errorf("len(Coordinates()) = %d, want 6", len(tor.Coordinates()))
	}
	clone := tor.Clone()
	if !clone.Wraps() {
		t.Error("Clone() lost the wrapping resolver")
	}
}

func TestTorusNeighbors(t *testing.T) {
	tor, _ := NewTorus[int](3, 3)
	got := tor.Neighbors4(Coord{0, 0})
	want := []Coord{{0, 2}, {1, 0}, {0, 1}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors4((0, 0)) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors4((0, 0))[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResolvers(t *testing.T) {
	if _, ok := Bounded(-1, 0, 3, 3); ok {
		t.Error("Bounded(-1, 0) ok = true")
	}
	if c, ok := Wrapped(-1, -4, 3, 3); !ok || c != (Coord{2, 2}) {
		t.Errorf("Wrapped(-1, -4) = %v, %v; want (2, 2), true", c, ok)
	}
}
