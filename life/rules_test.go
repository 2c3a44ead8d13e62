package life

import (
	"slices"
	"testing"

	"github.com/agentultra/horton/grid"
)

func world(t *testing.T, w, h int, alive ...grid.Coord) *grid.Grid[int] {
	t.Helper()
	g, err := grid.New[int](w, h)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range alive {
		if err := g.Put(c, Alive); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestNeighbours(t *testing.T) {
	w := world(t, 4, 4, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 0}, grid.Coord{X: 1, Y: 1})
	tests := []struct {
		c    grid.Coord
		want int
	}{
		{grid.Coord{X: 2, Y: 1}, 3},
		{grid.Coord{X: 1, Y: 3}, 0},
		{grid.Coord{X: 2, Y: 2}, 1},
		{grid.Coord{X: 0, Y: 0}, 2},
	}
	for _, tt := range tests {
		if got := Neighbours(w, tt.c); got != tt.want {
			t.Errorf("Neighbours(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestNeighboursTorus(t *testing.T) {
	w, _ := grid.NewTorus[int](4, 3)
	_ = w.Set(3, 2, Alive)
	_ = w.Set(1, 0, Alive)
	if got := Neighbours(w, grid.Coord{X: 0, Y: 0}); got != 2 {
		t.Errorf("Neighbours((0, 0)) = %d, want 2", got)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		cell, n, want int
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
	}
	for _, tt := range tests {
		if got := Next(tt.cell, tt.n); got != tt.want {
			t.Errorf("Next(%d, %d) = %d, want %d", tt.cell, tt.n, got, tt.want)
		}
	}
}

func TestStepBlinker(t *testing.T) {
	w := world(t, 3, 3, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 1})
	gen1 := Step(w)
	if want := "0 1 0\n0 1 0\n0 1 0\n"; gen1.String() != want {
		t.Errorf("gen 1 = %q, want %q", gen1.String(), want)
	}
	gen2 := Step(gen1)
	if want := "0 0 0\n1 1 1\n0 0 0\n"; gen2.String() != want {
		t.Errorf("gen 2 = %q, want %q", gen2.String(), want)
	}
	if !grid.Equal(w, gen2) {
		t.Error("Step mutated its input")
	}
}

func TestStepTorusGlider(t *testing.T) {
	seed, err := Parse(stringsReader(Patterns["glider"]), grid.WithWrap[int]())
	if err != nil {
		t.Fatal(err)
	}
	w := seed
	for i := 0; i < 4*seed.Width(); i++ {
		w = Step(w)
		if Population(w) != 5 {
			t.Fatalf("generation %d population = %d, want 5", i+1, Population(w))
		}
	}
	if !grid.Equal(seed, w) {
		t.Errorf("glider did not return home on the torus:\n%s", w)
	}
}

func TestAliveCells(t *testing.T) {
	w := world(t, 3, 3, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 0, Y: 1})
	want := []grid.Coord{{X: 0, Y: 1}, {X: 2, Y: 2}}
	if got := AliveCells(w); !slices.Equal(got, want) {
		t.Errorf("AliveCells() = %v, want %v", got, want)
	}
	if Population(w) != 2 {
		t.Errorf("Population() = %d, want 2", Population(w))
	}
}

func TestGenerations(t *testing.T) {
	seed := world(t, 3, 3, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 1})
	want := []string{
		"0 0 0\n1 1 1\n0 0 0\n",
		"0 1 0\n0 1 0\n0 1 0\n",
		"0 0 0\n1 1 1\n0 0 0\n",
	}

	var got []string
	for n, w := range Generations(3, seed) {
		if n != len(got) {
			t.Errorf("generation number = %d, want %d", n, len(got))
		}
		got = append(got, w.String())
	}
	if !slices.Equal(got, want) {
		t.Errorf("Generations() = %q, want %q", got, want)
	}

	_ = seed.Set(0, 0, Alive)
	for _, w := range Generations(1, seed) {
		_ = w.Set(0, 0, Dead)
	}
	if v, _ := seed.Get(0, 0); v != Alive {
		t.Error("Generations handed out the seed itself")
	}
}
