package maze

import (
	"math/rand/v2"
	"sort"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/grid"
)

// Algorithm builds a maze of the given size using rng for its choices.
type Algorithm func(width, height int, rng *rand.Rand) (*grid.Grid[Cell], error)

// Algorithms lists the generators by name.
var Algorithms = map[string]Algorithm{
	"backtrack": Backtrack,
	"prim":      Prim,
}

// AlgorithmNames returns the keys of Algorithms, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(Algorithms))
	for name := range Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Backtrack is the recursive-backtracker: a random depth-first walk that
// backs up whenever it is boxed in.
func Backtrack(width, height int, rng *rand.Rand) (*grid.Grid[Cell], error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	visited, _ := grid.New[bool](width, height)

	coords := m.Coordinates()
	current := coords[rng.IntN(len(coords))]
	_ = visited.Put(current, true)
	stack := []grid.Coord{current}

	for len(stack) > 0 {
		ns := unvisited(visited, current)
		if len(ns) > 0 {
			n := ns[rng.IntN(len(ns))]
			_ = RemoveWallBetween(m, current, n)
			stack = append(stack, current)
			current = n
			_ = visited.Put(current, true)
		} else {
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}

	horton.Logger().Debug("maze: backtrack done", "width", width, "height", height)
	return m, nil
}

func unvisited(visited *grid.Grid[bool], c grid.Coord) []grid.Coord {
	var out []grid.Coord
	for _, n := range visited.Neighbors4(c) {
		if v, _ := visited.At(n); !v {
			out = append(out, n)
		}
	}
	return out
}

type primState int

const (
	unseen primState = iota
	frontier
	interior
)

// Prim grows the maze from a random cell, repeatedly joining a random
// frontier cell to a random interior neighbour.
func Prim(width, height int, rng *rand.Rand) (*grid.Grid[Cell], error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	state, _ := grid.New[primState](width, height)

	coords := m.Coordinates()
	start := coords[rng.IntN(len(coords))]
	_ = state.Put(start, interior)

	var front []grid.Coord
	addFrontier := func(c grid.Coord) {
		for _, n := range state.Neighbors4(c) {
			if s, _ := state.At(n); s == unseen {
				_ = state.Put(n, frontier)
				front = append(front, n)
			}
		}
	}
	addFrontier(start)

	for len(front) > 0 {
		i := rng.IntN(len(front))
		cell := front[i]
		front[i] = front[len(front)-1]
		front = front[:len(front)-1]

		var inside []grid.Coord
		for _, n := range state.Neighbors4(cell) {
			if s, _ := state.At(n); s == interior {
				inside = append(inside, n)
			}
		}
		_ = RemoveWallBetween(m, inside[rng.IntN(len(inside))], cell)
		_ = state.Put(cell, interior)
		addFrontier(cell)
	}

	horton.Logger().Debug("maze: prim done", "width", width, "height", height)
	return m, nil
}
