package maze

import (
	"github.com/agentultra/horton/ai"
	"github.com/agentultra/horton/grid"
)

// Solve returns the route from one cell to another, both included.
func Solve(m *grid.Grid[Cell], from, to grid.Coord) ([]grid.Coord, error) {
	return ai.FindPath(m, from, to, func(a, b grid.Coord) bool {
		return Open(m, a, b)
	})
}

// SolveTiles finds a route across floor tiles.
func SolveTiles(tiles *grid.Grid[Tile], from, to grid.Coord) ([]grid.Coord, error) {
	return ai.FindPath(tiles, from, to, func(_, b grid.Coord) bool {
		t, err := tiles.At(b)
		return err == nil && t.Passable()
	})
}
