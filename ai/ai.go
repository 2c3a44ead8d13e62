package ai

import (
	"errors"
	"fmt"
	"slices"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/grid"
)

// ErrNoPath indicates the target cannot be reached from the start.
var ErrNoPath = errors.New("ai: no path")

// Passable reports whether a walker may step from one cell to an adjacent
// one.
type Passable func(from, to grid.Coord) bool

// FindPath returns a shortest route from start to target over the four
// neighbours of each cell, both endpoints included. Endpoints are resolved
// through the grid first, so on a torus they may lie outside the extent.
func FindPath[T any](g *grid.Grid[T], start, target grid.Coord, passable Passable) ([]grid.Coord, error) {
	from, err := g.Resolve(start.X, start.Y)
	if err != nil {
		return nil, fmt.Errorf("ai: start: %w", err)
	}
	to, err := g.Resolve(target.X, target.Y)
	if err != nil {
		return nil, fmt.Errorf("ai: target: %w", err)
	}

	prev := map[grid.Coord]grid.Coord{from: from}
	queue := []grid.Coord{from}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return walkBack(prev, from, to), nil
		}
		for _, n := range g.Neighbors4(c) {
			if _, seen := prev[n]; seen {
				continue
			}
			if passable != nil && !passable(c, n) {
				continue
			}
			prev[n] = c
			queue = append(queue, n)
		}
	}

	horton.Logger().Debug("ai: no path", "from", from, "to", to, "explored", len(prev))
	return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, from, to)
}

func walkBack(prev map[grid.Coord]grid.Coord, from, to grid.Coord) []grid.Coord {
	path := []grid.Coord{to}
	for c := to; c != from; {
		c = prev[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}
