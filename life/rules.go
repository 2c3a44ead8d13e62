package life

import "github.com/agentultra/horton/grid"

const (
	Dead  = 0
	Alive = 1
)

// Neighbours counts the live cells among the eight surrounding c.
func Neighbours(world *grid.Grid[int], c grid.Coord) int {
	n := 0
	for _, nc := range world.Neighbors8(c) {
		if v, _ := world.At(nc); v == Alive {
			n++
		}
	}
	return n
}

// Next applies the B3/S23 rule to a cell with n live neighbours.
func Next(cell, n int) int {
	if cell == Alive {
		if n == 2 || n == 3 {
			return Alive
		}
		return Dead
	}
	if n == 3 {
		return Alive
	}
	return Dead
}

// Step returns a new world advanced by one generation. The input is not
// modified; the result keeps its shape and wrapping.
func Step(world *grid.Grid[int]) *grid.Grid[int] {
	next := world.Clone()
	for c, cell := range world.Items() {
		_ = next.Put(c, Next(cell, Neighbours(world, c)))
	}
	return next
}

func Population(world *grid.Grid[int]) int {
	n := 0
	for v := range world.Values() {
		if v == Alive {
			n++
		}
	}
	return n
}

// AliveCells lists the live coordinates in row-major order.
func AliveCells(world *grid.Grid[int]) []grid.Coord {
	var alive []grid.Coord
	for c, v := range world.Items() {
		if v == Alive {
			alive = append(alive, c)
		}
	}
	return alive
}
