package maze

import (
	"fmt"

	"github.com/agentultra/horton/grid"
)

// Walls is a set of directions in which a cell is closed.
type Walls uint8

const AllWalls = Walls(1<<grid.Up | 1<<grid.Down | 1<<grid.Left | 1<<grid.Right)

func (w Walls) Has(dir grid.Direction) bool {
	return w&(1<<dir) != 0
}

func (w Walls) Without(dir grid.Direction) Walls {
	return w &^ (1 << dir)
}

type Cell struct {
	Walls Walls
}

func NewCell() Cell {
	return Cell{Walls: AllWalls}
}

func (c Cell) String() string {
	s := []byte("....")
	for i, dir := range grid.Directions {
		if c.Walls.Has(dir) {
			s[i] = "NESW"[i]
		}
	}
	return string(s)
}

// New returns a width×height maze with every wall standing.
func New(width, height int) (*grid.Grid[Cell], error) {
	return grid.New(width, height, grid.WithDefault(NewCell()))
}

// RemoveWallBetween opens the passage between two adjacent cells.
func RemoveWallBetween(m *grid.Grid[Cell], a, b grid.Coord) error {
	dir, ok := grid.DirectionTo(a, b)
	if !ok {
		return fmt.Errorf("maze: %v and %v are not adjacent", a, b)
	}
	ca, err := m.At(a)
	if err != nil {
		return err
	}
	cb, err := m.At(b)
	if err != nil {
		return err
	}
	ca.Walls = ca.Walls.Without(dir)
	cb.Walls = cb.Walls.Without(dir.Opposite())
	_ = m.Put(a, ca)
	_ = m.Put(b, cb)
	return nil
}

// Open reports whether one can step from a to the adjacent b.
func Open(m *grid.Grid[Cell], a, b grid.Coord) bool {
	dir, ok := grid.DirectionTo(a, b)
	if !ok {
		return false
	}
	ca, err := m.At(a)
	if err != nil {
		return false
	}
	return !ca.Walls.Has(dir)
}
