package grid

import "fmt"

// Coord identifies a cell by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Neighbor returns the coordinate one step from c in dir. The result is not
// resolved against any grid.
func (c Coord) Neighbor(dir Direction) Coord {
	return c.Add(dir.Offset())
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
