package maze

import "github.com/agentultra/horton/grid"

type Tile int

const (
	Wall Tile = iota
	Floor
)

func (t Tile) Passable() bool {
	return t == Floor
}

func (t Tile) String() string {
	if t == Floor {
		return "."
	}
	return "#"
}

// Tiles converts a cell maze into a (2w+1)×(2h+1) tile grid. Cell (i, j)
// becomes the floor tile (2i+1, 2j+1); open walls become floor tiles
// between neighbouring cells.
func Tiles(m *grid.Grid[Cell]) *grid.Grid[Tile] {
	w, h := m.Dimensions()
	tiles, _ := grid.New(2*w+1, 2*h+1, grid.WithDefault(Wall))

	for c, cell := range m.Items() {
		center := grid.Coord{X: 2*c.X + 1, Y: 2*c.Y + 1}
		_ = tiles.Put(center, Floor)
		for _, dir := range grid.Directions {
			if !cell.Walls.Has(dir) {
				_ = tiles.Put(center.Neighbor(dir), Floor)
			}
		}
	}
	return tiles
}
