package grid

// Resolver maps a requested coordinate onto a cell of a width×height grid.
// It reports false when the coordinate names no cell.
type Resolver func(x, y, width, height int) (Coord, bool)

// Bounded accepts only coordinates inside [0,width) × [0,height).
func Bounded(x, y, width, height int) (Coord, bool) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}

// Wrapped folds any coordinate back onto the grid, joining opposite edges.
func Wrapped(x, y, width, height int) (Coord, bool) {
	return Coord{X: mod(x, width), Y: mod(y, height)}, true
}

// mod returns a non-negative remainder for positive n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
