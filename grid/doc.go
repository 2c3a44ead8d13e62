// Package grid provides a two-dimensional data structure indexed by (x, y)
// coordinates.
//
// A Grid has a fixed width and height; indices begin at zero. How a
// requested coordinate maps onto a cell is decided by a Resolver chosen at
// construction time:
//
//   - Bounded (the default) rejects coordinates outside the grid with an
//     *OutOfBoundsError.
//   - Wrapped (NewTorus) connects opposite edges, so every integer pair is
//     valid and (x, y) reads the same cell as (x mod width, y mod height).
//
// Both kinds share storage, iteration order (row-major, y outer) and the
// pretty printer:
//
//	g, _ := grid.FromSlice(3, 3, []int{1, 0, 1, 1, 1, 1, 1, 0, 1})
//	grid.Pprint(g)
//	// 1 0 1
//	// 1 1 1
//	// 1 0 1
package grid
