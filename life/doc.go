// Package life implements Conway's Game of Life on a grid.
//
// A world is a *grid.Grid[int] holding Dead (0) or Alive (1). On a bounded
// grid the cells beyond the edge count as dead; on a torus the edges wrap.
//
//	world, _ := life.Parse(strings.NewReader(life.Patterns["blinker"]))
//	for n, w := range life.Generations(3, world) {
//		fmt.Println(n)
//		grid.Pprint(w)
//	}
package life
