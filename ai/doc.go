// Package ai finds routes across grids.
//
// FindPath runs a breadth-first search, so the route it returns is one of
// the shortest. What counts as a legal step is up to the caller: a maze
// checks its walls, a tile map checks for floor.
package ai
