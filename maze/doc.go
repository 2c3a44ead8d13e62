// Package maze generates perfect mazes on grids of walled cells.
//
// Every Cell starts with four walls. A generator knocks down walls between
// neighbouring cells until every cell is reachable from every other by
// exactly one route. Tiles converts a maze into a grid of Wall and Floor
// tiles twice the size plus one, and Solve finds the route between two
// cells.
package maze
