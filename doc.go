// Package horton is a toolkit for building grid-based simulations.
//
// The core container lives in package grid: a two-dimensional,
// coordinate-indexed store with either bounded or toroidal coordinate
// resolution. The other packages build on it:
//
//   - life: Conway's Game of Life over a grid
//   - maze: maze generation and solving on grids of walled cells
//   - ai: path finding over any grid
//   - render: layout of grid cells onto a canvas, with a gg PNG backend
//   - ui: the same layout over gioui operations, and an interactive viewer
//   - controller: a mutex-guarded running simulation shared by a viewer
//
// This package only carries the logger shared by all of them.
package horton
