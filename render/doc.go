// Package render lays grid cells out on a canvas.
//
// Grid computes one rectangle per cell, the area divided evenly by the
// grid's dimensions and inset by an optional padding, and hands each cell
// to a DrawFunc. The canvas type is whatever the DrawFunc draws on; this
// package ships callbacks for a github.com/gogpu/gg context, and package ui
// ships them for gioui.
//
//	dc := render.NewCanvas(300, 300)
//	err := render.Grid(dc, world, 0, 0, 300, 300, render.FillCell[int], render.WithPadding(2))
package render
