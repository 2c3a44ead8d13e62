package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/maze"
	"github.com/agentultra/horton/render"
)

// WallWidth is the thickness, in pixels, of maze walls.
const WallWidth = 2

// FillCell paints the cell's rectangle in AliveColor when the cell is
// truthy and DeadColor otherwise.
func FillCell[T comparable](ops *op.Ops, cell T, x, y, w, h float64) {
	c := DeadColor
	if render.Truthy(cell) {
		c = AliveColor
	}
	drawRect(ops, x, y, w, h, c)
}

// DrawMazeCell paints the walls a maze cell still has.
func DrawMazeCell(ops *op.Ops, cell maze.Cell, x, y, w, h float64) {
	if cell.Walls.Has(grid.Up) {
		drawRect(ops, x, y, w, WallWidth, WallColor)
	}
	if cell.Walls.Has(grid.Right) {
		drawRect(ops, x+w-WallWidth, y, WallWidth, h, WallColor)
	}
	if cell.Walls.Has(grid.Down) {
		drawRect(ops, x, y+h-WallWidth, w, WallWidth, WallColor)
	}
	if cell.Walls.Has(grid.Left) {
		drawRect(ops, x, y, WallWidth, h, WallColor)
	}
}

func drawRect(ops *op.Ops, x, y, width, height float64, c color.NRGBA) {
	r := pixelRect(x, y, width, height)
	if r.Empty() || c.A == 0 {
		return
	}
	paint.FillShape(ops, c, clip.Rect(r).Op())
}

// pixelRect rounds a float rectangle outwards to whole pixels.
func pixelRect(x, y, width, height float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
}
