package render

import (
	"io"

	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/maze"
	"github.com/gogpu/gg"
)

// WallWidth is the stroke width of maze walls.
const WallWidth = 2

var (
	Background = gg.White
	Foreground = gg.Black
)

// NewCanvas returns a w×h gg context cleared to Background.
func NewCanvas(w, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(Background)
	return dc
}

// FillCell paints the cell's rectangle in Foreground when the cell is
// truthy and in Background otherwise.
func FillCell[T comparable](dc *gg.Context, cell T, x, y, w, h float64) {
	if Truthy(cell) {
		dc.SetColor(Foreground.Color())
	} else {
		dc.SetColor(Background.Color())
	}
	dc.DrawRectangle(x, y, w, h)
	_ = dc.Fill()
}

// DrawMazeCell strokes the walls a maze cell still has.
func DrawMazeCell(dc *gg.Context, cell maze.Cell, x, y, w, h float64) {
	dc.SetColor(Foreground.Color())
	dc.SetLineWidth(WallWidth)
	if cell.Walls.Has(grid.Up) {
		dc.DrawLine(x, y, x+w, y)
	}
	if cell.Walls.Has(grid.Right) {
		dc.DrawLine(x+w, y, x+w, y+h)
	}
	if cell.Walls.Has(grid.Down) {
		dc.DrawLine(x, y+h, x+w, y+h)
	}
	if cell.Walls.Has(grid.Left) {
		dc.DrawLine(x, y, x, y+h)
	}
	_ = dc.Stroke()
}

// PNG renders g onto a fresh w×h canvas with draw and writes it to out.
func PNG[T any](out io.Writer, g Source[T], w, h int, draw DrawFunc[*gg.Context, T], opts ...Option) error {
	dc := NewCanvas(w, h)
	defer dc.Close()
	if err := Grid(dc, g, 0, 0, float64(w), float64(h), draw, opts...); err != nil {
		return err
	}
	return dc.EncodePNG(out)
}
