package render

import (
	"errors"

	"github.com/agentultra/horton/grid"
)

// ErrNoDrawFunc is returned when Grid is called without a draw callback.
var ErrNoDrawFunc = errors.New("render: nil draw func")

// DrawFunc paints one cell onto canvas inside the rectangle at (x, y) of
// size w×h.
type DrawFunc[C, T any] func(canvas C, cell T, x, y, w, h float64)

// Source is what the renderer needs from a grid.
type Source[T any] interface {
	Dimensions() (int, int)
	Coordinates() []grid.Coord
	Get(x, y int) (T, error)
}

// Rect is a cell's rectangle on the canvas.
type Rect struct {
	X, Y, W, H float64
}

type Option func(*options)

type options struct {
	padding float64
}

// WithPadding insets every cell by p on each side.
func WithPadding(p float64) Option {
	return func(o *options) {
		o.padding = p
	}
}

// CellRect returns the rectangle of cell c when a gridW×gridH grid is laid
// out over the w×h area at (x, y). Cells are never narrower than one unit.
func CellRect(c grid.Coord, gridW, gridH int, x, y, w, h, padding float64) Rect {
	cellW := max(w/float64(gridW), 1)
	cellH := max(h/float64(gridH), 1)
	return Rect{
		X: x + float64(c.X)*cellW + padding,
		Y: y + float64(c.Y)*cellH + padding,
		W: cellW - 2*padding,
		H: cellH - 2*padding,
	}
}

// Grid lays g out over the w×h area at (x, y) and calls draw once per
// coordinate, in coordinate order.
func Grid[C, T any](canvas C, g Source[T], x, y, w, h float64, draw DrawFunc[C, T], opts ...Option) error {
	if draw == nil {
		return ErrNoDrawFunc
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	gw, gh := g.Dimensions()
	for _, c := range g.Coordinates() {
		cell, err := g.Get(c.X, c.Y)
		if err != nil {
			return err
		}
		r := CellRect(c, gw, gh, x, y, w, h, o.padding)
		draw(canvas, cell, r.X, r.Y, r.W, r.H)
	}
	return nil
}

// Truthy reports whether v differs from its type's zero value.
func Truthy[T comparable](v T) bool {
	var zero T
	return v != zero
}
