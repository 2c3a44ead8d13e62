package grid

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sync"
)

// Grid is a width×height store of T addressed by (x, y). Indices start at
// zero; storage is a flat row-major slice.
//
// A Grid is not safe for concurrent mutation. Concurrent reads are safe.
type Grid[T any] struct {
	width   int
	height  int
	cells   []T
	def     T
	factory func() T
	copier  func(T) T
	resolve Resolver
	wraps   bool

	coordsOnce sync.Once
	coords     []Coord
}

// MaxCells is the largest width*height a grid may have.
const MaxCells = math.MaxInt32

// New returns a grid with every cell holding the default value.
func New[T any](width, height int, opts ...Option[T]) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if height > MaxCells/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid[T]{
		width:   width,
		height:  height,
		cells:   make([]T, width*height),
		def:     o.def,
		factory: o.factory,
		copier:  o.copier,
		resolve: o.resolve,
		wraps:   o.wraps,
	}
	g.fill()
	return g, nil
}

// NewTorus returns a grid whose edges are connected: every integer
// coordinate is valid and is folded onto the grid modulo its dimensions.
func NewTorus[T any](width, height int, opts ...Option[T]) (*Grid[T], error) {
	return New(width, height, append(slices.Clip(opts), WithWrap[T]())...)
}

// FromSlice builds a grid assigning values[i] to (i % width, i / width).
// The slice is copied.
func FromSlice[T any](width, height int, values []T, opts ...Option[T]) (*Grid[T], error) {
	g, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrShapeMismatch, len(values), width, height)
	}
	copy(g.cells, values)
	return g, nil
}

func (g *Grid[T]) fill() {
	for i := range g.cells {
		if g.factory != nil {
			g.cells[i] = g.factory()
		} else {
			g.cells[i] = g.def
		}
	}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

func (g *Grid[T]) Dimensions() (int, int) {
	return g.width, g.height
}

// Len is the number of cells, width*height.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Wraps reports whether the grid was built as a torus, with NewTorus or
// WithWrap.
func (g *Grid[T]) Wraps() bool {
	return g.wraps
}

// Default returns the value of cells that were never set.
func (g *Grid[T]) Default() T {
	if g.factory != nil {
		return g.factory()
	}
	return g.def
}

// Resolve maps (x, y) onto a cell using the grid's resolver. On a bounded
// grid it fails with an *OutOfBoundsError.
func (g *Grid[T]) Resolve(x, y int) (Coord, error) {
	c, ok := g.resolve(x, y, g.width, g.height)
	if !ok {
		return Coord{}, &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return c, nil
}

func (g *Grid[T]) InBounds(x, y int) bool {
	_, ok := g.resolve(x, y, g.width, g.height)
	return ok
}

func (g *Grid[T]) ContainsCoordinate(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.width + c.X
}

func (g *Grid[T]) Get(x, y int) (T, error) {
	c, err := g.Resolve(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[g.index(c)], nil
}

func (g *Grid[T]) Set(x, y int, v T) error {
	c, err := g.Resolve(x, y)
	if err != nil {
		return err
	}
	g.cells[g.index(c)] = v
	return nil
}

func (g *Grid[T]) At(c Coord) (T, error) {
	return g.Get(c.X, c.Y)
}

func (g *Grid[T]) Put(c Coord, v T) error {
	return g.Set(c.X, c.Y, v)
}

// Lookup returns the value at (x, y), or fallback if the coordinate does
// not resolve.
func (g *Grid[T]) Lookup(x, y int, fallback T) T {
	v, err := g.Get(x, y)
	if err != nil {
		return fallback
	}
	return v
}

// Coordinates returns every coordinate in row-major order, starting at
// (0, 0). The list is computed once; callers get their own copy.
func (g *Grid[T]) Coordinates() []Coord {
	g.coordsOnce.Do(func() {
		g.coords = make([]Coord, 0, len(g.cells))
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				g.coords = append(g.coords, Coord{X: x, Y: y})
			}
		}
	})
	return slices.Clone(g.coords)
}

// Items yields (coordinate, value) pairs in Coordinates order. Each call
// starts a new iteration.
func (g *Grid[T]) Items() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i := range g.cells {
			if !yield(Coord{X: i % g.width, Y: i / g.width}, g.cells[i]) {
				return
			}
		}
	}
}

func (g *Grid[T]) Keys() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for i := range g.cells {
			if !yield(Coord{X: i % g.width, Y: i / g.width}) {
				return
			}
		}
	}
}

func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range g.cells {
			if !yield(g.cells[i]) {
				return
			}
		}
	}
}

// Cells returns a copy of the storage in Coordinates order.
func (g *Grid[T]) Cells() []T {
	return slices.Clone(g.cells)
}

// Clone returns a grid with the same shape, resolver, default and cell
// values. Cells are passed through the WithCopy function when one was
// given and copied by assignment otherwise.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := slices.Clone(g.cells)
	if g.copier != nil {
		for i := range cells {
			cells[i] = g.copier(cells[i])
		}
	}
	return &Grid[T]{
		width:   g.width,
		height:  g.height,
		cells:   cells,
		def:     g.def,
		factory: g.factory,
		copier:  g.copier,
		resolve: g.resolve,
		wraps:   g.wraps,
	}
}

// Neighbors4 returns the resolved coordinates above, right of, below and
// left of c. Coordinates that do not resolve are skipped.
func (g *Grid[T]) Neighbors4(c Coord) []Coord {
	return g.neighbors(c, offsets4[:])
}

// Neighbors8 is Neighbors4 plus the diagonals. On a small torus the same
// cell may appear more than once.
func (g *Grid[T]) Neighbors8(c Coord) []Coord {
	return g.neighbors(c, offsets8[:])
}

func (g *Grid[T]) neighbors(c Coord, offsets []Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, off := range offsets {
		n := c.Add(off)
		if r, ok := g.resolve(n.X, n.Y, g.width, g.height); ok {
			out = append(out, r)
		}
	}
	return out
}

// Equal reports whether a and b have the same dimensions and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	return slices.Equal(a.cells, b.cells)
}

// ContainsValue reports whether any cell of g holds v.
func ContainsValue[T comparable](g *Grid[T], v T) bool {
	return slices.Contains(g.cells, v)
}
