package grid

import "iter"

// Mapping is the dictionary-style view of a grid: cells addressed by
// coordinate, with membership and ordered iteration.
type Mapping[T any] interface {
	Get(x, y int) (T, error)
	Set(x, y int, v T) error
	ContainsCoordinate(c Coord) bool
	Items() iter.Seq2[Coord, T]
	Keys() iter.Seq[Coord]
	Values() iter.Seq[T]
	Dimensions() (int, int)
	Coordinates() []Coord
}

var _ Mapping[int] = (*Grid[int])(nil)
