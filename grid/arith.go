package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any type supporting element-wise + and -.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns the element-wise sum of a and b. The result takes a's
// resolver and default.
func Add[T Number](a, b *Grid[T]) (*Grid[T], error) {
	return combine(a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b.
func Sub[T Number](a, b *Grid[T]) (*Grid[T], error) {
	return combine(a, b, func(x, y T) T { return x - y })
}

func combine[T Number](a, b *Grid[T], op func(T, T) T) (*Grid[T], error) {
	if a.width != b.width || a.height != b.height {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, a.width, a.height, b.width, b.height)
	}
	out := a.Clone()
	for i := range out.cells {
		out.cells[i] = op(a.cells[i], b.cells[i])
	}
	return out, nil
}
