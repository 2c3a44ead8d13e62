package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrShapeMismatch indicates a flat slice whose length is not width*height.
	ErrShapeMismatch = errors.New("grid: array dimensions do not match length of array")

	// ErrOutOfBounds indicates a coordinate outside a bounded grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrDimensionMismatch indicates two grids of different sizes were combined.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// OutOfBoundsError names the coordinate a bounded grid rejected.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: (%d, %d) is an invalid co-ordinate for a %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
