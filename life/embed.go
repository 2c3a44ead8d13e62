package life

import (
	"fmt"

	"github.com/agentultra/horton/grid"
)

// Embed returns a width×height world with pattern centred in it. A
// dimension of zero keeps the pattern's own.
func Embed(pattern *grid.Grid[int], width, height int, opts ...grid.Option[int]) (*grid.Grid[int], error) {
	pw, ph := pattern.Dimensions()
	if width == 0 {
		width = pw
	}
	if height == 0 {
		height = ph
	}
	if width < pw || height < ph {
		return nil, fmt.Errorf("%w: %dx%d pattern does not fit in %dx%d", grid.ErrShapeMismatch, pw, ph, width, height)
	}

	world, err := grid.New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	offset := grid.Coord{X: (width - pw) / 2, Y: (height - ph) / 2}
	for c, v := range pattern.Items() {
		if err := world.Put(c.Add(offset), v); err != nil {
			return nil, err
		}
	}
	return world, nil
}
