package life

import (
	"iter"

	"github.com/agentultra/horton/grid"
)

// Generations yields num successive generations starting from a copy of
// seed, numbered from zero. The seed itself is never modified.
func Generations(num int, seed *grid.Grid[int]) iter.Seq2[int, *grid.Grid[int]] {
	return func(yield func(int, *grid.Grid[int]) bool) {
		world := seed.Clone()
		for gen := 0; gen < num; gen++ {
			if !yield(gen, world) {
				return
			}
			world = Step(world)
		}
	}
}
