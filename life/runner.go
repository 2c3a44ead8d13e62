package life

import (
	"context"
	"sync"
	"time"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/grid"
)

// Runner advances worlds, splitting each generation's rows across worker
// goroutines. The zero value steps on a single goroutine.
type Runner struct {
	// Threads is the number of workers per generation. Values below one
	// mean one; values above the world height are capped to it.
	Threads int

	Metrics *Metrics

	// OnGeneration, if set, is called after every completed turn with the
	// number of completed turns and the new world.
	OnGeneration func(turn int, world *grid.Grid[int])
}

func (r *Runner) threads(height int) int {
	n := r.Threads
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	return n
}

// Step returns world advanced by one generation. The result is identical
// to Step(world) whatever the thread count.
func (r *Runner) Step(ctx context.Context, world *grid.Grid[int]) (*grid.Grid[int], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	next := world.Clone()
	height := world.Height()
	threads := r.threads(height)

	if threads == 1 {
		stepRows(world, next, 0, height)
	} else {
		var wg sync.WaitGroup
		rowsPerThread := height / threads
		for i := 0; i < threads; i++ {
			startY := i * rowsPerThread
			endY := startY + rowsPerThread
			if i == threads-1 {
				endY = height
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				stepRows(world, next, startY, endY)
			}()
		}
		wg.Wait()
	}

	pop := Population(next)
	took := time.Since(start)
	r.Metrics.observe(pop, took)
	horton.Logger().Debug("life: step", "population", pop, "threads", threads, "took", took)

	return next, nil
}

// stepRows writes rows [startY, endY) of next from world. Workers own
// disjoint rows of next and only read world.
func stepRows(world, next *grid.Grid[int], startY, endY int) {
	for y := startY; y < endY; y++ {
		for x := 0; x < world.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			cell, _ := world.At(c)
			_ = next.Put(c, Next(cell, Neighbours(world, c)))
		}
	}
}

// Run advances a copy of seed by turns generations and returns the final
// world. It stops early with ctx's error if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, seed *grid.Grid[int], turns int) (*grid.Grid[int], error) {
	log := horton.Logger()
	w, h := seed.Dimensions()
	log.Info("life: run started", "width", w, "height", h, "turns", turns, "torus", seed.Wraps())

	world := seed.Clone()
	for turn := 0; turn < turns; turn++ {
		next, err := r.Step(ctx, world)
		if err != nil {
			log.Warn("life: run stopped", "completed", turn, "err", err)
			return world, err
		}
		world = next
		if r.OnGeneration != nil {
			r.OnGeneration(turn+1, world)
		}
	}

	log.Info("life: run finished", "turns", turns, "population", Population(world))
	return world, nil
}
