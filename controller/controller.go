// Package controller owns a running Game of Life shared between a ticker
// goroutine and a window.
package controller

import (
	"context"
	"sync"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/life"
)

// Snapshot is a consistent copy of the controller's state.
type Snapshot struct {
	World  *grid.Grid[int]
	Turn   int
	Paused bool

	// Born lists the cells that came alive in the last advance.
	Born []grid.Coord
}

type Controller struct {
	mu     sync.Mutex
	runner *life.Runner
	seed   *grid.Grid[int]
	world  *grid.Grid[int]
	turn   int
	paused bool
	born   []grid.Coord
}

// New returns a running controller over a copy of seed. A nil runner steps
// on one goroutine.
func New(seed *grid.Grid[int], runner *life.Runner) *Controller {
	if runner == nil {
		runner = &life.Runner{}
	}
	return &Controller{
		runner: runner,
		seed:   seed.Clone(),
		world:  seed.Clone(),
	}
}

// Tick advances one generation unless paused and returns the cells born.
func (c *Controller) Tick(ctx context.Context) ([]grid.Coord, error) {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return nil, nil
	}
	return c.advance(ctx)
}

// Step advances one generation even when paused.
func (c *Controller) Step(ctx context.Context) ([]grid.Coord, error) {
	c.mu.Lock()
	return c.advance(ctx)
}

// advance must be called with c.mu held and releases it. The runner's
// OnGeneration hook runs after the unlock so it may call back into c.
func (c *Controller) advance(ctx context.Context) ([]grid.Coord, error) {
	next, err := c.runner.Step(ctx, c.world)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	var born []grid.Coord
	for at, v := range next.Items() {
		if v != life.Alive {
			continue
		}
		if old, _ := c.world.At(at); old != life.Alive {
			born = append(born, at)
		}
	}

	c.world = next
	c.turn++
	c.born = born
	turn, hook := c.turn, c.runner.OnGeneration
	c.mu.Unlock()

	if hook != nil {
		hook(turn, next.Clone())
	}
	return born, nil
}

// Toggle flips the cell at at and reports its new state.
func (c *Controller) Toggle(at grid.Coord) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.world.At(at)
	if err != nil {
		return 0, err
	}
	if v == life.Alive {
		v = life.Dead
	} else {
		v = life.Alive
	}
	if err := c.world.Put(at, v); err != nil {
		return 0, err
	}
	horton.Logger().Debug("controller: toggled", "cell", at, "alive", v == life.Alive)
	return v, nil
}

// TogglePause flips the paused state and returns the new one.
func (c *Controller) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	horton.Logger().Info("controller: pause toggled", "paused", c.paused, "turn", c.turn)
	return c.paused
}

// Reset restores the seed world and turn zero. The paused state is kept.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.world = c.seed.Clone()
	c.turn = 0
	c.born = nil
	horton.Logger().Info("controller: reset")
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		World:  c.world.Clone(),
		Turn:   c.turn,
		Paused: c.paused,
		Born:   append([]grid.Coord(nil), c.born...),
	}
}
