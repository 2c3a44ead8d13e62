package ui

import (
	"context"
	"image"
	"sync/atomic"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/controller"
	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/render"
	"github.com/agentultra/horton/utils"
)

// Viewer shows a controller's world in a window and forwards input to it.
type Viewer struct {
	cfg Config
	ctl *controller.Controller

	// lastAdvance is the UnixNano time of the last generation, used to
	// fade in newborn cells.
	lastAdvance atomic.Int64
}

func NewViewer(ctl *controller.Controller, cfg Config) *Viewer {
	return &Viewer{cfg: cfg.withDefaults(), ctl: ctl}
}

// Run opens the window and blocks until it is closed or ctx is done. The
// caller must run app.Main on the main goroutine.
func (v *Viewer) Run(ctx context.Context) error {
	closed := make(chan struct{})
	defer close(closed)

	w, h := v.ctl.Snapshot().World.Dimensions()
	window := new(app.Window)
	window.Option(
		app.Title(v.cfg.Title),
		app.Size(unit.Dp(w)*v.cfg.CellSize, unit.Dp(h)*v.cfg.CellSize),
	)

	go v.tick(ctx, window, closed)
	go func() {
		select {
		case <-ctx.Done():
			window.Perform(system.ActionClose)
		case <-closed:
		}
	}()

	return v.loop(ctx, window)
}

func (v *Viewer) tick(ctx context.Context, window *app.Window, closed <-chan struct{}) {
	ticker := time.NewTicker(v.cfg.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.C:
			born, err := v.ctl.Tick(ctx)
			if err != nil {
				horton.Logger().Warn("ui: tick failed", "err", err)
				return
			}
			if born != nil {
				v.lastAdvance.Store(time.Now().UnixNano())
			}
			window.Invalidate()
		}
	}
}

func (v *Viewer) loop(ctx context.Context, window *app.Window) error {
	var ops op.Ops
	tag := new(bool)

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			horton.Logger().Info("ui: window closed")
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			snap := v.ctl.Snapshot()
			cellPx := gtx.Dp(v.cfg.CellSize)

			v.handleEvents(ctx, gtx, tag, window, snap.World, cellPx)
			// Events may have changed the world.
			snap = v.ctl.Snapshot()

			paint.Fill(gtx.Ops, stateOf(snap.Paused).BackgroundColor())

			gw, gh := snap.World.Dimensions()
			area := clip.Rect(image.Rect(0, 0, gw*cellPx, gh*cellPx)).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			area.Pop()

			fade := v.fade(time.Now())
			if err := RenderLife(gtx.Ops, snap, float64(cellPx), v.cfg.Padding, fade); err != nil {
				return err
			}
			if fade < 1 {
				window.Invalidate()
			}

			e.Frame(gtx.Ops)
		}
	}
}

func (v *Viewer) handleEvents(ctx context.Context, gtx layout.Context, tag *bool, window *app.Window, world *grid.Grid[int], cellPx int) {
	log := horton.Logger()
	for {
		ev, ok := gtx.Event(
			pointer.Filter{Target: tag, Kinds: pointer.Press},
			key.Filter{Name: key.NameSpace},
			key.Filter{Name: "N"},
			key.Filter{Name: "R"},
			key.Filter{Name: "Q"},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			return
		}

		switch e := ev.(type) {
		case pointer.Event:
			if e.Kind != pointer.Press {
				continue
			}
			if c, ok := CellAt(e.Position, cellPx, world); ok {
				if _, err := v.ctl.Toggle(c); err != nil {
					log.Warn("ui: toggle failed", "cell", c, "err", err)
				}
			}
		case key.Event:
			if e.State != key.Press {
				continue
			}
			switch e.Name {
			case key.NameSpace:
				v.ctl.TogglePause()
			case "N":
				if _, err := v.ctl.Step(ctx); err != nil {
					log.Warn("ui: step failed", "err", err)
				} else {
					v.lastAdvance.Store(time.Now().UnixNano())
				}
			case "R":
				v.ctl.Reset()
			case "Q", key.NameEscape:
				window.Perform(system.ActionClose)
			}
		}
	}
}

// fade returns how far, from 0 to 1, newborn cells have faded in at now.
func (v *Viewer) fade(now time.Time) float64 {
	last := v.lastAdvance.Load()
	if last == 0 {
		return 1
	}
	since := float64(now.UnixNano() - last)
	return utils.Lerp(0, 1, 0, float64(v.cfg.Tick/2), since)
}

// CellAt maps a position in pixels to the grid cell under it.
func CellAt(pos f32.Point, cellPx int, world *grid.Grid[int]) (grid.Coord, bool) {
	if cellPx <= 0 || pos.X < 0 || pos.Y < 0 {
		return grid.Coord{}, false
	}
	x, y := int(pos.X)/cellPx, int(pos.Y)/cellPx
	if !world.InBounds(x, y) {
		return grid.Coord{}, false
	}
	return grid.Coord{X: x, Y: y}, true
}

// RenderLife draws a snapshot's world with cells of cellPx pixels. Cells
// in snap.Born are drawn with their alpha scaled by fade.
func RenderLife(ops *op.Ops, snap controller.Snapshot, cellPx, padding, fade float64) error {
	born := make(map[grid.Coord]bool, len(snap.Born))
	for _, c := range snap.Born {
		born[c] = true
	}

	gw, gh := snap.World.Dimensions()
	i := 0
	coords := snap.World.Coordinates()
	draw := func(ops *op.Ops, cell int, x, y, w, h float64) {
		c := coords[i]
		i++
		if born[c] && fade < 1 {
			drawRect(ops, x, y, w, h, withAlpha(AliveColor, fade))
			return
		}
		FillCell(ops, cell, x, y, w, h)
	}
	return render.Grid(ops, snap.World, 0, 0, cellPx*float64(gw), cellPx*float64(gh), draw, render.WithPadding(padding))
}
