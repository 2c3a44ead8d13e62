package ui

import (
	"time"

	"gioui.org/unit"
)

type Config struct {
	// CellSize is the side of one grid cell.
	CellSize unit.Dp
	// Padding is the inset, in pixels, on every side of a cell.
	Padding float64
	// Tick is the interval between generations.
	Tick  time.Duration
	Title string
}

func DefaultConfig() Config {
	return Config{
		CellSize: unit.Dp(20),
		Padding:  1,
		Tick:     200 * time.Millisecond,
		Title:    "horton",
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.Tick <= 0 {
		c.Tick = d.Tick
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	return c
}
