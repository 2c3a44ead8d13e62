package ui

import (
	"fmt"
	"image/color"
)

type RunState int

const (
	Running RunState = iota
	Paused
)

func stateOf(paused bool) RunState {
	if paused {
		return Paused
	}
	return Running
}

func (s RunState) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// BackgroundColor is the window colour shown behind the grid in state s.
func (s RunState) BackgroundColor() color.NRGBA {
	if s == Paused {
		return darkRedColor
	}
	return ccBackgroundColor
}
