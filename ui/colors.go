package ui

import "image/color"

var ccBackgroundColor = color.NRGBA{R: 45, G: 109, B: 162, A: 255}
var emptyColor = color.NRGBA{R: 0, G: 0, B: 0, A: 0}
var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var darkRedColor = color.NRGBA{R: 127, G: 0, B: 0, A: 255}

var (
	AliveColor = whiteColor
	DeadColor  = emptyColor
	WallColor  = whiteColor
)

// withAlpha scales c's alpha by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}
