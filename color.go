package splines

import (
	"image/color"
	"math"
)

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

// NRGBA converts the colour to 8 bits per channel, clamping out of range
// components.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
