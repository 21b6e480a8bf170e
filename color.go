package turtls

import (
	"image/color"
	"math"
)

// RGB is a 0-255 color with float64 channels so that fractional channel
// increments accumulate instead of being lost to rounding. Channels are
// rounded only when the color is handed to a surface or an encoder.
type RGB struct {
	R, G, B float64
}

// C is shorthand for building a nullable palette color.
func C(r, g, b int) *RGB {
	return &RGB{R: float64(r), G: float64(g), B: float64(b)}
}

func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp(c.R))),
		G: uint8(math.Round(clamp(c.G))),
		B: uint8(math.Round(clamp(c.B))),
		A: 255,
	}
}

// conform returns a copy with channels clamped to [0,255] and rounded,
// or nil for nil.
func conform(c *RGB) *RGB {
	if c == nil {
		return nil
	}
	return &RGB{
		R: math.Round(clamp(c.R)),
		G: math.Round(clamp(c.G)),
		B: math.Round(clamp(c.B)),
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(v, 255))
}

// Palette holds the ten colors selectable by the digit instructions 0-9.
// A nil slot means drawing with that color selected is hidden.
type Palette [10]*RGB

// defaultPalette backs any palette slot not otherwise supplied:
// white, gray, red, orange, yellow, green, cyan, blue, purple, magenta.
var defaultPalette = Palette{
	C(255, 255, 255),
	C(128, 128, 128),
	C(255, 0, 0),
	C(255, 128, 0),
	C(255, 255, 0),
	C(0, 255, 0),
	C(0, 255, 255),
	C(0, 0, 255),
	C(128, 0, 255),
	C(255, 0, 255),
}

// MakePalette builds the run palette. When colors is nil, line and fill
// become slots 0 and 1 (nil hides lines or fills) and the remaining
// slots come from the default palette. Otherwise the first ten entries
// of colors are used, padded with defaults beyond its length, and line
// and fill are ignored.
func MakePalette(line, fill *RGB, colors []*RGB) Palette {
	var p Palette
	if colors == nil {
		p[0] = conform(line)
		p[1] = conform(fill)
		copy(p[2:], defaultPalette[2:])
		return p
	}
	n := len(colors)
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = conform(colors[i])
	}
	copy(p[n:], defaultPalette[n:])
	return p
}
