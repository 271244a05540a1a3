// Package palette maps board cell values to display colours and derives the
// highlight and shadow tones used for bevelled blocks.
package palette

import (
	"image/color"
	"math"

	"github.com/plus3/blockfall/game"
)

// Background is the colour of an empty cell.
var Background = color.RGBA{0x00, 0x00, 0x00, 0xff}

var colors = [...]color.RGBA{
	Background,
	{0xff, 0x00, 0x00, 0xff}, // I
	{0x00, 0xff, 0x00, 0xff}, // J
	{0x00, 0x00, 0xff, 0xff}, // L
	{0xff, 0xff, 0x00, 0xff}, // O
	{0xff, 0x00, 0xff, 0xff}, // S
	{0x00, 0xff, 0xff, 0xff}, // Z
	{0xff, 0xa5, 0x00, 0xff}, // T
}

// Color returns the fill colour for a cell value. Unknown values map to the
// background.
func Color(c game.Cell) color.RGBA {
	if int(c) >= len(colors) {
		return Background
	}
	return colors[c]
}

// Lighten raises each channel by percent of full scale, clamping at 255.
func Lighten(c color.RGBA, percent float64) color.RGBA {
	return shift(c, amount(percent))
}

// Darken lowers each channel by percent of full scale, clamping at 0.
func Darken(c color.RGBA, percent float64) color.RGBA {
	return shift(c, -amount(percent))
}

func amount(percent float64) int {
	return int(math.Round(2.55 * percent))
}

func shift(c color.RGBA, amt int) color.RGBA {
	return color.RGBA{
		R: clamp(int(c.R) + amt),
		G: clamp(int(c.G) + amt),
		B: clamp(int(c.B) + amt),
		A: c.A,
	}
}

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
