// Package colormap turns normalised field values into display colours.
package colormap

import (
	"image/color"
	"math"

	"github.com/mazznoer/colorgrad"
)

// Map maps a value in [0, 1] to a colour. Values outside are clamped and
// NaN maps to the middle of the range.
type Map func(t float64) color.RGBA

// New returns the named map: "viridis", or the scientific ramp for anything
// else.
func New(name string) Map {
	if name == "viridis" {
		return Viridis(256)
	}
	return Sci
}

var sciStops = [...]color.RGBA{
	{R: 0, G: 0, B: 255, A: 0xff},
	{R: 0, G: 255, B: 255, A: 0xff},
	{R: 0, G: 255, B: 0, A: 0xff},
	{R: 255, G: 255, B: 0, A: 0xff},
	{R: 255, G: 0, B: 0, A: 0xff},
}

// Sci is the blue, cyan, green, yellow, red ramp, linear between equally
// spaced stops.
func Sci(t float64) color.RGBA {
	pos := clamp(t) * float64(len(sciStops)-1)
	i := min(int(pos), len(sciStops)-2)
	frac := pos - float64(i)
	a, b := sciStops[i], sciStops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + frac*(float64(y)-float64(x))))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}

// Viridis samples the viridis gradient into an n-entry lookup table.
func Viridis(n int) Map {
	table := make([]color.RGBA, 0, n)
	for _, c := range colorgrad.Viridis().Colors(uint(n)) {
		table = append(table, color.RGBAModel.Convert(c).(color.RGBA))
	}
	return func(t float64) color.RGBA {
		return table[int(math.Round(clamp(t)*float64(n-1)))]
	}
}

func clamp(t float64) float64 {
	if math.IsNaN(t) {
		return 0.5
	}
	return min(max(t, 0), 1)
}
