package sketch

import (
	"image/color"
	"math"
)

var (
	backgroundColor = color.Gray{Y: 40}
	gridColor       = color.Gray{Y: 100}
	pointColor      = color.White
	guessColor      = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	bestColor       = color.RGBA{R: 200, G: 0, B: 255, A: 255}
	pausedColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	textColor       = color.White
)

// distanceColor shades a connecting segment from cyan (on the line) to red
// (far away).
func distanceColor(d, far float64) color.RGBA {
	ratio := 1.0
	if far > 0 {
		ratio = clamp01(d / far)
	}
	r, g, b := hsvToRgb(190*(1-ratio), 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
