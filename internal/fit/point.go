// Package fit holds the math behind the visualization: a scattered point
// cloud around a line through the origin and a brute-force sweep over
// candidate slopes that looks for the smallest total distance.
package fit

import "math/rand"

// Point is a position in world space. Points never change after Generate.
type Point struct {
	X, Y float64
}

// Generate scatters n points around the line y = slope*x. Point i sits at
// (i*scale, i*scale*slope) shifted by independent uniform offsets in
// [-scatter, scatter] on each axis.
func Generate(n int, scatter, scale, slope float64, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}
	points := make([]Point, n)
	for i := range points {
		x := float64(i) * scale
		points[i] = Point{
			X: x + offset(rng, scatter),
			Y: x*slope + offset(rng, scatter),
		}
	}
	return points
}

func offset(rng *rand.Rand, scatter float64) float64 {
	if scatter == 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * scatter
}

// OffScreen counts the points lying past the right or bottom edge of a
// w by h window.
func OffScreen(points []Point, w, h float64) int {
	n := 0
	for _, p := range points {
		if p.X > w || p.Y > h {
			n++
		}
	}
	return n
}
