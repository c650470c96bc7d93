package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ReferenceSlope is the ordinary least-squares slope of a line forced through
// the origin. It minimizes squared vertical error, so it is close to but not
// the same as what the sweep minimizes. Returns 0 when it is undefined.
func ReferenceSlope(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	_, beta := stat.LinearRegression(xs, ys, nil, true)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0
	}
	return beta
}
