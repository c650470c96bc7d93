package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	InitialSlope = 4.0
	SlopeStep    = 0.01

	// FinishThreshold ends the sweep once the guess drops below it.
	FinishThreshold = 0.001

	DistanceSentinel    = 9999999.0
	InitialMinimumSlope = 1.0
)

// Event reports what a Step changed. Several flags may be set at once.
type Event uint8

const (
	EventBest Event = 1 << iota
	EventFinished
)

func (e Event) Has(f Event) bool { return e&f != 0 }

// State is the mutable part of the sweep.
type State struct {
	GuessSlope      float64
	MinimumDistance float64
	MinimumSlope    float64
	Finished        bool
}

// Evaluation is the outcome of scoring one candidate slope.
type Evaluation struct {
	Slope float64
	Cost  float64
	// Nearest[i] is the sampled position on the line closest to point i.
	Nearest []Point
}

// cost scores the line y = slope*x against points. For every point it samples
// the line at x = 0, step, 2*step, ... below width and keeps the closest
// sample in nearest and its distance in dists. It returns the sum of dists.
func cost(points []Point, slope, width, step float64, nearest []Point, dists []float64) float64 {
	if step <= 0 {
		step = 1
	}
	for i, p := range points {
		best := math.Hypot(p.X, p.Y)
		bestX := 0.0
		for x := step; x < width; x += step {
			d := math.Hypot(x-p.X, x*slope-p.Y)
			if d < best {
				best = d
				bestX = x
			}
		}
		dists[i] = best
		nearest[i] = Point{X: bestX, Y: bestX * slope}
	}
	return floats.Sum(dists)
}

// Search sweeps the guess slope down from InitialSlope one step per unpaused
// frame and remembers the slope with the smallest cost.
type Search struct {
	points []Point
	width  float64
	step   float64

	state State
	last  Evaluation
	dists []float64
}

// NewSearch prepares a sweep over points with samples every step pixels
// across width.
func NewSearch(points []Point, width, step float64) *Search {
	s := &Search{
		points: points,
		width:  width,
		step:   step,
		dists:  make([]float64, len(points)),
	}
	s.Reset()
	return s
}

// Reset puts the sweep back to a fresh running start.
func (s *Search) Reset() {
	s.state = State{
		GuessSlope:      InitialSlope,
		MinimumDistance: DistanceSentinel,
		MinimumSlope:    InitialMinimumSlope,
	}
	s.last = Evaluation{}
}

func (s *Search) State() State { return s.state }

func (s *Search) Finished() bool { return s.state.Finished }

// Last returns the most recent evaluation. Its Nearest slice is reused by the
// next Step.
func (s *Search) Last() Evaluation { return s.last }

// Step scores the current guess and, unless paused, moves the guess down by
// SlopeStep. A finished search does nothing.
func (s *Search) Step(paused bool) Event {
	if s.state.Finished {
		return 0
	}
	if s.state.GuessSlope < FinishThreshold {
		return s.finish()
	}

	if len(s.last.Nearest) != len(s.points) {
		s.last.Nearest = make([]Point, len(s.points))
	}
	guess := s.state.GuessSlope
	s.last.Slope = guess
	s.last.Cost = cost(s.points, guess, s.width, s.step, s.last.Nearest, s.dists)

	var ev Event
	if s.last.Cost < s.state.MinimumDistance {
		s.state.MinimumDistance = s.last.Cost
		s.state.MinimumSlope = guess
		ev |= EventBest
	}

	if !paused {
		s.state.GuessSlope -= SlopeStep
		if s.state.GuessSlope < FinishThreshold {
			ev |= s.finish()
		}
	}
	return ev
}

func (s *Search) finish() Event {
	s.state.GuessSlope = 0
	s.state.Finished = true
	return EventFinished
}
