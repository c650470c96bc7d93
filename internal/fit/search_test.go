package fit_test

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/slope-visualization/internal/fit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPoints() []fit.Point {
	return fit.Generate(4, 0, 225, 0, rand.New(rand.NewSource(1)))
}

// The first evaluation records the sampled nearest positions of the
// starting guess.
func TestSearch_LastNearest(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)
	s.Step(true)

	last := s.Last()
	assert.Equal(t, fit.InitialSlope, last.Slope)
	assert.Equal(t, 225.0+450+675, last.Cost, "every point is closest to the origin at slope 4")
	assert.Equal(t, []fit.Point{{0, 0}, {0, 0}, {0, 0}, {0, 0}}, last.Nearest)
}

func TestSearch_FreshState(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)
	assert.Equal(t, fit.State{
		GuessSlope:      fit.InitialSlope,
		MinimumDistance: fit.DistanceSentinel,
		MinimumSlope:    fit.InitialMinimumSlope,
	}, s.State())
	assert.False(t, s.Finished())
}

func TestSearch_StepDecrements(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)
	for i := 0; i < 10; i++ {
		before := s.State().GuessSlope
		s.Step(false)
		assert.InDelta(t, before-fit.SlopeStep, s.State().GuessSlope, 1e-9)
	}
}

func TestSearch_PausedDoesNotDecrement(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)
	ev := s.Step(true)
	assert.True(t, ev.Has(fit.EventBest), "first evaluation beats the sentinel")
	assert.Equal(t, fit.InitialSlope, s.State().GuessSlope)

	ev = s.Step(true)
	assert.False(t, ev.Has(fit.EventBest), "same cost is not strictly smaller")
	assert.Equal(t, fit.InitialSlope, s.State().GuessSlope)
	assert.Equal(t, fit.InitialSlope, s.Last().Slope)
}

func TestSearch_MinimumNeverIncreases(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := fit.NewSearch(fit.Generate(100, 120, 9, 1.1, rng), 900, 9)

	prev := s.State().MinimumDistance
	for !s.Finished() {
		ev := s.Step(false)
		cur := s.State().MinimumDistance
		assert.LessOrEqual(t, cur, prev)
		if ev.Has(fit.EventBest) {
			assert.Less(t, cur, prev)
			assert.Equal(t, s.Last().Slope, s.State().MinimumSlope)
		} else {
			assert.Equal(t, prev, cur)
		}
		prev = cur
	}
}

func TestSearch_FinishedIsIdempotent(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)

	finishedEvents := 0
	steps := 0
	for !s.Finished() {
		if s.Step(false).Has(fit.EventFinished) {
			finishedEvents++
		}
		steps++
		require.Less(t, steps, 1000)
	}
	assert.Equal(t, 1, finishedEvents)
	assert.Equal(t, 400, steps)

	final := s.State()
	last := s.Last()
	assert.Zero(t, final.GuessSlope)

	for i := 0; i < 5; i++ {
		assert.Zero(t, s.Step(false))
		assert.Zero(t, s.Step(true))
	}
	assert.Equal(t, final, s.State())
	assert.Equal(t, last.Slope, s.Last().Slope)
}

func TestSearch_ResetRoundTrip(t *testing.T) {
	points := flatPoints()
	s := fit.NewSearch(points, 900, 225)
	for i := 0; i < 1000; i++ {
		s.Step(i%3 == 0)
	}
	s.Reset()

	fresh := fit.NewSearch(points, 900, 225)
	assert.Equal(t, fresh.State(), s.State())

	ev := s.Step(false)
	assert.True(t, ev.Has(fit.EventBest))
	assert.Equal(t, fresh.Step(false), ev)
	assert.Equal(t, fresh.State(), s.State())
}

// Flat points and no scatter: the zero-slope line costs nothing, so the sweep
// ends on the last evaluated step above zero.
func TestSearch_ConvergesOnFlatLine(t *testing.T) {
	s := fit.NewSearch(flatPoints(), 900, 225)
	for !s.Finished() {
		s.Step(false)
	}
	assert.InDelta(t, 0, s.State().MinimumSlope, fit.SlopeStep+1e-9)
	assert.Less(t, s.State().MinimumDistance, fit.DistanceSentinel)
}

func TestEvent_Has(t *testing.T) {
	ev := fit.EventBest | fit.EventFinished
	assert.True(t, ev.Has(fit.EventBest))
	assert.True(t, ev.Has(fit.EventFinished))
	assert.False(t, fit.Event(0).Has(fit.EventBest))
}
