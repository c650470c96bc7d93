package config

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	DefaultPointScatter    = 120
	DefaultCyclesPerSecond = 60
	DefaultSlope           = 1.1
	DefaultNumberOfPoints  = 100
	DefaultWindowSize      = 900

	// Frame rate bounds for the up/down keys
	MinFrameRate  = 2
	MaxFrameRate  = 100
	FrameRateStep = 2

	Title = "Visual Linear R"
	Usage = "Format is:\n[point scatter] [frame rate] [slope] [number of points] [window size]"
)

// ErrMalformedArgument is wrapped by every error Parse returns.
var ErrMalformedArgument = errors.New("malformed argument")

// Config holds the run parameters. It is built once at startup and never
// changed afterwards.
type Config struct {
	PointScatter    int
	CyclesPerSecond int
	Slope           float64
	NumberOfPoints  int
	WindowSize      int

	// Static switches with no command-line surface.
	DrawGrid bool
	Sound    bool
	Notify   bool
}

func Default() Config {
	return Config{
		PointScatter:    DefaultPointScatter,
		CyclesPerSecond: DefaultCyclesPerSecond,
		Slope:           DefaultSlope,
		NumberOfPoints:  DefaultNumberOfPoints,
		WindowSize:      DefaultWindowSize,
		DrawGrid:        false,
		Sound:           true,
		Notify:          true,
	}
}

// Scale is the horizontal pixel spacing between consecutive points. It never
// drops below one so that sampling along the axis always advances.
func (c Config) Scale() int {
	if c.NumberOfPoints <= 0 {
		return 1
	}
	s := c.WindowSize / c.NumberOfPoints
	if s < 1 {
		return 1
	}
	return s
}

// FrameRate is the starting frame rate, clamped to [MinFrameRate, MaxFrameRate].
func (c Config) FrameRate() int {
	return ClampFrameRate(c.CyclesPerSecond)
}

func ClampFrameRate(r int) int {
	return min(max(r, MinFrameRate), MaxFrameRate)
}

// Parse reads the positional arguments
//
//	[point scatter] [frame rate] [slope] [number of points] [window size]
//
// Trailing arguments may be omitted. If any supplied argument is malformed,
// every value is discarded and Default is returned together with the error.
func Parse(args []string) (Config, error) {
	cfg := Default()

	ints := []struct {
		pos      int
		name     string
		dst      *int
		positive bool
	}{
		{0, "point scatter", &cfg.PointScatter, false},
		{1, "frame rate", &cfg.CyclesPerSecond, false},
		{3, "number of points", &cfg.NumberOfPoints, true},
		{4, "window size", &cfg.WindowSize, true},
	}
	for _, a := range ints {
		if a.pos >= len(args) {
			continue
		}
		v, err := strconv.Atoi(args[a.pos])
		if err != nil {
			return Default(), fmt.Errorf("%w: %s %q: %v", ErrMalformedArgument, a.name, args[a.pos], err)
		}
		if a.positive && v <= 0 {
			return Default(), fmt.Errorf("%w: %s must be positive, got %d", ErrMalformedArgument, a.name, v)
		}
		*a.dst = v
	}

	if len(args) > 2 {
		v, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return Default(), fmt.Errorf("%w: slope %q: %v", ErrMalformedArgument, args[2], err)
		}
		cfg.Slope = v
	}

	return cfg, nil
}
