package config_test

import (
	"testing"

	"github.com/iburimskiy/slope-visualization/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgumentsKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_AllArguments(t *testing.T) {
	cfg, err := config.Parse([]string{"50", "30", "0.75", "40", "800"})
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.PointScatter)
	assert.Equal(t, 30, cfg.CyclesPerSecond)
	assert.InDelta(t, 0.75, cfg.Slope, 1e-9)
	assert.Equal(t, 40, cfg.NumberOfPoints)
	assert.Equal(t, 800, cfg.WindowSize)
	assert.Equal(t, 20, cfg.Scale())
}

func TestParse_TrailingArgumentsOptional(t *testing.T) {
	cfg, err := config.Parse([]string{"10", "24"})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PointScatter)
	assert.Equal(t, 24, cfg.CyclesPerSecond)
	assert.Equal(t, config.DefaultSlope, cfg.Slope)
	assert.Equal(t, config.DefaultNumberOfPoints, cfg.NumberOfPoints)
	assert.Equal(t, config.DefaultWindowSize, cfg.WindowSize)
}

// A single bad value discards every argument, including the valid ones.
func TestParse_MalformedArgumentRevertsEverything(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad frame rate", []string{"50", "fast"}},
		{"bad slope", []string{"50", "30", "steep"}},
		{"bad point count", []string{"50", "30", "0.5", "many"}},
		{"zero point count", []string{"50", "30", "0.5", "0"}},
		{"negative window", []string{"50", "30", "0.5", "10", "-900"}},
		{"bad scatter", []string{"1.5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Parse(tc.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrMalformedArgument)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestConfig_Scale(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 9, cfg.Scale(), "900 / 100")

	cfg.NumberOfPoints = 2000
	assert.Equal(t, 1, cfg.Scale(), "more points than pixels floors at one")

	cfg.NumberOfPoints = 0
	assert.Equal(t, 1, cfg.Scale())
}

func TestConfig_FrameRate(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{nil, 60},
		{[]string{"120", "0"}, config.MinFrameRate},
		{[]string{"120", "500"}, config.MaxFrameRate},
		{[]string{"120", "37"}, 37},
	}
	for _, tc := range tests {
		cfg, err := config.Parse(tc.args)
		require.NoError(t, err)
		assert.Equal(t, tc.want, cfg.FrameRate(), "args %v", tc.args)
	}
}
