package sketch

import "github.com/iburimskiy/slope-visualization/internal/config"

// Playback is the user-controlled part of the animation.
type Playback struct {
	Paused    bool
	FrameRate int
}

// NewPlayback starts paused at rate, clamped to the allowed range.
func NewPlayback(rate int) Playback {
	return Playback{Paused: true, FrameRate: config.ClampFrameRate(rate)}
}

func (p *Playback) TogglePause() { p.Paused = !p.Paused }

func (p *Playback) Slower() { p.FrameRate = config.ClampFrameRate(p.FrameRate - config.FrameRateStep) }

func (p *Playback) Faster() { p.FrameRate = config.ClampFrameRate(p.FrameRate + config.FrameRateStep) }
