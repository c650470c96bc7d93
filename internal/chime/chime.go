// Package chime makes the slope sweep audible: a short blip whose pitch
// follows the slope each time a better fit turns up, and a two-note chord
// when the sweep ends.
package chime

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	amplitude = 0.4
	baseFreq  = 220.0

	// minimum gap between two new-best blips
	cooldown = 120 * time.Millisecond
)

// Player plays tones through the default audio device. The device is opened
// on first use; if that fails the player goes quiet for good.
type Player struct {
	logger *log.Logger
	play   func(beep.Streamer) error

	initDone bool
	disabled bool
	lastBest time.Time
}

func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{logger: logger}
	p.play = p.speakerPlay
	return p
}

// Best plays a blip one octave up for each unit of slope.
func (p *Player) Best(slope, _ float64) {
	if time.Since(p.lastBest) < cooldown {
		return
	}
	p.lastBest = time.Now()
	p.ring(Tone(SampleRate, slopeFreq(slope), 60*time.Millisecond))
}

func (p *Player) Finished(minimumSlope float64) {
	f := slopeFreq(minimumSlope)
	p.ring(beep.Seq(
		Tone(SampleRate, f, 120*time.Millisecond),
		Tone(SampleRate, f*1.5, 240*time.Millisecond),
	))
}

func (p *Player) ring(s beep.Streamer) {
	if p.disabled {
		return
	}
	if err := p.play(s); err != nil {
		p.logger.Printf("audio disabled: %v", err)
		p.disabled = true
	}
}

func (p *Player) speakerPlay(s beep.Streamer) error {
	if !p.initDone {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
			return err
		}
		p.initDone = true
	}
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: -1})
	return nil
}

func slopeFreq(slope float64) float64 {
	return baseFreq * math.Pow(2, math.Max(slope, 0))
}

// Tone is a sine wave of the given frequency and length that fades out
// linearly so it ends without a click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			env := 1 - float64(pos)/float64(n)
			v := amplitude * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return i, true
	})
}
