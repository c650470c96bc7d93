package sketch

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/slope-visualization/internal/config"
	"github.com/iburimskiy/slope-visualization/internal/fit"
)

// Fitter scatters points around the configured line and animates the slope
// sweep over them.
type Fitter struct {
	cfg       config.Config
	logger    *log.Logger
	rng       *rand.Rand
	listeners []Listener

	surface   Surface
	points    []fit.Point
	search    *fit.Search
	playback  Playback
	reference float64

	// world size; the window is square
	width, height float64
}

type Option func(*Fitter)

func WithLogger(l *log.Logger) Option {
	return func(f *Fitter) { f.logger = l }
}

func WithRand(rng *rand.Rand) Option {
	return func(f *Fitter) { f.rng = rng }
}

func WithListener(l Listener) Option {
	return func(f *Fitter) {
		if l != nil {
			f.listeners = append(f.listeners, l)
		}
	}
}

func New(cfg config.Config, opts ...Option) *Fitter {
	f := &Fitter{
		cfg:      cfg,
		logger:   log.New(io.Discard, "", 0),
		playback: NewPlayback(cfg.FrameRate()),
		width:    float64(cfg.WindowSize),
		height:   float64(cfg.WindowSize),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return f
}

var _ Sketch = (*Fitter)(nil)

// Setup generates the point cloud and applies the window settings.
func (f *Fitter) Setup(s Surface) error {
	if s == nil {
		return errors.New("sketch: nil surface")
	}
	f.surface = s
	s.SetTitle(config.Title)
	s.SetFrameRate(f.playback.FrameRate)

	scale := f.cfg.Scale()
	f.points = fit.Generate(f.cfg.NumberOfPoints, float64(f.cfg.PointScatter), float64(scale), f.cfg.Slope, f.rng)
	f.search = fit.NewSearch(f.points, f.width, float64(scale))
	f.reference = fit.ReferenceSlope(f.points)

	f.logger.Printf("points off screen: %d", fit.OffScreen(f.points, f.width, f.height))
	f.logger.Printf("scale: %d", scale)
	f.logger.Printf("least squares slope: %.4f", f.reference)
	f.logger.Println("Finished Setup...")
	return nil
}

// Frame advances the search by one tick.
func (f *Fitter) Frame() error {
	if f.search == nil {
		return errors.New("sketch: Frame called before Setup")
	}
	ev := f.search.Step(f.playback.Paused)
	st := f.search.State()
	if ev.Has(fit.EventBest) {
		for _, l := range f.listeners {
			l.Best(st.MinimumSlope, st.MinimumDistance)
		}
	}
	if ev.Has(fit.EventFinished) {
		f.logger.Println("Finished drawing...")
		f.logger.Printf("Minimum slope: %.2f (total distance %.1f)", st.MinimumSlope, st.MinimumDistance)
		for _, l := range f.listeners {
			l.Finished(st.MinimumSlope)
		}
	}
	return nil
}

// KeyPressed handles one key press. Every press re-applies the frame rate.
func (f *Fitter) KeyPressed(k Key) error {
	switch k {
	case KeySpace:
		f.playback.TogglePause()
	case KeyDown:
		f.playback.Slower()
		f.logger.Printf("frame rate: %d", f.playback.FrameRate)
	case KeyUp:
		f.playback.Faster()
		f.logger.Printf("frame rate: %d", f.playback.FrameRate)
	case KeyReset:
		if f.search != nil {
			f.search.Reset()
			f.logger.Println("search reset")
		}
	case KeyQuit:
		return ErrQuit
	}
	if f.surface != nil {
		f.surface.SetFrameRate(f.playback.FrameRate)
	}
	return nil
}

func (f *Fitter) Playback() Playback { return f.playback }

func (f *Fitter) Points() []fit.Point { return f.points }

// State returns the search state, or the zero State before Setup.
func (f *Fitter) State() fit.State {
	if f.search == nil {
		return fit.State{}
	}
	return f.search.State()
}
