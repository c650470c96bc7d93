// Package game hosts a sketch in an ebiten window.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/slope-visualization/internal/config"
	"github.com/iburimskiy/slope-visualization/internal/sketch"
)

var keymap = []struct {
	key    ebiten.Key
	sketch sketch.Key
}{
	{ebiten.KeySpace, sketch.KeySpace},
	{ebiten.KeyArrowDown, sketch.KeyDown},
	{ebiten.KeyArrowUp, sketch.KeyUp},
	{ebiten.KeyR, sketch.KeyReset},
	{ebiten.KeyEscape, sketch.KeyQuit},
	{ebiten.KeyQ, sketch.KeyQuit},
}

type Game struct {
	sketch sketch.Sketch
	canvas *canvas

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New(cfg config.Config, s sketch.Sketch) *Game {
	return &Game{
		sketch:  s,
		canvas:  newCanvas(),
		width:   cfg.WindowSize,
		height:  cfg.WindowSize,
		prevKey: map[ebiten.Key]bool{},
	}
}

// Run opens a square window, sets the sketch up and blocks until the window
// closes.
func Run(cfg config.Config, s sketch.Sketch) error {
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)

	g := New(cfg, s)
	if err := s.Setup(surface{}); err != nil {
		return err
	}
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	for _, m := range keymap {
		if !justPressed(m.key) {
			continue
		}
		if err := g.sketch.KeyPressed(m.sketch); err != nil {
			if errors.Is(err, sketch.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	return g.sketch.Frame()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.screen = screen
	g.sketch.Draw(g.canvas)
	g.canvas.screen = nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// surface drives the ebiten scheduler. Update runs once per tick, so the TPS
// is the frame rate of the animation.
type surface struct{}

func (surface) SetTitle(title string) { ebiten.SetWindowTitle(title) }

func (surface) SetFrameRate(fps int) { ebiten.SetTPS(fps) }

func (surface) FrameRate() float64 { return ebiten.ActualTPS() }
