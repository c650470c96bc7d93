package sketch

import (
	"fmt"
	"image/color"
	"math"
)

// view turns world coordinates into screen coordinates: a quarter turn
// counter-clockwise followed by a shift of one window height, so the world
// x axis runs up the left edge and the world origin sits bottom-left.
type view struct {
	h float64
}

func (v view) apply(x, y float64) (float64, float64) {
	return y, v.h - x
}

// Draw renders one frame. It only reads state.
func (f *Fitter) Draw(c Canvas) {
	c.Background(backgroundColor)
	if f.search == nil {
		return
	}

	v := view{h: f.height}
	if f.cfg.DrawGrid {
		f.drawGrid(c, v)
	}
	f.drawBorders(c, v)
	f.drawPoints(c, v)
	if !f.search.Finished() {
		f.drawGuess(c, v)
	}
	f.drawBest(c, v)
	f.drawUI(c)
}

func (f *Fitter) line(c Canvas, v view, x1, y1, x2, y2, weight float64, col color.Color) {
	sx1, sy1 := v.apply(x1, y1)
	sx2, sy2 := v.apply(x2, y2)
	c.Line(sx1, sy1, sx2, sy2, weight, col)
}

func (f *Fitter) drawGrid(c Canvas, v view) {
	s := float64(f.cfg.Scale())
	for x := 0.0; x < f.width; x += s {
		for y := 0.0; y < f.height; y += s {
			// the far corner lands top-left after the turn
			sx, sy := v.apply(x+s, y)
			c.Rect(sx, sy, s, s, 0.75, gridColor)
		}
	}
}

func (f *Fitter) drawBorders(c Canvas, v view) {
	f.line(c, v, 0, 0, f.width, 0, 4, gridColor)
	f.line(c, v, 1, 0, 1, f.height, 4, gridColor)
}

func (f *Fitter) drawPoints(c Canvas, v view) {
	for _, p := range f.points {
		sx, sy := v.apply(p.X, p.Y)
		c.Dot(sx, sy, 4, pointColor)
	}
}

func (f *Fitter) drawGuess(c Canvas, v view) {
	ev := f.search.Last()
	if len(ev.Nearest) != len(f.points) {
		return
	}
	f.line(c, v, 0, 0, f.width, f.height*ev.Slope, 4, guessColor)

	far := math.Max(float64(f.cfg.PointScatter), 1) * math.Sqrt2
	for i, p := range f.points {
		n := ev.Nearest[i]
		d := math.Hypot(p.X-n.X, p.Y-n.Y)
		f.line(c, v, p.X, p.Y, n.X, n.Y, 0.5, distanceColor(d, far))
	}
}

func (f *Fitter) drawBest(c Canvas, v view) {
	f.line(c, v, 0, 0, f.width, f.height*f.search.State().MinimumSlope, 2, bestColor)
}

func (f *Fitter) drawUI(c Canvas) {
	st := f.search.State()
	w, h := f.width, f.height

	fps := 0
	if f.surface != nil {
		fps = int(f.surface.FrameRate())
	}
	c.Text(fmt.Sprintf("FPS: %d", fps), w-20, 20, AlignRight, textColor)

	minColor := color.Color(textColor)
	if !st.Finished {
		c.Text(fmt.Sprintf("Slope: %.2f", st.GuessSlope), w-20, h-45, AlignRight, textColor)
	} else {
		c.Text(fmt.Sprintf("Initial slope: %g", f.cfg.Slope), w-20, h-45, AlignRight, textColor)
		minColor = guessColor
	}
	c.Text(fmt.Sprintf("Min: %.2f", st.MinimumSlope), w-20, h-20, AlignRight, minColor)
	c.Text(fmt.Sprintf("LSQ: %.2f", f.reference), w-20, h-70, AlignRight, textColor)

	if f.playback.Paused {
		c.Line(0, 1, w, 1, 2, pausedColor)
		c.Text("PAUSED    Press Space to Unpause", w/2, 20, AlignCenter, pausedColor)
	}
}
