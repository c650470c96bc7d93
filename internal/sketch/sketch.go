// Package sketch is the visualization itself, written against small
// interfaces so that any window library can host it.
package sketch

import (
	"errors"
	"image/color"
)

// ErrQuit is returned by KeyPressed when the user asked to close the window.
var ErrQuit = errors.New("quit requested")

type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyDown
	KeyUp
	KeyReset
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyReset:
		return "reset"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas receives drawing calls in screen coordinates. Text is positioned by
// its baseline.
type Canvas interface {
	Background(c color.Color)
	Line(x1, y1, x2, y2, weight float64, c color.Color)
	Dot(x, y, weight float64, c color.Color)
	Rect(x, y, w, h, weight float64, c color.Color)
	Text(s string, x, y float64, align Align, c color.Color)
}

// Surface is the window hosting a Sketch.
type Surface interface {
	SetTitle(title string)
	// SetFrameRate sets the target number of frames per second.
	SetFrameRate(fps int)
	// FrameRate reports the measured frames per second.
	FrameRate() float64
}

// Sketch is driven by a Surface: Setup once, then Frame and Draw every frame,
// and KeyPressed for each key press in between.
type Sketch interface {
	Setup(s Surface) error
	Frame() error
	Draw(c Canvas)
	KeyPressed(k Key) error
}

// Listener is told about search progress.
type Listener interface {
	Best(slope, distance float64)
	Finished(minimumSlope float64)
}
