package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/slope-visualization/internal/sketch"
	"golang.org/x/image/font/basicfont"
)

const textScale = 1.5

// canvas draws onto the screen image handed to Draw.
type canvas struct {
	screen *ebiten.Image
	face   *text.GoXFace
}

func newCanvas() *canvas {
	return &canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *canvas) Background(col color.Color) {
	c.screen.Fill(col)
}

func (c *canvas) Line(x1, y1, x2, y2, weight float64, col color.Color) {
	vector.StrokeLine(c.screen, float32(x1), float32(y1), float32(x2), float32(y2), float32(weight), col, true)
}

func (c *canvas) Dot(x, y, weight float64, col color.Color) {
	vector.DrawFilledCircle(c.screen, float32(x), float32(y), float32(weight/2), col, true)
}

func (c *canvas) Rect(x, y, w, h, weight float64, col color.Color) {
	vector.StrokeRect(c.screen, float32(x), float32(y), float32(w), float32(h), float32(weight), col, false)
}

func (c *canvas) Text(s string, x, y float64, align sketch.Align, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	// y is the baseline; text.Draw wants the top of the line
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent*textScale)
	op.ColorScale.ScaleWithColor(col)
	switch align {
	case sketch.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case sketch.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(c.screen, s, c.face, op)
}
