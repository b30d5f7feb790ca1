package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image/color"
)

// canvas draws onto the frame's screen image. Colours are straight alpha.
type canvas struct {
	dst    *ebiten.Image
	face   text.Face
	lineHt float64
}

func (c *canvas) Clear(col color.RGBA) {
	c.dst.Fill(straight(col))
}

func (c *canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), straight(col), false)
}

func (c *canvas) DrawLine(x0, y0, x1, y1 float64, col color.RGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, straight(col), false)
}

func (c *canvas) Measure(s string) (float64, float64) {
	return text.Measure(s, c.face, c.lineHt)
}

func (c *canvas) Draw(s string, x, y float64, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(straight(col))
	text.Draw(c.dst, s, c.face, op)
}

func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
