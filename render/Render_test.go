package render

import (
	"ThePong/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"testing"
)

type rect struct {
	x, y, w, h float64
	c          color.RGBA
}

type text struct {
	s    string
	x, y float64
	c    color.RGBA
}

type recorder struct {
	cleared []color.RGBA
	rects   []rect
	lines   int
	texts   []text
}

func (r *recorder) Clear(c color.RGBA) { r.cleared = append(r.cleared, c) }

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recorder) DrawLine(x0, y0, x1, y1 float64, c color.RGBA) { r.lines++ }

// Each glyph is 10x20.
func (r *recorder) Measure(s string) (float64, float64) { return float64(len(s) * 10), 20 }

func (r *recorder) Draw(s string, x, y float64, c color.RGBA) {
	r.texts = append(r.texts, text{s, x, y, c})
}

func TestDrawMenu(t *testing.T) {
	w := core.NewWorldWithSeed(0)
	r := &recorder{}

	Draw(w, r, r)

	require.Len(t, r.texts, 1)
	assert.Equal(t, []color.RGBA{core.BackgroundColor}, r.cleared)
	assert.Equal(t, MenuText, r.texts[0].s)
	assert.Equal(t, 540-float64(len(MenuText)*10)/2, r.texts[0].x)
	assert.Equal(t, 350.0, r.texts[0].y)
	assert.Empty(t, r.rects)
}

func TestDrawPauseAndGameOver(t *testing.T) {
	w := core.NewWorldWithSeed(0)

	w.State = core.StatePause
	r := &recorder{}
	Draw(w, r, r)
	require.Len(t, r.texts, 1)
	assert.Equal(t, PauseText, r.texts[0].s)

	w.State = core.StateGameOver
	r = &recorder{}
	Draw(w, r, r)
	require.Len(t, r.texts, 1)
	assert.Equal(t, GameOverText, r.texts[0].s)
	assert.Equal(t, 360.0, r.texts[0].y)
}

func TestDrawInGame(t *testing.T) {
	w := core.NewWorldWithSeed(0)
	w.State = core.StateInGame
	w.Score = core.Score{Player1: 3, Player2: 11}
	before := *w
	r := &recorder{}

	Draw(w, r, r)

	require.Len(t, r.texts, 1)
	assert.Equal(t, "3   11", r.texts[0].s)
	assert.Equal(t, core.PaddleColor, r.texts[0].c)

	require.Len(t, r.rects, 5)
	assert.Equal(t, rect{10, 235, 30, 250, core.PaddleColor}, r.rects[0])
	assert.Equal(t, rect{1040, 235, 30, 250, core.PaddleColor}, r.rects[1])
	assert.Equal(t, rect{525, 345, 30, 30, core.BallColor}, r.rects[2])
	assert.Equal(t, rect{0, 0, 1080, WallThickness, core.PaddleColor}, r.rects[3])
	assert.Equal(t, rect{0, 710, 1080, WallThickness, core.PaddleColor}, r.rects[4])
	assert.Equal(t, core.WindowHeight/CenterLineGap, r.lines)

	assert.Equal(t, before.Ball, w.Ball)
	assert.Equal(t, before.Score, w.Score)
	assert.Equal(t, before.State, w.State)
}

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "0   0", ScoreLine(core.Score{}))
	assert.Equal(t, "12   7", ScoreLine(core.Score{Player1: 12, Player2: 7}))
}
