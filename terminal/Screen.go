package terminal

import (
	"ThePong/core"
	"ThePong/logger"
	"ThePong/render"
	"context"
	"fmt"
	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/time/rate"
	"image/color"
	"math"
)

const BlockSymbol = 0x2588 // 實心方塊

type Terminal struct {
	screen  tcell.Screen
	limiter *rate.Limiter
	bg      colorful.Color
	quit    chan struct{}
}

var _ render.Surface = (*Terminal)(nil)
var _ render.Text = (*Terminal)(nil)

func New(screen tcell.Screen, frameRate int) *Terminal {
	return &Terminal{
		screen:  screen,
		limiter: rate.NewLimiter(rate.Limit(frameRate), 1),
		bg:      toColorful(core.BackgroundColor),
		quit:    make(chan struct{}),
	}
}

// Open creates and initialises the real terminal screen.
func Open(frameRate int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	t := New(screen, frameRate)
	if err := t.Init(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(t.blend(core.BackgroundColor)).
		Foreground(tcell.ColorWhite)
	t.screen.SetStyle(defaultStyle)
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Fini() {
	close(t.quit)
	t.screen.Fini()
}

// Run drives the poll, update, render loop until the game stops or ctx is done.
func (t *Terminal) Run(ctx context.Context, g *core.Game) error {
	logger.Log.Info(fmt.Sprintf(logger.FrameLimitMsg, int(t.limiter.Limit())))

	inputChan := t.initUserInput()
	for g.Running() {
		events, held := t.readInput(inputChan)
		g.Frame(events, held)

		render.Draw(g.World, t, t)
		t.screen.Show()

		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) Clear(c color.RGBA) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.blend(c)))
}

func (t *Terminal) FillRect(x, y, w, h float64, c color.RGBA) {
	col0, row0 := t.cell(x, y)
	col1, row1 := t.cellCeil(x+w, y+h)
	if col1 <= col0 {
		col1 = col0 + 1
	}
	if row1 <= row0 {
		row1 = row0 + 1
	}
	t.print(row0, col0, col1-col0, row1-row0, BlockSymbol, t.style(c))
}

func (t *Terminal) DrawLine(x0, y0, x1, y1 float64, c color.RGBA) {
	col0, row0 := t.cell(x0, y0)
	col1, row1 := t.cell(x1, y1)

	symbol := '•'
	switch {
	case col0 == col1:
		symbol = '│'
	case row0 == row1:
		symbol = '─'
	}

	// Bresenham
	dx, dy := abs(col1-col0), -abs(row1-row0)
	sx, sy := sign(col1-col0), sign(row1-row0)
	e := dx + dy
	for {
		t.screen.SetContent(col0, row0, symbol, nil, t.style(c))
		if col0 == col1 && row0 == row1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			col0 += sx
		}
		if e2 <= dx {
			e += dx
			row0 += sy
		}
	}
}

func (t *Terminal) Measure(s string) (float64, float64) {
	cellW, cellH := t.cellSize()
	return float64(runewidth.StringWidth(s)) * cellW, cellH
}

func (t *Terminal) Draw(s string, x, y float64, c color.RGBA) {
	col, row := t.cell(x, y)
	style := t.style(c)
	for _, r := range s {
		t.screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) print(row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			t.screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func (t *Terminal) cellSize() (float64, float64) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return core.WindowWidth, core.WindowHeight
	}
	return float64(core.WindowWidth) / float64(cols), float64(core.WindowHeight) / float64(rows)
}

func (t *Terminal) cell(x, y float64) (int, int) {
	cellW, cellH := t.cellSize()
	return int(math.Floor(x / cellW)), int(math.Floor(y / cellH))
}

func (t *Terminal) cellCeil(x, y float64) (int, int) {
	cellW, cellH := t.cellSize()
	return int(math.Ceil(x / cellW)), int(math.Ceil(y / cellH))
}

func (t *Terminal) style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Background(t.blend(core.BackgroundColor)).
		Foreground(t.blend(c))
}

// blend flattens c onto the background; terminal cells carry no alpha.
func (t *Terminal) blend(c color.RGBA) tcell.Color {
	out := t.bg.BlendRgb(toColorful(c), float64(c.A)/255)
	r, g, b := out.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
