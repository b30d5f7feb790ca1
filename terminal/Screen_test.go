package terminal

import (
	"ThePong/core"
	"context"
	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

const cols, rows = 108, 36 // 10x20 pixels per cell

func newSimTerminal(t *testing.T, frameRate int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := New(sim, frameRate)
	require.NoError(t, term.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(term.Fini)
	return term, sim
}

func runeAt(sim tcell.SimulationScreen, col, row int) rune {
	cells, width, _ := sim.GetContents()
	cell := cells[row*width+col]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestFillRectCoversCells(t *testing.T) {
	term, sim := newSimTerminal(t, 60)

	term.Clear(core.BackgroundColor)
	term.FillRect(10, 235, 30, 250, core.PaddleColor)
	sim.Show()

	// x 10..40 -> cols 1..3, y 235..485 -> rows 11..24
	assert.Equal(t, rune(BlockSymbol), runeAt(sim, 1, 11))
	assert.Equal(t, rune(BlockSymbol), runeAt(sim, 3, 24))
	assert.Equal(t, ' ', runeAt(sim, 0, 11))
	assert.Equal(t, ' ', runeAt(sim, 4, 11))
	assert.Equal(t, ' ', runeAt(sim, 1, 10))
	assert.Equal(t, ' ', runeAt(sim, 1, 25))
}

func TestTinyRectStillVisible(t *testing.T) {
	term, sim := newSimTerminal(t, 60)

	term.FillRect(501, 301, 1, 1, core.BallColor)
	sim.Show()

	assert.Equal(t, rune(BlockSymbol), runeAt(sim, 50, 15))
}

func TestDrawVerticalLine(t *testing.T) {
	term, sim := newSimTerminal(t, 60)

	term.DrawLine(540, 0, 540, 100, core.PaddleColor)
	sim.Show()

	for row := 0; row <= 5; row++ {
		assert.Equal(t, '│', runeAt(sim, 54, row))
	}
	assert.Equal(t, ' ', runeAt(sim, 54, 6))
}

func TestMeasureAndDrawText(t *testing.T) {
	term, sim := newSimTerminal(t, 60)

	w, h := term.Measure("3   11")
	assert.Equal(t, 60.0, w)
	assert.Equal(t, 20.0, h)

	term.Draw("Hi", 100, 40, core.TextColor)
	sim.Show()
	assert.Equal(t, 'H', runeAt(sim, 10, 2))
	assert.Equal(t, 'i', runeAt(sim, 11, 2))
}

func TestBlendFlattensAlpha(t *testing.T) {
	term, _ := newSimTerminal(t, 60)

	r, g, b := term.blend(core.BackgroundColor).RGB()
	assert.Equal(t, [3]int32{5, 196, 107}, [3]int32{r, g, b})

	// 100/255 of the paddle colour over the green background
	r, g, b = term.blend(core.PaddleColor).RGB()
	assert.InDelta(t, 10, r, 1)
	assert.InDelta(t, 125, g, 1)
	assert.InDelta(t, 90, b, 1)
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev  *tcell.EventKey
		key core.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.KeyUp1},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), core.KeyDown1},
		{tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), core.KeyUp2},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), core.KeyDown2},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KeySpace},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.KeyEscape},
	}
	for _, c := range cases {
		key, ok := translateKey(c.ev)
		require.True(t, ok, c.ev.Name())
		assert.Equal(t, c.key, key, c.ev.Name())
	}

	_, ok := translateKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
}

func TestReadInputCollectsFrame(t *testing.T) {
	term, _ := newSimTerminal(t, 60)
	inputChan := make(chan tcell.Event, inputBuffer)
	inputChan <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	inputChan <- tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)
	inputChan <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	events, held := term.readInput(inputChan)

	assert.Equal(t, []core.Event{core.KeyDown(core.KeyUp1), core.KeyDown(core.KeyDown2), core.Quit()}, events)
	assert.True(t, held.Has(core.KeyUp1))
	assert.True(t, held.Has(core.KeyDown2))
	assert.False(t, held.Has(core.KeySpace))

	events, held = term.readInput(inputChan)
	assert.Empty(t, events)
	assert.Equal(t, core.KeySet(0), held)
}

func TestRunUntilQuit(t *testing.T) {
	term, sim := newSimTerminal(t, 500)
	game := core.NewGame(core.NewWorldWithSeed(5))

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, term.Run(ctx, game))
	assert.False(t, game.Running())
	assert.Equal(t, core.StateInGame, game.World.State)
}
