package window

import (
	"ThePong/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	from ebiten.Key
	to   core.Key
}{
	{ebiten.KeyW, core.KeyUp1},
	{ebiten.KeyS, core.KeyDown1},
	{ebiten.KeyI, core.KeyUp2},
	{ebiten.KeyK, core.KeyDown2},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeySpace, core.KeySpace},
}

func pollInput() ([]core.Event, core.KeySet) {
	var events []core.Event
	var held core.KeySet

	if ebiten.IsWindowBeingClosed() {
		events = append(events, core.Quit())
	}

	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.from) {
			events = append(events, core.KeyDown(k.to))
		}
		if ebiten.IsKeyPressed(k.from) {
			held = held.With(k.to)
		}
	}
	return events, held
}
