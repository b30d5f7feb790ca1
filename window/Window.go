package window

import (
	"ThePong/core"
	"ThePong/logger"
	"ThePong/render"
	"errors"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"os"
)

// Window adapts core.Game to ebiten's Update/Draw/Layout loop.
type Window struct {
	game   *core.Game
	face   text.Face
	lineHt float64
}

func New(game *core.Game, face *text.GoTextFace) *Window {
	return &Window{game: game, face: face, lineHt: face.Size}
}

// LoadFont reads a TrueType font from path. A missing file is a startup error.
func LoadFont(path string, size float64) (*text.GoTextFace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	defer f.Close()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Run opens the window and blocks until the player closes it.
func Run(game *core.Game, props core.Properties) error {
	face, err := LoadFont(props.FontPath, props.FontSize)
	if err != nil {
		return err
	}
	logger.Log.Info(fmt.Sprintf(logger.FontLoadedMsg, props.FontPath))

	ebiten.SetWindowSize(core.WindowWidth, core.WindowHeight)
	ebiten.SetWindowTitle(props.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	err = ebiten.RunGame(New(game, face))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	events, held := pollInput()
	w.game.Frame(events, held)
	if !w.game.Running() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	cv := &canvas{dst: screen, face: w.face, lineHt: w.lineHt}
	render.Draw(w.game.World, cv, cv)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}
