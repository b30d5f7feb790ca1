package render

import (
	"ThePong/core"
	"fmt"
	"image/color"
)

const MenuText = "Press Space to Start"
const PauseText = "Press Space to Resume"
const GameOverText = "Game Over"

const WallThickness = 10
const CenterLineDash = 10
const CenterLineGap = 20

// Surface is the drawable area owned by a display backend. Coordinates are window pixels.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	DrawLine(x0, y0, x1, y1 float64, c color.RGBA)
}

type Text interface {
	Measure(s string) (width, height float64)
	Draw(s string, x, y float64, c color.RGBA)
}

func Draw(world *core.World, surface Surface, text Text) {
	surface.Clear(core.BackgroundColor)

	switch world.State {
	case core.StateMenu:
		drawCentered(text, MenuText, core.TextColor)

	case core.StatePause:
		drawCentered(text, PauseText, core.TextColor)

	case core.StateInGame:
		drawCentered(text, ScoreLine(world.Score), core.PaddleColor)

		drawEntity(surface, &world.Paddle1)
		drawEntity(surface, &world.Paddle2)
		drawEntity(surface, &world.Ball)

		drawCenterLine(surface)
		drawWalls(surface)

	case core.StateGameOver:
		w, _ := text.Measure(GameOverText)
		text.Draw(GameOverText, core.WindowWidth/2-w/2, core.WindowHeight/2, core.TextColor)
	}
}

func ScoreLine(score core.Score) string {
	return fmt.Sprintf("%d   %d", score.Player1, score.Player2)
}

func drawCentered(text Text, s string, c color.RGBA) {
	w, h := text.Measure(s)
	text.Draw(s, core.WindowWidth/2-w/2, core.WindowHeight/2-h/2, c)
}

func drawEntity(surface Surface, e *core.Entity) {
	surface.FillRect(e.Position.X, e.Position.Y, e.Dimensions.X, e.Dimensions.Y, e.Color)
}

//中線
func drawCenterLine(surface Surface) {
	x := float64(core.WindowWidth / 2)
	for y := 0.0; y < core.WindowHeight; y += CenterLineGap {
		surface.DrawLine(x, y, x, y+CenterLineDash, core.PaddleColor)
	}
}

//上下牆壁
func drawWalls(surface Surface) {
	surface.FillRect(0, 0, core.WindowWidth, WallThickness, core.PaddleColor)
	surface.FillRect(0, core.WindowHeight-WallThickness, core.WindowWidth, WallThickness, core.PaddleColor)
}
