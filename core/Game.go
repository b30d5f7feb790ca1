package core

import (
	"ThePong/logger"
	"fmt"
)

// Game drives one session: poll events, update, then the backend renders World.
type Game struct {
	World   *World
	running bool
}

func NewGame(world *World) *Game {
	return &Game{World: world, running: true}
}

func (g *Game) Running() bool {
	return g.running
}

// HandleEvents applies the frame's discrete events to the state machine.
func (g *Game) HandleEvents(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			g.running = false
			logger.Log.Info(logger.QuitRequestedMsg)

		case EventKeyDown:
			prev := g.World.State
			g.World.State = prev.Next(ev.Key)
			if prev != g.World.State {
				logger.Log.Info(fmt.Sprintf(logger.StateChangedMsg, prev, g.World.State, ev.Key))
			}
		}
	}
}

// Update runs the physics step for the keys held this frame.
func (g *Game) Update(held KeySet) {
	out := Step(g.World, held)

	if out.Paddle1Hit || out.Paddle2Hit {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, g.World.BallSpeed))
	}
	if out.PointScored() {
		logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, out.Scored, g.World.Score.Player1, g.World.Score.Player2))
	}
}

// Frame runs one poll-update step. Rendering belongs to the caller.
func (g *Game) Frame(events []Event, held KeySet) {
	g.HandleEvents(events)
	if g.running {
		g.Update(held)
	}
}
