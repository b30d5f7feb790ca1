package core

import (
	"image/color"
	"math/rand"
	"time"
)

const WindowWidth = 1080
const WindowHeight = 720

const PaddleWidth = 30
const PaddleHeight = 250
const PaddleMargin = 10
const BallSize = 30

const PaddleSpeed = 20.0
const InitialBallSpeed = 5.5
const ResetBallSpeed = 5.0
const BallSpeedIncrement = 1.5
const MaxBounceAngle = 45.0 // degrees

// Colours use straight (non-premultiplied) alpha.
var BackgroundColor = color.RGBA{R: 5, G: 196, B: 107, A: 255}
var PaddleColor = color.RGBA{R: 19, G: 15, B: 64, A: 100}
var BallColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type Score struct {
	Player1 uint
	Player2 uint
}

// World is everything the frame loop mutates. It is owned by a single goroutine.
type World struct {
	Paddle1 Entity
	Paddle2 Entity
	Ball    Entity
	Score   Score
	State   GameState

	// BallSpeed scales the ball's unit velocity every step. Paddle hits raise it, points reset it.
	BallSpeed float64

	rng *rand.Rand
}

// NewWorld builds the world seeded from the wall clock.
func NewWorld() *World {
	return NewWorldWithSeed(time.Now().UnixNano())
}

func NewWorldWithSeed(seed int64) *World {
	paddleStart := float64(WindowHeight/2 - PaddleHeight/2)

	return &World{
		Paddle1: NewEntity(RolePaddle1,
			Vector2{X: PaddleMargin, Y: paddleStart},
			Vector2{X: PaddleWidth, Y: PaddleHeight}, PaddleColor),
		Paddle2: NewEntity(RolePaddle2,
			Vector2{X: WindowWidth - PaddleWidth - PaddleMargin, Y: paddleStart},
			Vector2{X: PaddleWidth, Y: PaddleHeight}, PaddleColor),
		Ball: NewEntity(RoleBall,
			Vector2{X: WindowWidth/2 - BallSize/2, Y: WindowHeight/2 - BallSize/2},
			Vector2{X: BallSize, Y: BallSize}, BallColor),
		State:     StateMenu,
		BallSpeed: InitialBallSpeed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (w *World) randomDirection() float64 {
	if w.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}
