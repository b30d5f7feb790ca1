package core

import "math"

// Outcome reports what happened during one physics step.
type Outcome struct {
	Served     bool
	Paddle1Hit bool
	Paddle2Hit bool
	Scored     Role // RolePaddle1 or RolePaddle2 when a point was won, RoleBall otherwise
}

func (o Outcome) PointScored() bool {
	return o.Scored != RoleBall
}

// Step advances the world by one frame. It only runs while the game is in play.
func Step(w *World, held KeySet) Outcome {
	out := Outcome{Scored: RoleBall}
	if w.State != StateInGame {
		return out
	}

	ball := &w.Ball

	//球停下來就重新發球
	if ball.Velocity.IsZero() {
		ball.Velocity = Vector2{X: w.randomDirection(), Y: w.randomDirection()}
		out.Served = true
	}

	movePaddle(&w.Paddle1, held.Has(KeyUp1), held.Has(KeyDown1))
	movePaddle(&w.Paddle2, held.Has(KeyUp2), held.Has(KeyDown2))

	ball.Position = ball.Position.Add(ball.Velocity.Scale(w.BallSpeed))

	if isCollidesWithWall(ball) {
		ball.Velocity.Y = -ball.Velocity.Y
	}
	// Same boundary as the scoring checks below, so the reset overwrites this inversion.
	if isBallOutSide(ball) {
		ball.Velocity.X = -ball.Velocity.X
	}

	if ball.Left() <= w.Paddle1.Right() && ball.OverlapsVertically(&w.Paddle1) {
		ball.Velocity = bounceVelocity(&w.Paddle1, ball)
		w.BallSpeed += BallSpeedIncrement
		out.Paddle1Hit = true
	}

	if ball.Right() >= w.Paddle2.Left() && ball.OverlapsVertically(&w.Paddle2) {
		ball.Velocity = bounceVelocity(&w.Paddle2, ball).Scale(-1)
		w.BallSpeed += BallSpeedIncrement
		out.Paddle2Hit = true
	}

	if ball.Position.X <= 0 {
		resetNewRound(w)
		w.Score.Player2++
		out.Scored = RolePaddle2
	}

	if ball.Position.X >= WindowWidth-ball.Dimensions.X {
		resetNewRound(w)
		w.Score.Player1++
		out.Scored = RolePaddle1
	}

	return out
}

func movePaddle(paddle *Entity, up, down bool) {
	if up {
		paddle.MoveUp(PaddleSpeed)
	}
	if down {
		paddle.MoveDown(PaddleSpeed)
	}
	paddle.Position.Y = clamp(paddle.Position.Y, 0, WindowHeight-paddle.Dimensions.Y)
}

func isCollidesWithWall(ball *Entity) bool {
	return ball.Position.Y <= 0 || ball.Position.Y >= WindowHeight-ball.Dimensions.Y
}

func isBallOutSide(ball *Entity) bool {
	return ball.Position.X <= 0 || ball.Position.X >= WindowWidth-ball.Dimensions.X
}

// bounceVelocity returns a unit vector whose angle follows how far from the paddle's
// centre the ball struck, up to MaxBounceAngle at either end.
func bounceVelocity(paddle, ball *Entity) Vector2 {
	offset := (paddle.CenterY() - ball.CenterY()) / (paddle.Dimensions.Y / 2)
	offset = clamp(offset, -1, 1)
	angle := offset * MaxBounceAngle * math.Pi / 180
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func resetNewRound(w *World) {
	w.Ball.Position = Vector2{X: WindowWidth / 2, Y: WindowHeight / 2}
	w.Ball.Velocity = Vector2{}
	w.BallSpeed = ResetBallSpeed
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
