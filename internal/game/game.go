// Package game holds the pong state machine. It has no knowledge of the
// panel or the joysticks beyond the Direction signals it is given.
package game

import (
	"fmt"

	"github.com/joduyemi/LedPanel/internal/types"
)

const (
	// PaddleLength is the number of rows a paddle occupies
	PaddleLength = 9

	// LeftColumn and RightColumn hold paddle 1 and paddle 2
	LeftColumn  = 0
	RightColumn = types.Width - 1

	// CentreColumn is where the ball is re-served after a miss
	CentreColumn = 15

	// MaxPaddle is the lowest row the top of a paddle may reach
	MaxPaddle = types.Height - 1 - PaddleLength

	lastRow = types.Height - 1
)

// State is the complete game state
type State struct {
	// Paddle1 and Paddle2 are the top rows of the paddles
	Paddle1 int
	Paddle2 int

	BallX int
	BallY int

	// BallRight is set while the ball moves toward higher columns
	BallRight bool
	// BallUp is set while the ball moves toward row 0
	BallUp bool
}

// New returns the serve state: ball centred moving right and up, both
// paddles at the top
func New() State {
	return State{
		BallX:     CentreColumn,
		BallY:     CentreColumn,
		BallRight: true,
		BallUp:    true,
	}
}

// Valid reports whether every coordinate is inside its domain
func (s State) Valid() bool {
	return s.Paddle1 >= 0 && s.Paddle1 <= MaxPaddle &&
		s.Paddle2 >= 0 && s.Paddle2 <= MaxPaddle &&
		s.BallX >= 0 && s.BallX <= RightColumn &&
		s.BallY >= 0 && s.BallY <= lastRow
}

func (s State) String() string {
	return fmt.Sprintf("ball (%d,%d) right=%t up=%t paddles %d/%d",
		s.BallX, s.BallY, s.BallRight, s.BallUp, s.Paddle1, s.Paddle2)
}

// Advance moves the game on by one tick. The ball moves first, then paddle 1
// follows p1 and paddle 2 follows p2. Paddle collision is tested against the
// ball's row after its vertical move.
func Advance(s State, p1, p2 types.Direction) State {
	s = moveBallVertical(s)
	s = moveBallHorizontal(s)
	s.Paddle1 = movePaddle(s.Paddle1, p1)
	s.Paddle2 = movePaddle(s.Paddle2, p2)
	return s
}

// Collides reports whether a ball on row ballY meets the paddle whose top row
// is paddle. The range is inclusive at both ends.
func Collides(ballY, paddle int) bool {
	return ballY >= paddle && ballY <= paddle+PaddleLength
}

// moveBallVertical bounces off the top and bottom rows in the same tick the
// wall is reached
func moveBallVertical(s State) State {
	if s.BallUp {
		if s.BallY > 0 {
			s.BallY--
		} else {
			s.BallUp = false
			s.BallY++
		}
		return s
	}

	if s.BallY < lastRow {
		s.BallY++
	} else {
		s.BallUp = true
		s.BallY--
	}
	return s
}

func moveBallHorizontal(s State) State {
	if s.BallRight {
		s.BallX, s.BallRight = approach(s.BallX, s.BallY, s.Paddle2, RightColumn-1, +1)
	} else {
		s.BallX, s.BallRight = approach(s.BallX, s.BallY, s.Paddle1, LeftColumn+1, -1)
	}
	return s
}

// approach moves a ball travelling by step (+1 or -1) toward the paddle
// whose collision column is edge. It returns the new column and whether the
// ball now travels right.
func approach(x, y, paddle, edge, step int) (int, bool) {
	towardPaddle := step > 0
	switch {
	case (x-edge)*step < 0:
		return x + step, towardPaddle
	case x == edge && Collides(y, paddle):
		return x - step, !towardPaddle
	default:
		// Missed, or already behind the paddle: serve back toward the
		// other player from the centre.
		return CentreColumn, !towardPaddle
	}
}

func movePaddle(top int, d types.Direction) int {
	switch d {
	case types.Up:
		if top > 0 {
			top--
		}
	case types.Down:
		if top < MaxPaddle {
			top++
		}
	}
	return top
}
