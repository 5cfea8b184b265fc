package headless

import (
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
)

// Autopilot steers the paddle under the ball, one command per frame.
type Autopilot struct {
	send      func(paddleball.Command) bool
	step      float64
	missAfter uint64
}

// NewAutopilot creates an autopilot that issues commands through send.
// step is the session's paddle step. When missAfter is non-zero the
// autopilot stops steering after that many ticks.
func NewAutopilot(send func(paddleball.Command) bool, step float64, missAfter uint64) *Autopilot {
	return &Autopilot{
		send:      send,
		step:      step,
		missAfter: missAfter,
	}
}

// Decide returns the move that brings the paddle closer to the ball, if any.
func (a *Autopilot) Decide(snap paddleball.Snapshot) (paddleball.Command, bool) {
	target := snap.BallPosition.X + snap.Ball.Width/2 - snap.Paddle.Width/2
	target = core.ClampF(target, 0, snap.Arena.Width-snap.Paddle.Width)

	diff := target - snap.PaddlePosition
	switch {
	case diff > a.step/2:
		return paddleball.CommandMoveRight, true
	case diff < -a.step/2:
		return paddleball.CommandMoveLeft, true
	}
	return 0, false
}

// Observe is a FrameFunc.
func (a *Autopilot) Observe(snap paddleball.Snapshot) {
	if snap.GameOver {
		return
	}
	if a.missAfter > 0 && snap.Ticks >= a.missAfter {
		return
	}
	if c, ok := a.Decide(snap); ok {
		a.send(c)
	}
}
