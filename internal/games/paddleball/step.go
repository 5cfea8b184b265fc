package paddleball

// Step advances s by one tick and returns the next state.
//
// Collisions are tested against the position one tick ahead, so a bounce is
// applied the frame before the ball would overlap a wall. The order matters:
// reflections first, then the loss check, then the paddle, then the commit.
//
// The paddle test mixes the look-ahead bottom edge with the current top and
// horizontal edges. Bounce timing depends on that, keep it as is.
func Step(s State, d Dimensions) State {
	if s.GameOver {
		return s
	}

	pos, vel := s.BallPosition, s.Velocity
	next := vel

	paddleTop := d.PaddleTop()
	paddleRight := s.PaddlePosition + d.Paddle.Width

	ballTop := pos.Y + vel.Y
	ballBottom := pos.Y + d.Ball.Height + vel.Y
	ballRight := pos.X + d.Ball.Width
	ballLeft := pos.X

	if ballTop < 0 || ballBottom >= d.Arena.Height {
		next.Y = -vel.Y
	}
	if ballRight+vel.X >= d.Arena.Width || ballLeft+vel.X < 0 {
		next.X = -vel.X
	}

	if ballBottom >= d.Arena.Height {
		// Frozen at the pre-loss position and velocity.
		s.GameOver = true
		return s
	}

	if ballBottom > paddleTop &&
		pos.Y < paddleTop+d.Paddle.Height &&
		ballRight > s.PaddlePosition &&
		ballLeft < paddleRight {
		next.Y = -vel.Y
	}

	// Far corner of the ball after the move. Skip the move for this tick if it
	// would leave the arena; the velocity still flips.
	cornerY := pos.Y + d.Ball.Height + next.Y
	cornerX := pos.X + d.Ball.Width + next.X
	if cornerY >= 0 && cornerY < d.Arena.Height &&
		cornerX >= 0 && cornerX < d.Arena.Width {
		s.BallPosition = pos.Add(next)
	}

	s.Velocity = next
	return s
}
