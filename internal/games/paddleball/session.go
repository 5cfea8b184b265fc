package paddleball

import (
	"fmt"
	"math/rand"
)

// Command is a discrete player input.
type Command int

const (
	CommandReset Command = iota
	CommandMoveLeft
	CommandMoveRight
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Session owns the single live game state.
//
// A Session is not safe for concurrent use. Ticks and commands must come from
// one goroutine; see Driver for feeding commands from elsewhere.
type Session struct {
	dims        Dimensions
	stepDivisor float64
	paddleStep  float64
	initialVel  Vector2
	rng         *rand.Rand

	state   State
	ticks   uint64
	started bool
}

// Option configures a Session.
type Option func(*Session)

// WithStepDivisor sets how many parts of the paddle width one press covers.
// Non-positive values are ignored.
func WithStepDivisor(n float64) Option {
	return func(s *Session) {
		if n > 0 {
			s.stepDivisor = n
		}
	}
}

// WithInitialVelocity sets the velocity every new game starts with.
func WithInitialVelocity(v Vector2) Option {
	return func(s *Session) {
		s.initialVel = v
	}
}

// NewSession validates d and seeds a new game.
func NewSession(d Dimensions, rng *rand.Rand, opts ...Option) (*Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Session{
		dims:        d,
		stepDivisor: DefaultStepDivisor,
		initialVel:  InitialVelocity,
		rng:         rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.paddleStep = paddleStep(d, s.stepDivisor)
	s.state = newState(d, s.initialVel, rng)
	return s, nil
}

// paddleStep is the distance covered by one move command.
func paddleStep(d Dimensions, divisor float64) float64 {
	return d.Arena.Width / (d.Paddle.Width / divisor)
}

// Configure replaces the arena with a measured one. It is only allowed
// before the first tick; the game is reseeded for the new arena.
func (s *Session) Configure(arena Arena) error {
	if s.started {
		return ErrArenaLocked
	}
	d := s.dims
	d.Arena = arena
	if err := d.Validate(); err != nil {
		return err
	}
	s.dims = d
	s.paddleStep = paddleStep(d, s.stepDivisor)
	s.state = newState(d, s.initialVel, s.rng)
	return nil
}

// Reset starts a new game. It only acts once the current game is over and
// reports whether it did.
func (s *Session) Reset() bool {
	if !s.state.GameOver {
		return false
	}
	s.state = newState(s.dims, s.initialVel, s.rng)
	s.ticks = 0
	return true
}

// MoveLeft shifts the paddle one step left, stopping at the wall.
func (s *Session) MoveLeft() {
	s.state.PaddlePosition = max(0, s.state.PaddlePosition-s.paddleStep)
}

// MoveRight shifts the paddle one step right, stopping at the wall.
func (s *Session) MoveRight() {
	s.state.PaddlePosition = min(s.dims.MaxPaddlePosition(), s.state.PaddlePosition+s.paddleStep)
}

// Apply dispatches a command to its handler.
func (s *Session) Apply(c Command) {
	switch c {
	case CommandReset:
		s.Reset()
	case CommandMoveLeft:
		s.MoveLeft()
	case CommandMoveRight:
		s.MoveRight()
	}
}

// Tick advances the game by one frame and reports whether it is still running.
func (s *Session) Tick() bool {
	if s.state.GameOver {
		return false
	}
	s.started = true
	s.state = Step(s.state, s.dims)
	s.ticks++
	return !s.state.GameOver
}

// GameOver reports whether the ball has been missed.
func (s *Session) GameOver() bool {
	return s.state.GameOver
}

// Dimensions returns the static sizes in use.
func (s *Session) Dimensions() Dimensions {
	return s.dims
}

// PaddleStep returns the distance covered by one move command.
func (s *Session) PaddleStep() float64 {
	return s.paddleStep
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		BallPosition:   s.state.BallPosition,
		Velocity:       s.state.Velocity,
		PaddlePosition: s.state.PaddlePosition,
		GameOver:       s.state.GameOver,
		Ticks:          s.ticks,
		Arena:          s.dims.Arena,
		Ball:           s.dims.Ball,
		Paddle:         s.dims.Paddle,
	}
}
