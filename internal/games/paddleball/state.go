// Package paddleball implements a single-paddle ball game.
// A ball bounces inside the arena and the player keeps it off the floor
// with a paddle pinned to the bottom edge. Missing the ball ends the game.
package paddleball

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Vector2 is a position or per-tick displacement in arena units.
type Vector2 = core.Vec2

// Arena is the playable rectangle.
type Arena struct {
	Width  float64
	Height float64
}

// Size is the width/height of the ball or the paddle.
type Size struct {
	Width  float64
	Height float64
}

// Default dimensions in arena units.
var (
	DefaultArena      = Arena{Width: 800, Height: 600}
	DefaultBallSize   = Size{Width: 25, Height: 25}
	DefaultPaddleSize = Size{Width: 100, Height: 20}
	InitialVelocity   = Vector2{X: 5, Y: 5}
)

// DefaultStepDivisor splits the paddle width into this many parts when
// deriving the paddle step.
const DefaultStepDivisor = 5

var (
	// ErrInvalidDimensions is returned when the arena cannot hold the ball or paddle.
	ErrInvalidDimensions = errors.New("paddleball: invalid dimensions")

	// ErrArenaLocked is returned when the arena is reconfigured after the first tick.
	ErrArenaLocked = errors.New("paddleball: arena is locked once the game has started")
)

// Dimensions groups the static sizes the simulation needs.
type Dimensions struct {
	Arena  Arena
	Ball   Size
	Paddle Size
}

// DefaultDimensions returns the 800x600 arena with the standard ball and paddle.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Arena:  DefaultArena,
		Ball:   DefaultBallSize,
		Paddle: DefaultPaddleSize,
	}
}

// Validate checks that every size is positive and that the arena is
// strictly larger than the ball and the paddle.
func (d Dimensions) Validate() error {
	switch {
	case d.Arena.Width <= 0 || d.Arena.Height <= 0:
		return fmt.Errorf("%w: arena %vx%v", ErrInvalidDimensions, d.Arena.Width, d.Arena.Height)
	case d.Ball.Width <= 0 || d.Ball.Height <= 0:
		return fmt.Errorf("%w: ball %vx%v", ErrInvalidDimensions, d.Ball.Width, d.Ball.Height)
	case d.Paddle.Width <= 0 || d.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle %vx%v", ErrInvalidDimensions, d.Paddle.Width, d.Paddle.Height)
	case d.Ball.Width >= d.Arena.Width || d.Ball.Height >= d.Arena.Height:
		return fmt.Errorf("%w: ball %vx%v does not fit arena %vx%v", ErrInvalidDimensions,
			d.Ball.Width, d.Ball.Height, d.Arena.Width, d.Arena.Height)
	case d.Paddle.Width >= d.Arena.Width || d.Paddle.Height >= d.Arena.Height:
		return fmt.Errorf("%w: paddle %vx%v does not fit arena %vx%v", ErrInvalidDimensions,
			d.Paddle.Width, d.Paddle.Height, d.Arena.Width, d.Arena.Height)
	}
	return nil
}

// PaddleTop returns the y-coordinate of the paddle's top edge.
func (d Dimensions) PaddleTop() float64 {
	return d.Arena.Height - d.Paddle.Height
}

// MaxPaddlePosition is the largest allowed paddle offset.
func (d Dimensions) MaxPaddlePosition() float64 {
	return d.Arena.Width - d.Paddle.Width
}

// State is the mutable record of one game.
type State struct {
	Velocity       Vector2 // signed displacement per tick
	BallPosition   Vector2 // top-left corner of the ball
	PaddlePosition float64 // left edge of the paddle
	GameOver       bool
}

// newState seeds a fresh game: ball somewhere in the upper half,
// initial velocity, paddle centered.
func newState(d Dimensions, vel Vector2, rng *rand.Rand) State {
	return State{
		Velocity: vel,
		BallPosition: Vector2{
			X: rng.Float64() * (d.Arena.Width - d.Ball.Width),
			Y: rng.Float64() * (d.Arena.Height / 2),
		},
		PaddlePosition: d.MaxPaddlePosition() / 2,
	}
}

// Snapshot is a read-only view of the session for renderers.
type Snapshot struct {
	BallPosition   Vector2
	Velocity       Vector2
	PaddlePosition float64
	GameOver       bool
	Ticks          uint64

	Arena  Arena
	Ball   Size
	Paddle Size
}

// BallBox returns the ball's bounding box.
func (s Snapshot) BallBox() core.Box {
	return core.Box{
		Pos:  s.BallPosition,
		Size: core.Size{W: s.Ball.Width, H: s.Ball.Height},
	}
}

// PaddleBox returns the paddle's bounding box.
func (s Snapshot) PaddleBox() core.Box {
	return core.Box{
		Pos:  Vector2{X: s.PaddlePosition, Y: s.Arena.Height - s.Paddle.Height},
		Size: core.Size{W: s.Paddle.Width, H: s.Paddle.Height},
	}
}
