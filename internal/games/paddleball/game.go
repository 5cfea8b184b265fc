package paddleball

import (
	"math/rand"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// Settings are the static parameters of a Game.
type Settings struct {
	// Arena is used as is when set. A zero arena is measured from the screen.
	Arena           Arena
	Ball            Size
	Paddle          Size
	StepDivisor     float64
	InitialVelocity Vector2
	Layout          Layout
}

// DefaultSettings measures the arena and uses the standard sizes.
func DefaultSettings() Settings {
	return Settings{
		Ball:            DefaultBallSize,
		Paddle:          DefaultPaddleSize,
		StepDivisor:     DefaultStepDivisor,
		InitialVelocity: InitialVelocity,
		Layout:          DefaultLayout,
	}
}

// SettingsFromConfig converts a loaded config.
func SettingsFromConfig(c config.Config) Settings {
	return Settings{
		Arena:           Arena{Width: c.Arena.Width, Height: c.Arena.Height},
		Ball:            Size{Width: c.Ball.Width, Height: c.Ball.Height},
		Paddle:          Size{Width: c.Paddle.Width, Height: c.Paddle.Height},
		StepDivisor:     c.Paddle.StepDivisor,
		InitialVelocity: Vector2{X: c.Physics.InitialVelocity.X, Y: c.Physics.InitialVelocity.Y},
		Layout:          Layout{UnitsPerCol: c.Display.UnitsPerCol, UnitsPerRow: c.Display.UnitsPerRow},
	}
}

func (s Settings) measured() bool {
	return s.Arena == Arena{}
}

// dimensions resolves the arena for a screen of cols x rows cells.
func (s Settings) dimensions(cols, rows int) Dimensions {
	arena := s.Arena
	if s.measured() {
		arena = ArenaForScreen(cols, rows, s.Layout)
	}
	return Dimensions{Arena: arena, Ball: s.Ball, Paddle: s.Paddle}
}

// Game binds a Session to the platform: actions in, screen out.
type Game struct {
	settings Settings
	session  *Session
	paused   bool
}

// NewGame creates a game. Call Reset before use.
func NewGame(s Settings) *Game {
	return &Game{settings: s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "paddleball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paddleball"
}

// Reset builds a fresh session for the given screen.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	dims := g.settings.dimensions(rc.ScreenW, rc.ScreenH)
	session, err := NewSession(dims, rand.New(rand.NewSource(rc.Seed)),
		WithStepDivisor(g.settings.StepDivisor),
		WithInitialVelocity(g.settings.InitialVelocity),
	)
	if err != nil {
		return err
	}
	g.session = session
	g.paused = false
	return nil
}

// Resize re-measures the arena. Once the first tick has run the arena is
// fixed and ErrArenaLocked is returned. A configured arena is never resized.
func (g *Game) Resize(cols, rows int) error {
	if !g.settings.measured() {
		return nil
	}
	return g.session.Configure(g.settings.dimensions(cols, rows).Arena)
}

// Handle applies one action right away. It reports whether the action
// started a new game.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionPause:
		if !g.session.GameOver() {
			g.paused = !g.paused
		}
	case core.ActionLeft:
		if !g.paused {
			g.session.MoveLeft()
		}
	case core.ActionRight:
		if !g.paused {
			g.session.MoveRight()
		}
	case core.ActionRestart:
		return g.session.Reset()
	}
	return false
}

// Step advances the simulation by one tick unless paused and returns the
// resulting state.
func (g *Game) Step() core.GameState {
	if !g.paused {
		g.session.Tick()
	}
	return g.State()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.session.Snapshot(), g.settings.Layout)
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
