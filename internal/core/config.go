package core

// RuntimeConfig describes the surface a game is started on.
type RuntimeConfig struct {
	ScreenW  int   // columns available to the game
	ScreenH  int   // rows available to the game
	TickRate int   // frames per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState tells the platform whether to keep scheduling frames.
type GameState struct {
	GameOver bool
	Paused   bool
}
