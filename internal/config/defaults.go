package config

import (
	_ "embed"
)

//go:embed defaults/paddleball.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ball: SizeConfig{
			Width:  25,
			Height: 25,
		},
		Paddle: PaddleConfig{
			Width:       100,
			Height:      20,
			StepDivisor: 5,
		},
		Physics: PhysicsConfig{
			InitialVelocity: VelocityConfig{X: 5, Y: 5},
		},
		Display: DisplayConfig{
			UnitsPerCol: 10,
			UnitsPerRow: 25,
			TickRate:    60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
