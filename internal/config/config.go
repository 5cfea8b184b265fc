// Package config provides YAML-based configuration loading for paddleball.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the game.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Ball    SizeConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Physics PhysicsConfig `yaml:"physics"`
	Display DisplayConfig `yaml:"display"`
}

// ArenaConfig fixes the arena size. Zero values mean "measure the terminal".
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Measured reports whether the arena should come from the terminal size.
func (a ArenaConfig) Measured() bool {
	return a.Width == 0 && a.Height == 0
}

// SizeConfig is a width/height pair in arena units.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle size and movement.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StepDivisor float64 `yaml:"step_divisor"`
}

// PhysicsConfig defines the ball's starting motion.
type PhysicsConfig struct {
	InitialVelocity VelocityConfig `yaml:"initial_velocity"`
}

// VelocityConfig is a per-tick displacement.
type VelocityConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DisplayConfig maps arena units to terminal cells and sets the frame rate.
type DisplayConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
	TickRate    int     `yaml:"tick_rate"`
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Arena.Width < 0 || c.Arena.Height < 0 {
		errs = append(errs, fmt.Errorf("arena: negative size %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if !c.Arena.Measured() && (c.Arena.Width == 0 || c.Arena.Height == 0) {
		errs = append(errs, fmt.Errorf("arena: width and height must both be set or both be 0, got %vx%v",
			c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball: size must be positive, got %vx%v", c.Ball.Width, c.Ball.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle: size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.StepDivisor <= 0 {
		errs = append(errs, fmt.Errorf("paddle: step_divisor must be positive, got %v", c.Paddle.StepDivisor))
	}
	if c.Display.UnitsPerCol <= 0 || c.Display.UnitsPerRow <= 0 {
		errs = append(errs, fmt.Errorf("display: units per cell must be positive, got %vx%v",
			c.Display.UnitsPerCol, c.Display.UnitsPerRow))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display: tick_rate must be positive, got %d", c.Display.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")
