package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/headless"
	"github.com/vovakirdan/paddleball/internal/loop"
)

var (
	flagSimTicks  uint64
	flagSimWidth  float64
	flagSimHeight float64
	flagMissAfter uint64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Run the simulation without a terminal. An autopilot keeps the paddle
under the ball; the outcome is logged when the run ends.

The arena comes from --width/--height, then the config, then 800x600.

Examples:
  paddleball sim --ticks 10000
  paddleball sim --miss-after 300 --log-level debug
  paddleball sim --fps 1000 --seed 42 --width 400 --height 300`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 0, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 0, "Arena width in units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 0, "Arena height in units")
	simCmd.Flags().Uint64Var(&flagMissAfter, "miss-after", 0, "Stop steering after this many ticks (0 = never)")
}

func runSim(cmd *cobra.Command, _ []string) {
	logger, err := newLogger("paddleball-sim")
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	settings := paddleball.SettingsFromConfig(cfg)
	dims := paddleball.Dimensions{
		Arena:  simArena(settings.Arena),
		Ball:   settings.Ball,
		Paddle: settings.Paddle,
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := paddleball.NewSession(dims, rand.New(rand.NewSource(seed)),
		paddleball.WithStepDivisor(settings.StepDivisor),
		paddleball.WithInitialVelocity(settings.InitialVelocity),
	)
	if err != nil {
		fail("%v", err)
	}

	scheduler, err := loop.New(cfg.Display.TickRate)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started", "seed", seed, "arena", dims.Arena, "fps", cfg.Display.TickRate)
	res, err := headless.Simulate(ctx, session, scheduler, headless.SimConfig{
		MaxTicks:  flagSimTicks,
		MissAfter: flagMissAfter,
	}, logger)
	if err != nil && ctx.Err() == nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"ticks", res.Final.Ticks,
		"game_over", res.Final.GameOver,
		"tick_limit", res.Limited,
		"ball", res.Final.BallPosition,
		"paddle", res.Final.PaddlePosition,
	)
}

// simArena resolves the arena from flags, then the config, then the default.
func simArena(configured paddleball.Arena) paddleball.Arena {
	arena := configured
	if arena == (paddleball.Arena{}) {
		arena = paddleball.DefaultArena
	}
	if flagSimWidth > 0 {
		arena.Width = flagSimWidth
	}
	if flagSimHeight > 0 {
		arena.Height = flagSimHeight
	}
	return arena
}
