package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

The arena is measured from the terminal unless the config fixes it.
Resizing before the ball first moves re-measures the arena.

Controls:
  Left/H/A   - Move paddle left
  Right/L/D  - Move paddle right
  Space      - Start again (after game over)
  P          - Pause
  Ctrl+S     - Save a screenshot to ~/.paddleball/screenshots
  Q/Ctrl+C   - Quit

Examples:
  paddleball play
  paddleball play --seed 7
  paddleball play --config ./my-paddleball.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	game := paddleball.NewGame(paddleball.SettingsFromConfig(cfg))
	if err := tui.Run(game, rc); err != nil {
		fail("%v", err)
	}
}
