package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paddleball SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game sized to its terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.paddleball/host_key

Examples:
  paddleball serve                           # Listen on :23234 with auto-generated key
  paddleball serve --ssh :2222               # Listen on port 2222
  paddleball serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger, err := newLogger("paddleball-ssh")
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.Settings = paddleball.SettingsFromConfig(cfg)
	serverCfg.TickRate = cfg.Display.TickRate
	serverCfg.Seed = flagSeed
	if cmd.Flags().Changed("ssh") {
		serverCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("idle-timeout") {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("connect with ssh", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
