package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Settings != paddleball.DefaultSettings() {
		t.Errorf("Settings = %+v, expected the default settings", cfg.Settings)
	}
	if cfg.HostKeyPath != "" || cfg.Seed != 0 {
		t.Error("host key and seed should be left for the server to pick")
	}
}

func TestSSHServerRuntimeConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Seed = 42
	s := &SSHServer{config: cfg}

	rc := s.runtimeConfig(100, 30)
	if rc.ScreenW != 100 || rc.ScreenH != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", rc.ScreenW, rc.ScreenH)
	}
	if rc.Seed != 42 || rc.TickRate != 60 {
		t.Errorf("runtime config = %+v, expected seed 42 at 60 fps", rc)
	}

	s.config.Seed = 0
	if s.runtimeConfig(80, 24).Seed == 0 {
		t.Error("a zero seed should be replaced with a time-based one")
	}
}
