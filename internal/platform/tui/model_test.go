package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
)

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyPause = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyRuneH = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
	keyRuneD = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}
	keyRuneZ = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}
)

func newTestModel(t *testing.T, s paddleball.Settings) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	game := paddleball.NewGame(s)
	if err := game.Reset(playfield(cfg)); err != nil {
		t.Fatalf("Reset error = %v", err)
	}
	return NewModel(game, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// losingSettings uses an arena where every starting height is already a miss.
func losingSettings() paddleball.Settings {
	s := paddleball.DefaultSettings()
	s.Arena = paddleball.Arena{Width: 100, Height: 30}
	s.Paddle = paddleball.Size{Width: 10, Height: 2}
	return s
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", keyLeft, core.ActionLeft},
		{"h", keyRuneH, core.ActionLeft},
		{"right arrow", keyRight, core.ActionRight},
		{"d", keyRuneD, core.ActionRight},
		{"space", keySpace, core.ActionRestart},
		{"p", keyPause, core.ActionPause},
		{"q", keyQuit, core.ActionQuit},
		{"ctrl+c", keyCtrlC, core.ActionQuit},
		{"ctrl+s", keyCtrlS, core.ActionNone},
		{"unbound", keyRuneZ, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestModelMovesPaddleImmediately(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	m, cmd := update(t, m, keyLeft)
	if cmd != nil {
		t.Error("movement should not schedule a command")
	}
	if got := m.game.Snapshot().PaddlePosition; got != 310 {
		t.Errorf("PaddlePosition = %v, expected 310", got)
	}

	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyRight)
	if got := m.game.Snapshot().PaddlePosition; got != 390 {
		t.Errorf("PaddlePosition = %v, expected 390", got)
	}
}

func TestModelTickLoopStopsAndRestarts(t *testing.T) {
	m := newTestModel(t, losingSettings())

	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}

	m, cmd := update(t, m, TickMsg{})
	if !m.game.State().GameOver {
		t.Fatal("expected game over after the first tick")
	}
	if cmd != nil {
		t.Error("tick loop should stop on game over")
	}
	if m.ticking {
		t.Error("ticking should be false after game over")
	}

	m, cmd = update(t, m, keySpace)
	if m.game.State().GameOver {
		t.Error("space should start a new game")
	}
	if cmd == nil || !m.ticking {
		t.Error("restart should resume the tick loop")
	}
}

func TestModelTickContinuesWhileRunning(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
	if got := m.game.Snapshot().Ticks; got != 1 {
		t.Errorf("Ticks = %d, expected 1", got)
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())
	m, _ = update(t, m, TickMsg{})
	before := m.game.Snapshot()

	m, cmd := update(t, m, keySpace)
	if cmd != nil {
		t.Error("space during play should not schedule anything")
	}
	if got := m.game.Snapshot(); got != before {
		t.Errorf("snapshot changed on space during play: %+v -> %+v", before, got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	m, _ = update(t, m, keyPause)
	if !m.game.State().Paused {
		t.Fatal("p should pause")
	}
	m, _ = update(t, m, TickMsg{})
	if got := m.game.Snapshot().Ticks; got != 0 {
		t.Errorf("Ticks = %d while paused, expected 0", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View should show the pause overlay")
	}

	m, _ = update(t, m, keyPause)
	if m.game.State().Paused {
		t.Error("p should resume")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	m, cmd := update(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeBeforeFirstTick(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())
	if got := m.game.Snapshot().Arena; got != paddleball.DefaultArena {
		t.Fatalf("Arena = %+v, expected %+v", got, paddleball.DefaultArena)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 31})
	want := paddleball.Arena{Width: 1200, Height: 750}
	if got := m.game.Snapshot().Arena; got != want {
		t.Errorf("Arena = %+v, expected %+v", got, want)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 120x30", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if got := m.game.Snapshot().Arena; got != want {
		t.Errorf("Arena changed after the first tick: %+v", got)
	}
	if m.notice != "" {
		t.Errorf("locked arena should not raise a notice, got %q", m.notice)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}

func TestModelResizeTooSmall(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 5, Height: 2})
	if got := m.game.Snapshot().Arena; got != paddleball.DefaultArena {
		t.Errorf("Arena = %+v, expected it to be kept", got)
	}
	if m.notice == "" {
		t.Error("expected a notice for a terminal that is too small")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())
	m.screenshotDir = filepath.Join(t.TempDir(), "shots")

	m, _ = update(t, m, keyCtrlS)
	if !strings.HasPrefix(m.notice, "saved ") {
		t.Fatalf("notice = %q, expected a saved path", m.notice)
	}

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "paddleball_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsRune(string(data), paddleball.PaddleChar) {
		t.Error("screenshot should contain the paddle")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, paddleball.DefaultSettings())

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Errorf("View has %d lines, expected 25", len(lines))
	}
	if !strings.ContainsRune(view, paddleball.BallChar) {
		t.Error("View should contain the ball")
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("last line should be the help line, got %q", lines[len(lines)-1])
	}
}

func TestRenderScreenLines(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.SetColored(1, 1, 'x', core.ColorCyan)
	s.SetColored(2, 1, 'y', core.ColorBrightYellow)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("RenderScreen has %d newlines, expected 2", n)
	}
	if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
		t.Error("RenderScreen dropped colored cells")
	}
}
