// Package headless runs a paddleball session without a terminal.
// The driver owns the session on a single goroutine; other goroutines talk
// to it through a command channel.
package headless

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/loop"
)

// DefaultInboxSize is the command buffer used when none is given.
const DefaultInboxSize = 16

// FrameFunc observes the session after every tick. It runs on the driver
// goroutine, so it may call Send but must not block.
type FrameFunc func(paddleball.Snapshot)

// Driver ticks a session at a fixed rate and applies queued commands
// between ticks.
type Driver struct {
	session   *paddleball.Session
	scheduler *loop.Scheduler
	inbox     chan paddleball.Command
	onFrame   FrameFunc
	logger    *log.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithFrameFunc installs a per-tick observer.
func WithFrameFunc(f FrameFunc) DriverOption {
	return func(d *Driver) {
		d.onFrame = f
	}
}

// WithLogger sets the logger. The default discards debug output.
func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithInboxSize sets the command buffer size.
func WithInboxSize(n int) DriverOption {
	return func(d *Driver) {
		if n > 0 {
			d.inbox = make(chan paddleball.Command, n)
		}
	}
}

// NewDriver creates a driver for session ticking at the scheduler's rate.
func NewDriver(session *paddleball.Session, scheduler *loop.Scheduler, opts ...DriverOption) *Driver {
	d := &Driver{
		session:   session,
		scheduler: scheduler,
		inbox:     make(chan paddleball.Command, DefaultInboxSize),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send queues a command for the next tick. It never blocks and reports
// false when the command was dropped because the inbox is full.
func (d *Driver) Send(c paddleball.Command) bool {
	select {
	case d.inbox <- c:
		return true
	default:
		d.logger.Debug("command dropped", "command", c)
		return false
	}
}

// Tick drains queued commands and advances the session by one frame.
// It reports whether the game is still running.
func (d *Driver) Tick() bool {
	d.drain()
	running := d.session.Tick()
	if d.onFrame != nil {
		d.onFrame(d.session.Snapshot())
	}
	return running
}

func (d *Driver) drain() {
	for {
		select {
		case c := <-d.inbox:
			d.session.Apply(c)
		default:
			return
		}
	}
}

// Run ticks until the game is over or ctx is cancelled and returns the
// final snapshot. A cancelled run returns ctx.Err() alongside the snapshot.
func (d *Driver) Run(ctx context.Context) (paddleball.Snapshot, error) {
	arena := d.session.Dimensions().Arena
	d.logger.Debug("run started", "arena", arena, "interval", d.scheduler.Interval())

	err := d.scheduler.Run(ctx, d.Tick)
	snap := d.session.Snapshot()

	switch {
	case err == nil:
		d.logger.Info("game over", "ticks", snap.Ticks, "ball_x", snap.BallPosition.X, "paddle", snap.PaddlePosition)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		d.logger.Info("run stopped", "ticks", snap.Ticks, "reason", err)
	default:
		d.logger.Error("run failed", "error", err)
	}
	return snap, err
}
