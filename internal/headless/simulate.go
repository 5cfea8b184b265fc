package headless

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/loop"
)

// SimConfig controls a simulated game.
type SimConfig struct {
	// MaxTicks stops the run after that many ticks. Zero means no limit.
	MaxTicks uint64
	// MissAfter stops the autopilot after that many ticks. Zero means never.
	MissAfter uint64
}

// Result describes how a simulated game ended.
type Result struct {
	Final paddleball.Snapshot
	// Limited is true when the run hit MaxTicks before the ball was lost.
	Limited bool
}

// Simulate runs session under an autopilot until the ball is lost, the
// tick limit is reached or ctx is cancelled.
func Simulate(ctx context.Context, session *paddleball.Session, scheduler *loop.Scheduler, cfg SimConfig, logger *log.Logger) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var d *Driver
	pilot := NewAutopilot(func(c paddleball.Command) bool { return d.Send(c) }, session.PaddleStep(), cfg.MissAfter)
	limited := false
	observe := func(snap paddleball.Snapshot) {
		pilot.Observe(snap)
		if cfg.MaxTicks > 0 && snap.Ticks >= cfg.MaxTicks && !snap.GameOver {
			limited = true
			cancel()
		}
	}
	d = NewDriver(session, scheduler, WithLogger(logger), WithFrameFunc(observe))

	snap, err := d.Run(ctx)
	if limited && errors.Is(err, context.Canceled) {
		err = nil
	}
	return Result{Final: snap, Limited: limited}, err
}
