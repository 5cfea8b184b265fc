// Package loop runs a fixed-rate repeating task with explicit cancellation.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRate is returned for a non-positive tick rate.
var ErrInvalidRate = errors.New("loop: tick rate must be positive")

// Scheduler calls a step function at a fixed rate.
type Scheduler struct {
	interval time.Duration
}

// New creates a scheduler running tickRate steps per second.
func New(tickRate int) (*Scheduler, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, tickRate)
	}
	return &Scheduler{interval: time.Second / time.Duration(tickRate)}, nil
}

// Interval returns the time between two steps.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run calls step once per interval. Each step runs to completion before the
// next one is scheduled. Run returns nil when step reports false and
// ctx.Err() when ctx is cancelled first.
func (s *Scheduler) Run(ctx context.Context, step func() bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		// Both channels may be ready at once; cancellation wins.
		if err := ctx.Err(); err != nil {
			return err
		}

		if !step() {
			return nil
		}
		timer.Reset(s.interval)
	}
}
