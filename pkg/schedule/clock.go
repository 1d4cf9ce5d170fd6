// Package schedule provides cancelable, clock-driven deferred tasks.
package schedule

import (
	"context"
	"time"
)

// Timer is a handle to a pending task.
type Timer interface {
	// Stop cancels the task. It reports whether the call prevented the task
	// from running.
	Stop() bool
}

// Clock schedules functions to run after a delay.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type realClock struct{}

// RealClock returns a Clock backed by the runtime timers.
func RealClock() Clock { return realClock{} }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func (realClock) Now() time.Time { return time.Now() }

// Sleep blocks for d on the given clock or until ctx is done.
func Sleep(ctx context.Context, clock Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	done := make(chan struct{})
	t := clock.AfterFunc(d, func() { close(done) })
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	}
}
