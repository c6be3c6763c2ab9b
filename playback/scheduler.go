package playback

import (
	"context"
	"time"
)

// Scheduler suspends a playback run between steps.
type Scheduler interface {
	// Sleep blocks for d or until ctx is done, in which case it returns ctx.Err().
	Sleep(ctx context.Context, d time.Duration) error
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(ctx context.Context, d time.Duration) error

func (f SchedulerFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerScheduler sleeps on a real timer.
type TimerScheduler struct{}

func (TimerScheduler) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
