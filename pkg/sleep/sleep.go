// Package sleep blocks the calling goroutine for durations given as
// milliseconds, duration strings or time.Duration values.
//
// Zero and negative inputs return immediately:
//
//	sleep.SmartSleep(sleep.Millis(100))
//	sleep.SmartSleep(sleep.Text("1m30s"))
//	sleep.SmartSleep(sleep.Span(2 * time.Second))
//	sleep.SmartSleep(sleep.Millis(-50)) // no wait
package sleep

import (
	"context"
	"time"
)

// Sleep always waits for d, including a zero d.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// SmartSleep waits for in unless in.ShouldSleep reports false.
// It returns the parse error of a Text input that cannot be resolved.
func SmartSleep(in Input) error {
	if !in.ShouldSleep() {
		return nil
	}

	d, err := in.Duration()
	if err != nil {
		return err
	}

	Sleep(d)
	return nil
}

// SleepContext waits for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the wait was cut short.
func SleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SmartSleepContext is SmartSleep with cancellation.
func SmartSleepContext(ctx context.Context, in Input) error {
	if !in.ShouldSleep() {
		return nil
	}

	d, err := in.Duration()
	if err != nil {
		return err
	}

	return SleepContext(ctx, d)
}
