// clock.go
package main

import (
	"context"
	"time"
)

// Clock is an interface to abstract time-related functions.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

// RealClock implements Clock using the actual time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration or until the context is canceled.
func (RealClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// MockClock implements Clock for testing purposes.
type MockClock struct {
	currentTime time.Time

	// OnSleep, if set, is invoked on every Sleep call. Tests use it to
	// cancel the poller's context after a bounded number of cycles.
	OnSleep func(d time.Duration)
	Sleeps  []time.Duration
}

// Now returns the mocked current time.
func (mc *MockClock) Now() time.Time {
	return mc.currentTime
}

// Sleep records the requested duration and advances the mocked time by it.
func (mc *MockClock) Sleep(_ context.Context, d time.Duration) {
	mc.Sleeps = append(mc.Sleeps, d)
	mc.currentTime = mc.currentTime.Add(d)
	if mc.OnSleep != nil {
		mc.OnSleep(d)
	}
}

// Advance moves the current time forward by the specified duration.
func (mc *MockClock) Advance(d time.Duration) {
	mc.currentTime = mc.currentTime.Add(d)
}
