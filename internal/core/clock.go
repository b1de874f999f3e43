package core

import (
	"sync"
	"time"
)

// Clock abstracts wall-clock time so timers (the shield) and frame pacing
// can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a Clock that only moves when told to.
// Sleep advances the clock instead of blocking.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock starting at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Sleep advances the clock by d without blocking.
func (c *ManualClock) Sleep(d time.Duration) {
	if d > 0 {
		c.Advance(d)
	}
}
