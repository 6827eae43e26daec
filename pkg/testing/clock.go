package testing

import (
	"sync"
	"time"
)

// FrameInterval is the time one Tester frame advances the clock.
const FrameInterval = 16 * time.Millisecond

// epoch is where every FakeClock starts, so runs are reproducible.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that moves only when a test steps it.
// It is safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock at the fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: epoch}
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Step advances the clock by one FrameInterval.
func (c *FakeClock) Step() time.Time {
	return c.Advance(FrameInterval)
}

// Elapsed reports how far the clock has moved since it was created.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(epoch)
}
