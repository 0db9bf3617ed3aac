package testfixtures

import (
	"sync"
	"time"
)

// Clock provides a controllable time source for tests. The zero value is not
// usable; construct one with NewClock.
type Clock struct {
	mu sync.RWMutex
	at time.Time
}

// NewClock returns a clock pinned to the supplied instant. When start is the
// zero value, the shared ReferenceTime is used.
func NewClock(start time.Time) *Clock {
	c := &Clock{at: ReferenceTime()}
	if !start.IsZero() {
		c.at = start
	}
	return c
}

// Now returns the instant the clock is pinned to.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.at
}

// NowFunc exposes Now as a function suitable for dependency injection. A nil
// clock falls back to the real time source.
func (c *Clock) NowFunc() func() time.Time {
	if c == nil {
		return time.Now
	}
	return c.Now
}

// Set pins the clock to the provided instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = t
}

// Advance moves the clock forward by d and returns the updated instant.
// Negative durations move it backward.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
	return c.at
}
