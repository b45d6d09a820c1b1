package motion

import "time"

// Clock returns the current instant. Widgets take one so tests can pin time.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// OrSystem returns c, or SystemClock when c is nil.
func (c Clock) OrSystem() Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a manual clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the pinned instant.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Set pins the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
