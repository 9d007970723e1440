package schedule

import "time"

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with its monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used by tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// PausableClock reports base time minus every interval spent paused.
// It is meant for the single goroutine that drives the frame loop.
type PausableClock struct {
	base Clock

	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
}

// NewPausableClock wraps base. A nil base uses the system clock.
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = SystemClock{}
	}
	return &PausableClock{base: base}
}

// Now returns the pause-adjusted time. While paused it is frozen at the
// moment Pause was called.
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.totalPaused)
	}
	return c.base.Now().Add(-c.totalPaused)
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.base.Now()
}

// Resume unfreezes the clock, discounting the time spent paused.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.totalPaused += c.base.Now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool { return c.paused }

// PausedFor returns the cumulative paused duration, including a pause in progress.
func (c *PausableClock) PausedFor() time.Duration {
	total := c.totalPaused
	if c.paused {
		total += c.base.Now().Sub(c.pausedAt)
	}
	return total
}
