package core

import "time"

// Clock reports time elapsed since an origin. The live loop uses the
// monotonic implementation; tests drive the animated variant with a
// hand-advanced one.
type Clock interface {
	Elapsed() time.Duration
}

// MonotonicClock measures elapsed wall time from its creation.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Elapsed returns the time since the clock was created.
func (c *MonotonicClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a hand-advanced Clock for synthetic frame stepping.
type ManualClock struct {
	now time.Duration
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Elapsed returns the accumulated synthetic time.
func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}
