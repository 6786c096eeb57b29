package core

import (
	"testing"
	"time"
)

func TestManualClockAdvances(t *testing.T) {
	c := &ManualClock{}
	if c.Elapsed() != 0 {
		t.Fatalf("fresh manual clock reports %v", c.Elapsed())
	}
	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)
	if c.Elapsed() != 32*time.Millisecond {
		t.Fatalf("elapsed %v, want 32ms", c.Elapsed())
	}
}

func TestMonotonicClockNeverRewinds(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Fatalf("elapsed went backwards: %v then %v", a, b)
	}
}
