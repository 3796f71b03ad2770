package core

import (
	"testing"
	"time"
)

type manualClock struct{ t time.Time }

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepDue(t *testing.T) {
	clock := &manualClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10*time.Millisecond, 5)
	fs.now = clock.now

	if n := fs.Due(); n != 1 {
		t.Fatalf("first call due %d, want 1", n)
	}
	clock.advance(4 * time.Millisecond)
	if n := fs.Due(); n != 0 {
		t.Fatalf("due %d before interval elapsed", n)
	}
	clock.advance(8 * time.Millisecond)
	if n := fs.Due(); n != 1 {
		t.Fatalf("due %d after 12ms, want 1", n)
	}
	clock.advance(28 * time.Millisecond)
	if n := fs.Due(); n != 3 {
		t.Fatalf("due %d after 40ms total, want 3", n)
	}
	clock.advance(time.Second)
	if n := fs.Due(); n != 5 {
		t.Fatalf("due %d after a long frame, want cap 5", n)
	}
	clock.advance(5 * time.Millisecond)
	if n := fs.Due(); n != 0 {
		t.Fatalf("capped frame left a backlog: due %d", n)
	}
}

func TestFixedStepPause(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10*time.Millisecond, 100)
	fs.now = clock.now
	fs.Due()
	clock.advance(15 * time.Millisecond)
	fs.Pause()
	clock.advance(time.Minute)
	if n := fs.Due(); n != 1 {
		t.Fatalf("resume after pause due %d, want 1", n)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0, 0)
	if fs.Interval() != 10*time.Millisecond {
		t.Fatalf("default interval %v", fs.Interval())
	}
	if fs.maxPerFrame != 1 {
		t.Fatalf("default cap %d", fs.maxPerFrame)
	}
}
