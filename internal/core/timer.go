package core

import "time"

// FixedStep paces simulation steps at a steady interval independent of the
// frame rate. Frames slower than the interval are caught up with several
// steps, up to a cap.
type FixedStep struct {
	step        time.Duration
	maxPerFrame int
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing every interval and
// never reporting more than maxPerFrame steps at once.
func NewFixedStep(interval time.Duration, maxPerFrame int) *FixedStep {
	if maxPerFrame <= 0 {
		maxPerFrame = 1
	}
	fs := &FixedStep{maxPerFrame: maxPerFrame, now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = 10 * time.Millisecond
	}
	f.step = d
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pause forgets accumulated time so that resuming does not burst.
func (f *FixedStep) Pause() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many steps should run now.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > f.maxPerFrame {
		n = f.maxPerFrame
		f.accumulator = 0
	}
	return n
}
