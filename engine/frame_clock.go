package engine

import "time"

// FrameClock turns provider readings into per-frame dt and absolute frame time
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	start    time.Time
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock; deltas above maxDelta are capped
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick marks a frame boundary and returns dt and the frame time, both in seconds
// The first tick has dt zero
func (c *FrameClock) Tick() (dt, frameTime float64) {
	now := c.provider.Now()
	if !c.started {
		c.start, c.last, c.started = now, now, true
		return 0, 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds(), now.Sub(c.start).Seconds()
}

// Now returns the provider time, used to stamp input
func (c *FrameClock) Now() time.Time {
	return c.provider.Now()
}
