package engine

import "time"

// FrameClock converts wall-clock readings into capped simulation deltas
type FrameClock struct {
	tp   TimeProvider
	last time.Time
	max  time.Duration
}

// NewFrameClock starts measuring from tp's current reading; max <= 0 disables the cap
func NewFrameClock(tp TimeProvider, max time.Duration) *FrameClock {
	return &FrameClock{tp: tp, last: tp.Now(), max: max}
}

// Delta returns seconds since the previous call, clamped to [0, max]
func (c *FrameClock) Delta() float64 {
	now := c.tp.Now()
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if c.max > 0 && d > c.max {
		d = c.max
	}
	return d.Seconds()
}

// Reset discards elapsed time, used after blocking screens
func (c *FrameClock) Reset() {
	c.last = c.tp.Now()
}
