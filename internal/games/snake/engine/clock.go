package engine

import "time"

// Clock accumulates frame time and fires one discrete step per full interval.
//
// Time is kept in integer nanoseconds so that frame deltas which sum to an
// interval fire exactly on it. At most one step is fired per Advance call;
// a delta spanning several intervals leaves the excess in the accumulator.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

// NewClock creates a clock with the given tick interval.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Advance adds dt and reports whether a step is due. When it is, one
// interval is consumed and the remainder carries over.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.acc += dt
	}
	if c.acc < c.interval {
		return false
	}
	c.acc -= c.interval
	return true
}

// Progress returns the fraction of the current interval elapsed, in [0, 1].
func (c *Clock) Progress() float64 {
	p := float64(c.acc) / float64(c.interval)
	if p > 1 {
		return 1
	}
	return p
}

// Pending returns the accumulated time not yet consumed by a step.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Interval returns the tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}
