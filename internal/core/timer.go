package core

import "time"

// Accumulator converts per-frame elapsed time into discrete steps at a fixed
// interval. At most one step is reported per Advance call; surplus time
// carries over to later frames.
type Accumulator struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewAccumulator constructs an Accumulator that fires every interval.
func NewAccumulator(interval time.Duration) *Accumulator {
	a := &Accumulator{}
	a.SetInterval(interval)
	return a
}

// SetInterval changes the step interval. Non-positive values fall back to
// one step per 60ms.
func (a *Accumulator) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Millisecond
	}
	a.interval = interval
}

// Interval reports the configured step interval.
func (a *Accumulator) Interval() time.Duration { return a.interval }

// Elapsed reports the time accumulated towards the next step.
func (a *Accumulator) Elapsed() time.Duration { return a.elapsed }

// Advance adds delta and reports whether the accumulated time exceeded the
// interval, in which case one interval is consumed.
func (a *Accumulator) Advance(delta time.Duration) bool {
	if delta > 0 {
		a.elapsed += delta
	}
	if a.elapsed > a.interval {
		a.elapsed -= a.interval
		return true
	}
	return false
}

// Reset drops any accumulated time.
func (a *Accumulator) Reset() { a.elapsed = 0 }
