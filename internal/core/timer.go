package core

import "time"

// Timer is a periodic timer driven by simulated ticks rather than the wall clock.
// The simulation advances it once per tick, which keeps a seeded run
// reproducible regardless of how fast frames are actually presented.
//
// Progress is kept in units of 1/tickRate nanoseconds, so one tick is exactly
// one second's worth of nanoseconds and no rounding creeps in at rates that
// do not divide a second evenly.
type Timer struct {
	interval time.Duration
	tickRate int64
	elapsed  int64
}

// NewTimer creates a timer that fires every interval at the given tick rate.
// A non-positive interval produces a timer that never fires.
func NewTimer(interval time.Duration, tickRate int) *Timer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Timer{interval: interval, tickRate: int64(tickRate)}
}

// SetInterval changes the firing period without losing progress
// through the current period.
func (t *Timer) SetInterval(interval time.Duration) {
	t.interval = interval
}

// Tick moves the timer forward by one tick and returns how many times it fired.
// A period shorter than a tick fires more than once, the same as a queue of
// timer events delivered in a single frame.
func (t *Timer) Tick() int {
	if t.interval <= 0 {
		return 0
	}
	period := int64(t.interval) * t.tickRate
	t.elapsed += int64(time.Second)
	fired := 0
	for t.elapsed >= period {
		t.elapsed -= period
		fired++
	}
	return fired
}
