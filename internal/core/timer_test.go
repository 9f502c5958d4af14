package core

import (
	"testing"
	"time"
)

// firstFire returns the tick on which a fresh timer first fires.
func firstFire(t *testing.T, timer *Timer, limit int) int {
	t.Helper()
	for tick := 1; tick <= limit; tick++ {
		if timer.Tick() > 0 {
			return tick
		}
	}
	t.Fatalf("timer did not fire within %d ticks", limit)
	return 0
}

func TestTimerFiresOnExactTick(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		tickRate int
		want     int
	}{
		{"pipes at 60 Hz", 1800 * time.Millisecond, 60, 108},
		{"enemy at 60 Hz", 7000 * time.Millisecond, 60, 420},
		{"reload at 60 Hz", 1000 * time.Millisecond, 60, 60},
		{"reload at 144 Hz", 1000 * time.Millisecond, 144, 144},
		{"pipes at 30 Hz", 1800 * time.Millisecond, 30, 54},
		{"default rate", 1000 * time.Millisecond, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.interval, tt.tickRate)
			if got := firstFire(t, timer, 10*tt.want+10); got != tt.want {
				t.Errorf("first fire on tick %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestTimerKeepsCadence(t *testing.T) {
	timer := NewTimer(1800*time.Millisecond, 60)

	fired := 0
	for i := 0; i < 108*10; i++ {
		fired += timer.Tick()
	}
	if fired != 10 {
		t.Errorf("fired %d times in 1080 ticks, expected 10", fired)
	}
}

func TestTimerShortPeriodFiresMultipleTimes(t *testing.T) {
	timer := NewTimer(5*time.Millisecond, 60)
	// 1/60 s holds three 5 ms periods with a remainder
	if got := timer.Tick(); got != 3 {
		t.Errorf("Tick() = %d, expected 3", got)
	}
}

func TestTimerSetIntervalKeepsProgress(t *testing.T) {
	timer := NewTimer(time.Second, 60)
	for i := 0; i < 30; i++ {
		timer.Tick()
	}
	timer.SetInterval(600 * time.Millisecond)
	if got := firstFire(t, timer, 100); got != 6 {
		t.Errorf("fired %d ticks after the change, expected 6", got)
	}
}

func TestTimerDisabled(t *testing.T) {
	timer := NewTimer(0, 60)
	for i := 0; i < 1000; i++ {
		if got := timer.Tick(); got != 0 {
			t.Fatalf("zero-interval timer fired %d times", got)
		}
	}
}
