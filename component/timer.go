package component

import "time"

// Timer counts elapsed time toward a duration
// Repeating timers wrap on completion; one-shot timers saturate
type Timer struct {
	Elapsed   time.Duration
	Duration  time.Duration
	Repeating bool
}

// NewTimer creates a timer with no elapsed progress
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{Duration: d, Repeating: repeating}
}

// Tick advances the timer and reports whether it completed on this call
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Duration <= 0 {
		return false
	}
	before := t.Elapsed
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Repeating {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = t.Duration
	}
	return before < t.Duration
}

// Reset clears elapsed progress
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Fraction returns completion in [0,1] for display
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 0
	}
	f := float64(t.Elapsed) / float64(t.Duration)
	if f > 1 {
		return 1
	}
	return f
}
