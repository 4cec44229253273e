// Package widget provides the fade primitives and buttons menu screens are built from.
package widget

// Timer counts elapsed time up to a duration and calls OnEnd once when it
// is reached. It stays finished until Reset.
type Timer struct {
	// OnEnd is called on the update that reaches the duration.
	OnEnd func()

	duration float64
	elapsed  float64
	done     bool
}

// NewTimer creates a timer for duration seconds.
// A zero duration ends on the first Update.
func NewTimer(duration float64) *Timer {
	return &Timer{duration: max(duration, 0)}
}

// Update advances the timer by dt seconds.
func (t *Timer) Update(dt float64) {
	if t.done {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		return
	}

	t.elapsed = t.duration
	t.done = true
	if t.OnEnd != nil {
		t.OnEnd()
	}
}

// Reset rewinds the timer so it can end again.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.done = false
}

// Done reports whether the timer has ended since the last Reset.
func (t *Timer) Done() bool {
	return t.done
}

// Elapsed returns the elapsed time in seconds.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured duration in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}
