package anim

import "time"

// OneShot is a single-shot timer advanced by the same frame steps as the
// animations, so firing happens on the event loop without a goroutine.
type OneShot struct {
	interval  time.Duration
	remaining time.Duration
	armed     bool
}

// NewOneShot creates a disarmed timer
func NewOneShot(interval time.Duration) *OneShot {
	return &OneShot{interval: interval}
}

// Interval returns the configured interval
func (t *OneShot) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the interval used by the next Arm call
func (t *OneShot) SetInterval(interval time.Duration) {
	t.interval = interval
}

// Armed reports whether the timer is counting down
func (t *OneShot) Armed() bool {
	return t.armed
}

// Arm (re)starts the countdown from the full interval
func (t *OneShot) Arm() {
	t.remaining = t.interval
	t.armed = true
}

// Disarm cancels a pending firing
func (t *OneShot) Disarm() {
	t.armed = false
	t.remaining = 0
}

// Step advances the countdown and returns true exactly once, when it expires
func (t *OneShot) Step(dt time.Duration) bool {
	if !t.armed {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	t.remaining = 0
	return true
}
