package core

import "time"

// ThrottleState identifies a phase of the throttle state machine.
type ThrottleState int

const (
	// ThrottleIdle means no recent execution; the next Tick fires
	// immediately.
	ThrottleIdle ThrottleState = iota
	// ThrottleCooldown means an execution happened within the last period
	// and no request has arrived since.
	ThrottleCooldown
	// ThrottleScheduled means a request arrived inside the cooldown window
	// and is parked until the window elapses.
	ThrottleScheduled
)

// Throttle spaces executions at least one period apart. It is meant to be
// polled from a frame callback that runs faster than the tick period: the
// first Tick fires immediately, a Tick landing inside the window parks in
// Scheduled, and the first Tick at or past the window boundary fires
// exactly once. The clock is passed in so the machine is testable.
type Throttle struct {
	period time.Duration
	state  ThrottleState
	last   time.Time
}

// NewThrottle constructs a Throttle with the given minimum spacing.
func NewThrottle(period time.Duration) *Throttle {
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	return &Throttle{period: period}
}

// Tick registers an execution request at the given instant and reports
// whether the caller should execute now.
func (t *Throttle) Tick(now time.Time) bool {
	if t.state == ThrottleIdle || now.Sub(t.last) >= t.period {
		t.last = now
		t.state = ThrottleCooldown
		return true
	}
	t.state = ThrottleScheduled
	return false
}

// Remaining returns how long until a parked request may fire. Zero when
// nothing is parked.
func (t *Throttle) Remaining(now time.Time) time.Duration {
	if t.state != ThrottleScheduled {
		return 0
	}
	rem := t.period - now.Sub(t.last)
	if rem < 0 {
		return 0
	}
	return rem
}

// Settle moves Cooldown back to Idle once a full window has passed with no
// request, so the next request fires without waiting. Call it on frames
// that make no execution request.
func (t *Throttle) Settle(now time.Time) {
	if t.state == ThrottleCooldown && now.Sub(t.last) >= t.period {
		t.state = ThrottleIdle
	}
}

// Reset returns the machine to Idle regardless of phase.
func (t *Throttle) Reset() {
	t.state = ThrottleIdle
}

// State exposes the current phase.
func (t *Throttle) State() ThrottleState { return t.state }
