package tetris

import (
	"math"
	"time"
)

// Action is what a timer asks its owner to do when it fires.
type Action uint8

const (
	ActionNone Action = iota
	ActionGravity
)

func (a Action) String() string {
	switch a {
	case ActionGravity:
		return "gravity"
	default:
		return "none"
	}
}

// never marks a timer that has no recorded start.
const never time.Duration = -1

// Timer is a countdown measured against a caller-supplied clock. A repeating
// timer restarts from the time it fired, so lateness does not accumulate past
// a single period.
type Timer struct {
	Duration time.Duration
	Repeat   bool
	Action   Action

	active bool
	start  time.Duration
}

// NewTimer returns an inactive timer.
func NewTimer(d time.Duration, repeat bool, action Action) Timer {
	return Timer{Duration: d, Repeat: repeat, Action: action, start: never}
}

// Activate starts the countdown at now.
func (t *Timer) Activate(now time.Duration) {
	t.active = true
	t.start = now
}

// Deactivate stops the countdown and forgets its start.
func (t *Timer) Deactivate() {
	t.active = false
	t.start = never
}

// Active reports whether the countdown is running.
func (t *Timer) Active() bool { return t.active }

// Update fires the timer once now-start reaches Duration. It returns the
// timer's Action when it fires and ActionNone otherwise.
func (t *Timer) Update(now time.Duration) Action {
	if !t.active || now-t.start < t.Duration {
		return ActionNone
	}

	fired := ActionNone
	if t.start != never {
		fired = t.Action
	}

	t.Deactivate()
	if t.Repeat {
		t.Activate(now)
	}
	return fired
}

// Scale multiplies d by f, rounding to the nearest nanosecond.
func Scale(d time.Duration, f float64) time.Duration {
	return time.Duration(math.Round(float64(d) * f))
}
