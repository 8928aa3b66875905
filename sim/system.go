package sim

import "time"

// System is one step of a frame. Implementations may declare exported
// Resource fields, which the Scheduler initialises, and keep their own state
// between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what every system sees during one Scheduler.Once call.
type Frame struct {
	// Now is the scheduler clock, the sum of every elapsed time passed to Once.
	Now      time.Duration
	Commands *Commands
}

func newFrame(now time.Duration) *Frame {
	return &Frame{
		Now:      now,
		Commands: newCommands(),
	}
}
