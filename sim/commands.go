package sim

// Commands buffers work that must wait until every system has run this frame.
type Commands struct {
	defers []func()
	events []any
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after the last system.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Emit records an event for the caller of Scheduler.Once.
func (c *Commands) Emit(event any) {
	c.events = append(c.events, event)
}

// Flush runs deferred functions in queue order and returns the emitted events,
// resetting the buffer. Events emitted by deferred functions are included.
func (c *Commands) Flush() []any {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}

	events := c.events
	c.defers = c.defers[:0]
	c.events = nil
	return events
}
