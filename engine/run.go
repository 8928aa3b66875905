package engine

import (
	"context"
	"time"
)

// InputSource supplies the controls for each tick of Run.
type InputSource interface {
	Poll() Input
}

// EventHandler may be implemented by an InputSource to observe the events of
// every tick.
type EventHandler interface {
	HandleEvents(events []Event)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// Run ticks the engine every interval until ctx is done or the game ends.
// Each tick advances the game clock by interval regardless of scheduling
// jitter. It returns ctx.Err() when cancelled and nil at game over.
func (e *Engine) Run(ctx context.Context, interval time.Duration, source InputSource) error {
	handler, _ := source.(EventHandler)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !e.GameOver() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			events := e.Tick(interval, source.Poll())
			if handler != nil && len(events) > 0 {
				handler.HandleEvents(events)
			}
		}
	}

	e.log.Debug().Dur("clock", e.scheduler.Now()).Msg("run finished")
	return nil
}
