package sim_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Counter struct {
	Value int
}

type Trace struct {
	Steps []string
}

type IncrementSystem struct {
	Counter      sim.Resource[Counter]
	Trace        sim.Resource[Trace]
	ExecuteCount int
}

func (s *IncrementSystem) Execute(frame *sim.Frame) {
	s.ExecuteCount++
	s.Counter.Get().Value++
	s.Trace.Get().Steps = append(s.Trace.Get().Steps, "increment")
}

type DoubleSystem struct {
	Counter sim.Resource[Counter]
	Trace   sim.Resource[Trace]
}

func (s *DoubleSystem) Execute(frame *sim.Frame) {
	s.Counter.Get().Value *= 2
	s.Trace.Get().Steps = append(s.Trace.Get().Steps, "double")
}

type clockSystem struct {
	seen []time.Duration
}

func (s *clockSystem) Execute(frame *sim.Frame) {
	s.seen = append(s.seen, frame.Now)
}

type emitSystem struct {
	Trace sim.Resource[Trace]
}

func (s *emitSystem) Execute(frame *sim.Frame) {
	frame.Commands.Defer(func() {
		s.Trace.Get().Steps = append(s.Trace.Get().Steps, "deferred")
		frame.Commands.Emit("from defer")
	})
	frame.Commands.Emit("direct")
	s.Trace.Get().Steps = append(s.Trace.Get().Steps, "emit")
}

type missingResourceSystem struct {
	Counter sim.Resource[Counter]
	found   bool
}

func (s *missingResourceSystem) Execute(frame *sim.Frame) {
	s.found = s.Counter.Get() != nil
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		world := sim.NewWorld()
		sim.Insert(world, Counter{Value: 1})
		sim.Insert(world, Trace{})

		scheduler := sim.NewScheduler(world)
		inc := &IncrementSystem{}
		scheduler.Register(inc)
		scheduler.Register(&DoubleSystem{})

		scheduler.Once(time.Millisecond)
		assert.Equal(t, 4, sim.Lookup[Counter](world).Value)

		scheduler.Once(time.Millisecond)
		assert.Equal(t, 10, sim.Lookup[Counter](world).Value)

		assert.Equal(t, 2, inc.ExecuteCount)
		assert.Equal(t, []string{"increment", "double", "increment", "double"}, sim.Lookup[Trace](world).Steps)
	})

	t.Run("clock accumulates elapsed time", func(t *testing.T) {
		scheduler := sim.NewScheduler(sim.NewWorld())
		clock := &clockSystem{}
		scheduler.Register(clock)

		scheduler.Once(16 * time.Millisecond)
		scheduler.Once(20 * time.Millisecond)
		scheduler.Once(0)

		assert.Equal(t, []time.Duration{16 * time.Millisecond, 36 * time.Millisecond, 36 * time.Millisecond}, clock.seen)
		assert.Equal(t, 36*time.Millisecond, scheduler.Now())
	})

	t.Run("commands flush after every system", func(t *testing.T) {
		world := sim.NewWorld()
		sim.Insert(world, Trace{})
		sim.Insert(world, Counter{})

		scheduler := sim.NewScheduler(world)
		scheduler.Register(&emitSystem{})
		scheduler.Register(&IncrementSystem{})

		events := scheduler.Once(time.Millisecond)

		assert.Equal(t, []any{"direct", "from defer"}, events)
		assert.Equal(t, []string{"emit", "increment", "deferred"}, sim.Lookup[Trace](world).Steps)

		events = scheduler.Once(0)
		assert.Len(t, events, 2, "each frame starts with an empty buffer")
	})

	t.Run("resource inserted after registration is found", func(t *testing.T) {
		world := sim.NewWorld()
		scheduler := sim.NewScheduler(world)
		system := &missingResourceSystem{}
		scheduler.Register(system)

		scheduler.Once(time.Millisecond)
		assert.False(t, system.found)

		sim.Insert(world, Counter{})
		scheduler.Once(time.Millisecond)
		assert.True(t, system.found)
	})

	t.Run("registering a value panics", func(t *testing.T) {
		scheduler := sim.NewScheduler(sim.NewWorld())
		assert.Panics(t, func() { scheduler.Register(valueSystem{}) })
	})
}

type valueSystem struct{}

func (valueSystem) Execute(*sim.Frame) {}

func TestSchedulerStats(t *testing.T) {
	world := sim.NewWorld()
	sim.Insert(world, Counter{})
	sim.Insert(world, Trace{})

	scheduler := sim.NewScheduler(world)
	scheduler.Register(&IncrementSystem{})
	scheduler.Register(&DoubleSystem{})

	stats := scheduler.Stats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, int64(0), stats.Systems[0].ExecutionCount)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 5 {
		scheduler.Once(10 * time.Millisecond)
	}

	stats = scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, 50*time.Millisecond, stats.Clock)
	assert.Equal(t, "IncrementSystem", stats.Systems[0].Name)
	assert.Equal(t, "DoubleSystem", stats.Systems[1].Name)

	for _, s := range stats.Systems {
		assert.Equal(t, int64(5), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
		assert.GreaterOrEqual(t, s.TotalDuration, s.MaxDuration)
	}
}
