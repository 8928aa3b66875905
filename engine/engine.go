// Package engine runs a game of falling blocks. The caller feeds it elapsed
// time and control state through Tick and reads the playfield, falling piece,
// preview and score back out.
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/tetris"
)

// Engine owns one game. It is not safe for concurrent use.
type Engine struct {
	cfg       config.Config
	rng       tetris.Randomizer
	log       zerolog.Logger
	world     *sim.World
	scheduler *sim.Scheduler

	board    *board
	active   *active
	status   *status
	timers   *timers
	controls *controls
	score    *tetris.Score
	queue    *tetris.Queue
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandomizer sets the source of piece draws.
func WithRandomizer(rng tetris.Randomizer) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New validates cfg and starts a game with the first piece already falling.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e.world = sim.NewWorld()
	sim.Insert(e.world, newRules(cfg))
	e.board = sim.Insert(e.world, board{field: tetris.NewPlayfield(cfg.Rows, cfg.Columns)})
	e.active = sim.Insert(e.world, active{})
	e.status = sim.Insert(e.world, status{})
	e.timers = sim.Insert(e.world, timers{})
	e.controls = sim.Insert(e.world, controls{})
	e.score = sim.Insert(e.world, tetris.Score{})
	e.queue = sim.Insert(e.world, tetris.Queue{})

	e.scheduler = sim.NewScheduler(e.world)
	e.scheduler.Register(&InputSystem{})
	e.scheduler.Register(&GravitySystem{})
	e.scheduler.Register(&LockSystem{log: e.log})
	e.scheduler.Register(&SpawnSystem{log: e.log})

	e.start()
	return e, nil
}

// start puts a fresh game into the existing resources.
func (e *Engine) start() {
	e.board.field.Reset()
	*e.active = active{}
	*e.status = status{state: StateSpawning, fallSpeed: e.cfg.Gravity}
	*e.timers = newTimers(e.cfg, e.scheduler.Now())
	*e.controls = controls{}
	*e.score = tetris.NewScore()
	*e.queue = tetris.NewQueue(e.cfg.QueueLength, e.rng)

	kind := spawn(e.board, e.active, e.status, e.queue)
	e.log.Debug().
		Int("rows", e.cfg.Rows).
		Int("columns", e.cfg.Columns).
		Stringer("kind", kind).
		Msg("game started")
}

// Reset abandons the current game and starts a new one with the same config
// and randomizer.
func (e *Engine) Reset() {
	e.start()
}

// Tick advances the game by elapsed with the given controls held and returns
// what happened. After game over it does nothing.
func (e *Engine) Tick(elapsed time.Duration, in Input) []Event {
	if e.status.state == StateGameOver {
		return nil
	}

	e.controls.input = in
	emitted := e.scheduler.Once(elapsed)
	if len(emitted) == 0 {
		return nil
	}

	events := make([]Event, 0, len(emitted))
	for _, ev := range emitted {
		if event, ok := ev.(Event); ok {
			events = append(events, event)
		}
	}
	return events
}

// Cell returns the locked cell at (row, col). Coordinates outside the grid
// read as empty.
func (e *Engine) Cell(row, col int) tetris.Cell {
	return e.board.field.Cell(row, col)
}

// Grid returns a copy of the locked cells, top row first.
func (e *Engine) Grid() [][]tetris.Cell {
	return e.board.field.Snapshot()
}

// Piece returns the falling piece, if there is one.
func (e *Engine) Piece() (tetris.Piece, bool) {
	return e.active.piece, e.active.present
}

// Next returns the upcoming kinds, front first.
func (e *Engine) Next() []tetris.Kind {
	return e.queue.Peek()
}

// Score returns the lines, points and level so far.
func (e *Engine) Score() tetris.Score { return *e.score }

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.status.state }

// GameOver reports whether the game has ended. Tick is a no-op from then on.
func (e *Engine) GameOver() bool { return e.status.state == StateGameOver }

// Snapshot is a read-only copy of everything a presentation layer draws.
type Snapshot struct {
	State    State
	Clock    time.Duration
	Grid     [][]tetris.Cell
	Piece    tetris.Piece
	HasPiece bool
	Next     []tetris.Kind
	Score    tetris.Score
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.status.state,
		Clock:    e.scheduler.Now(),
		Grid:     e.Grid(),
		Piece:    e.active.piece,
		HasPiece: e.active.present,
		Next:     e.Next(),
		Score:    *e.score,
	}
}

// Stats returns per-system timings and the resources held by the engine.
func (e *Engine) Stats() Stats {
	return Stats{
		Scheduler: e.scheduler.Stats(),
		World:     e.world.Stats(),
	}
}

// Stats groups the engine's runtime statistics.
type Stats struct {
	Scheduler *sim.SchedulerStats
	World     sim.WorldStats
}
