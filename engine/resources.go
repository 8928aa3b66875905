package engine

import (
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

// State is the phase of the engine's lifecycle.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the level state of the controls for one tick.
type Input struct {
	Left     bool
	Right    bool
	Rotate   bool
	SoftDrop bool
}

// board holds the locked cells.
type board struct {
	field *tetris.Playfield
}

// active is the falling piece, absent while spawning or after game over.
type active struct {
	piece   tetris.Piece
	present bool
}

type status struct {
	state State
	// fallSpeed is the gravity period for the current level, ignoring soft drop.
	fallSpeed time.Duration
	softDrop  bool
}

type timers struct {
	gravity tetris.Timer
	move    tetris.Timer
	rotate  tetris.Timer
}

// rules is the validated configuration with derived values precomputed.
type rules struct {
	cfg      config.Config
	scores   tetris.ScoreTable
	softDrop time.Duration
}

// controls carries the input of the frame being executed.
type controls struct {
	input Input
}

func newRules(cfg config.Config) rules {
	return rules{
		cfg:      cfg,
		scores:   cfg.Scores(),
		softDrop: cfg.SoftDropGravity(),
	}
}

func newTimers(cfg config.Config, now time.Duration) timers {
	t := timers{
		gravity: tetris.NewTimer(cfg.Gravity, true, tetris.ActionGravity),
		move:    tetris.NewTimer(cfg.MoveDelay, false, tetris.ActionNone),
		rotate:  tetris.NewTimer(cfg.RotateDelay, false, tetris.ActionNone),
	}
	t.gravity.Activate(now)
	return t
}
