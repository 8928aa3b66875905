package engine

import (
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies the frame's controls to the falling piece. Held keys
// repeat at most once per move or rotate delay.
type InputSystem struct {
	Board    sim.Resource[board]
	Active   sim.Resource[active]
	Status   sim.Resource[status]
	Timers   sim.Resource[timers]
	Rules    sim.Resource[rules]
	Controls sim.Resource[controls]
}

func (s *InputSystem) Execute(frame *sim.Frame) {
	st := s.Status.Get()
	if st.state != StateFalling {
		return
	}

	field := s.Board.Get().field
	piece := &s.Active.Get().piece
	t := s.Timers.Get()
	in := s.Controls.Get().input

	if !t.move.Active() {
		if in.Left {
			piece.MoveHorizontal(-1, field)
			t.move.Activate(frame.Now)
		}
		if in.Right {
			piece.MoveHorizontal(1, field)
			t.move.Activate(frame.Now)
		}
	}

	if in.Rotate && !t.rotate.Active() {
		piece.Rotate(field)
		t.rotate.Activate(frame.Now)
	}

	if in.SoftDrop != st.softDrop {
		st.softDrop = in.SoftDrop
		if st.softDrop {
			t.gravity.Duration = min(s.Rules.Get().softDrop, st.fallSpeed)
		} else {
			t.gravity.Duration = st.fallSpeed
		}
	}
}

// GravitySystem advances the timers and drops the piece when gravity fires.
type GravitySystem struct {
	Board  sim.Resource[board]
	Active sim.Resource[active]
	Status sim.Resource[status]
	Timers sim.Resource[timers]
}

func (s *GravitySystem) Execute(frame *sim.Frame) {
	st := s.Status.Get()
	if st.state != StateFalling {
		return
	}

	t := s.Timers.Get()
	for _, timer := range []*tetris.Timer{&t.gravity, &t.move, &t.rotate} {
		if timer.Update(frame.Now) != tetris.ActionGravity {
			continue
		}
		if s.Active.Get().piece.MoveDown(s.Board.Get().field) == tetris.Locked {
			st.state = StateLocking
		}
	}
}

// LockSystem merges a resting piece, detects game over, clears rows and
// updates the score.
type LockSystem struct {
	Board  sim.Resource[board]
	Active sim.Resource[active]
	Status sim.Resource[status]
	Timers sim.Resource[timers]
	Rules  sim.Resource[rules]
	Score  sim.Resource[tetris.Score]

	log zerolog.Logger
}

func (s *LockSystem) Execute(frame *sim.Frame) {
	st := s.Status.Get()
	if st.state != StateLocking {
		return
	}

	field := s.Board.Get().field
	act := s.Active.Get()
	piece := act.piece
	field.Lock(piece.Cells(), piece.Color())
	act.present = false
	frame.Commands.Emit(PieceLocked{Kind: piece.Kind(), Cells: piece.Cells()})
	s.log.Debug().
		Stringer("kind", piece.Kind()).
		Int("row", piece.Highest()).
		Msg("piece locked")

	score := s.Score.Get()
	if piece.Highest() <= 0 {
		st.state = StateGameOver
		frame.Commands.Emit(GameEnded{Score: *score})
		s.log.Info().
			Uint64("points", score.Points).
			Uint("lines", score.Lines).
			Uint("level", score.Level).
			Msg("game over")
		return
	}

	// Rows are cleared and scored once every system has run this frame.
	frame.Commands.Defer(func() {
		s.clearAndScore(frame.Commands)
	})

	st.state = StateSpawning
}

func (s *LockSystem) clearAndScore(cmds *sim.Commands) {
	cleared := s.Board.Get().field.ClearCompletedRows()
	if cleared > 0 {
		cmds.Emit(RowsCleared{Count: cleared})
		s.log.Debug().Int("rows", cleared).Msg("rows cleared")
	}

	score := s.Score.Get()
	r := s.Rules.Get()
	if !score.Apply(cleared, r.scores, r.cfg.LinesPerLevel) {
		return
	}

	st := s.Status.Get()
	t := s.Timers.Get()
	st.fallSpeed = tetris.Scale(st.fallSpeed, r.cfg.LevelSpeedup)
	t.gravity.Duration = tetris.Scale(t.gravity.Duration, r.cfg.LevelSpeedup)
	cmds.Emit(LevelUp{Level: score.Level})
	s.log.Info().
		Uint("level", score.Level).
		Dur("fall_speed", st.fallSpeed).
		Msg("level up")
}

// SpawnSystem brings the next queued kind into play.
type SpawnSystem struct {
	Board  sim.Resource[board]
	Active sim.Resource[active]
	Status sim.Resource[status]
	Queue  sim.Resource[tetris.Queue]

	log zerolog.Logger
}

func (s *SpawnSystem) Execute(frame *sim.Frame) {
	st := s.Status.Get()
	if st.state != StateSpawning {
		return
	}

	kind := spawn(s.Board.Get(), s.Active.Get(), st, s.Queue.Get())
	frame.Commands.Emit(PieceSpawned{Kind: kind})
	s.log.Debug().Stringer("kind", kind).Msg("piece spawned")
}

func spawn(b *board, a *active, st *status, q *tetris.Queue) tetris.Kind {
	kind := q.Pop()
	a.piece = tetris.NewPiece(kind, tetris.SpawnPoint(b.field.Columns()))
	a.present = true
	st.state = StateFalling
	return kind
}
