package engine

import "github.com/plus3/blockfall/tetris"

// Event reports something that happened during a Tick.
type Event interface {
	event()
}

// PieceLocked is emitted when the falling piece merges into the playfield.
type PieceLocked struct {
	Kind  tetris.Kind
	Cells [4]tetris.Point
}

// RowsCleared is emitted when a lock completes one or more rows.
type RowsCleared struct {
	Count int
}

// LevelUp carries the new level.
type LevelUp struct {
	Level uint
}

// PieceSpawned is emitted when a new piece enters the playfield.
type PieceSpawned struct {
	Kind tetris.Kind
}

// GameEnded carries the final score.
type GameEnded struct {
	Score tetris.Score
}

func (PieceLocked) event()  {}
func (RowsCleared) event()  {}
func (LevelUp) event()      {}
func (PieceSpawned) event() {}
func (GameEnded) event()    {}
