package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// autoplayer mashes the controls at random and keeps a tally of the game.
type autoplayer struct {
	rng *rand.Rand

	ticks   int
	pieces  int
	cleared [4]int
}

func newAutoplayer(rng *rand.Rand) *autoplayer {
	return &autoplayer{rng: rng}
}

func (p *autoplayer) reset() {
	p.ticks = 0
	p.pieces = 0
	p.cleared = [4]int{}
}

func (p *autoplayer) Poll() engine.Input {
	p.ticks++
	return engine.Input{
		Left:     p.rng.Float64() < 0.25,
		Right:    p.rng.Float64() < 0.25,
		Rotate:   p.rng.Float64() < 0.1,
		SoftDrop: p.rng.Float64() < 0.4,
	}
}

func (p *autoplayer) HandleEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case engine.PieceSpawned:
			p.pieces++
		case engine.RowsCleared:
			if ev.Count >= 1 && ev.Count <= len(p.cleared) {
				p.cleared[ev.Count-1]++
			}
		}
	}
}

func (p *autoplayer) result(game *engine.Engine) GameResult {
	return GameResult{
		Score:    game.Score(),
		Ticks:    p.ticks,
		Pieces:   p.pieces,
		Cleared:  p.cleared,
		GameOver: game.GameOver(),
		Clock:    game.Snapshot().Clock,
	}
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Score    tetris.Score
	Ticks    int
	Pieces   int
	Cleared  [4]int
	GameOver bool
	Clock    time.Duration
}
