package engine_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

type alwaysT struct{}

func (alwaysT) IntN(int) int { return int(tetris.KindT) }

func ExampleEngine() {
	game, err := engine.New(config.Default(), engine.WithRandomizer(alwaysT{}))
	if err != nil {
		panic(err)
	}

	game.Tick(400*time.Millisecond, engine.Input{Left: true})

	piece, _ := game.Piece()
	fmt.Println(game.State(), piece.Kind(), piece.Cells()[0])

	for !game.GameOver() {
		for _, ev := range game.Tick(400*time.Millisecond, engine.Input{}) {
			if ended, ok := ev.(engine.GameEnded); ok {
				fmt.Println("final level", ended.Score.Level)
			}
		}
	}
	fmt.Println(game.State())
	// Output:
	// falling T {4 0}
	// final level 1
	// game over
}
