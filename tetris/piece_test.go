package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawn(kind tetris.Kind) tetris.Piece {
	return tetris.NewPiece(kind, tetris.SpawnPoint(10))
}

func TestNewPiece(t *testing.T) {
	p := spawn(tetris.KindO)

	assert.Equal(t, tetris.KindO, p.Kind())
	assert.Equal(t, tetris.ShapeOf(tetris.KindO).Color, p.Color())
	assert.Equal(t, [4]tetris.Point{{5, -1}, {5, -2}, {6, -1}, {6, -2}}, p.Cells())
	assert.Equal(t, -2, p.Highest())
	assert.Equal(t, -1, p.Lowest())
}

func TestEveryKindSpawnsInsideColumns(t *testing.T) {
	for k := tetris.Kind(0); k < tetris.KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			p := spawn(k)
			for _, c := range p.Cells() {
				assert.GreaterOrEqual(t, c.X, 0)
				assert.Less(t, c.X, 10)
				assert.Less(t, c.Y, 18)
			}
		})
	}
}

func TestMoveHorizontal(t *testing.T) {
	t.Run("stops at the wall", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindT)

		moves := 0
		for p.MoveHorizontal(-1, f) {
			moves++
		}
		assert.Equal(t, 4, moves)

		before := p.Cells()
		assert.False(t, p.MoveHorizontal(-1, f))
		assert.Equal(t, before, p.Cells())
		for _, c := range p.Cells() {
			assert.GreaterOrEqual(t, c.X, 0)
		}
	})

	t.Run("blocked by a locked cell", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindO)
		require.Equal(t, tetris.Moved, p.MoveDown(f))
		require.Equal(t, tetris.Moved, p.MoveDown(f))
		setCell(f, 1, 4, red)

		before := p.Cells()
		assert.False(t, p.MoveHorizontal(-1, f))
		assert.Equal(t, before, p.Cells())
		assert.True(t, p.MoveHorizontal(1, f))
	})

	t.Run("never leaves the columns", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		for k := tetris.Kind(0); k < tetris.KindCount; k++ {
			p := spawn(k)
			for _, dx := range []int{1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1} {
				p.MoveHorizontal(dx, f)
				for _, c := range p.Cells() {
					require.GreaterOrEqual(t, c.X, 0, "kind %s", k)
					require.Less(t, c.X, 10, "kind %s", k)
				}
			}
		}
	})
}

func TestMoveDown(t *testing.T) {
	f := tetris.NewPlayfield(18, 10)
	p := spawn(tetris.KindO)

	moves := 0
	for p.MoveDown(f) == tetris.Moved {
		moves++
	}

	assert.Equal(t, 18, moves)
	assert.Equal(t, 17, p.Lowest())

	before := p.Cells()
	assert.Equal(t, tetris.Locked, p.MoveDown(f))
	assert.Equal(t, before, p.Cells())
}

func TestMoveDownLandsOnStack(t *testing.T) {
	f := tetris.NewPlayfield(18, 10)
	fillRow(f, 17)
	fillRow(f, 16)
	p := spawn(tetris.KindO)

	for p.MoveDown(f) == tetris.Moved {
	}

	assert.Equal(t, 15, p.Lowest())
}

func TestRotate(t *testing.T) {
	t.Run("O never rotates", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindO)
		before := p.Cells()

		for range 4 {
			assert.False(t, p.Rotate(f))
			assert.Equal(t, before, p.Cells())
		}
	})

	t.Run("T turns clockwise about its pivot", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindT)

		require.True(t, p.Rotate(f))
		assert.Equal(t, [4]tetris.Point{{5, -1}, {5, -2}, {5, 0}, {6, -1}}, p.Cells())
	})

	t.Run("four turns return to start", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		for _, k := range []tetris.Kind{tetris.KindI, tetris.KindJ, tetris.KindL, tetris.KindS, tetris.KindT, tetris.KindZ} {
			p := spawn(k)
			for range 3 {
				p.MoveDown(f)
			}
			start := p.Cells()
			for range 4 {
				require.True(t, p.Rotate(f), "kind %s", k)
			}
			assert.Equal(t, start, p.Cells(), "kind %s", k)
		}
	})

	t.Run("rejected against the wall", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindI)
		for p.MoveHorizontal(-1, f) {
		}
		before := p.Cells()

		assert.False(t, p.Rotate(f))
		assert.Equal(t, before, p.Cells())
	})

	t.Run("rejected against the floor", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		p := spawn(tetris.KindI)
		require.True(t, p.Rotate(f))
		for p.MoveDown(f) == tetris.Moved {
		}
		before := p.Cells()

		assert.False(t, p.Rotate(f))
		assert.Equal(t, before, p.Cells())
	})

	t.Run("rejected on a locked cell", func(t *testing.T) {
		f := tetris.NewPlayfield(18, 10)
		setCell(f, 0, 5, red)
		p := spawn(tetris.KindT)
		before := p.Cells()

		assert.False(t, p.Rotate(f))
		assert.Equal(t, before, p.Cells())
	})
}

func TestShapeOfUnknownKind(t *testing.T) {
	assert.Panics(t, func() { tetris.ShapeOf(tetris.Kind(tetris.KindCount)) })
	assert.Equal(t, "?", tetris.Kind(42).String())
}
