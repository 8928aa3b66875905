package tetris

// ScoreTable holds the base points for clearing 1, 2, 3 and 4 rows at once.
type ScoreTable [4]uint64

// DefaultScoreTable is the classic 50/100/500/1000 table.
var DefaultScoreTable = ScoreTable{50, 100, 500, 1000}

// Points returns the base points for clearing rows rows, or 0 outside 1-4.
func (t ScoreTable) Points(rows int) uint64 {
	if rows < 1 || rows > len(t) {
		return 0
	}
	return t[rows-1]
}

// Score tracks cleared lines, points and level.
type Score struct {
	Lines  uint
	Points uint64
	Level  uint
}

// NewScore returns the starting score: no lines, no points, level 1.
func NewScore() Score {
	return Score{Level: 1}
}

// Apply credits a clear of rows rows and reports whether the level went up.
// The level rises by at most one per call, when lines/linesPerLevel exceeds
// the current level.
func (s *Score) Apply(rows int, table ScoreTable, linesPerLevel uint) bool {
	if rows <= 0 {
		return false
	}

	s.Lines += uint(rows)
	s.Points += table.Points(rows) * uint64(s.Level)

	if float64(s.Lines)/float64(linesPerLevel) > float64(s.Level) {
		s.Level++
		return true
	}
	return false
}
