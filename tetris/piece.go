package tetris

// MoveResult is the outcome of a gravity step.
type MoveResult uint8

const (
	// Moved means the piece dropped one row.
	Moved MoveResult = iota
	// Locked means the piece is resting and must be merged into the playfield.
	Locked
)

func (r MoveResult) String() string {
	if r == Locked {
		return "locked"
	}
	return "moved"
}

// Piece is the falling tetromino. Its four cells are absolute grid
// coordinates; cell 0 is the rotation pivot.
type Piece struct {
	kind  Kind
	color Color
	cells [4]Point
}

// NewPiece places a kind's catalog offsets at spawn.
func NewPiece(kind Kind, spawn Point) Piece {
	shape := ShapeOf(kind)
	p := Piece{kind: kind, color: shape.Color}
	for i, off := range shape.Offsets {
		p.cells[i] = off.Add(spawn)
	}
	return p
}

// SpawnPoint is where new pieces enter a field of the given width: the middle
// column, one row above the visible top.
func SpawnPoint(columns int) Point {
	return Point{X: columns / 2, Y: -1}
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the colour the piece leaves behind when it locks.
func (p *Piece) Color() Color { return p.color }

// Cells returns a copy of the piece's grid cells.
func (p *Piece) Cells() [4]Point { return p.cells }

// Highest returns the smallest row index among the cells.
func (p *Piece) Highest() int {
	top := p.cells[0].Y
	for _, c := range p.cells[1:] {
		top = min(top, c.Y)
	}
	return top
}

// Lowest returns the largest row index among the cells.
func (p *Piece) Lowest() int {
	bottom := p.cells[0].Y
	for _, c := range p.cells[1:] {
		bottom = max(bottom, c.Y)
	}
	return bottom
}

func (p *Piece) shift(dx, dy int) {
	for i := range p.cells {
		p.cells[i].X += dx
		p.cells[i].Y += dy
	}
}

// MoveHorizontal shifts the piece dx columns unless that would collide.
// It reports whether the piece moved.
func (p *Piece) MoveHorizontal(dx int, field Collider) bool {
	if field.WouldCollideHorizontal(p.cells, dx) {
		return false
	}
	p.shift(dx, 0)
	return true
}

// MoveDown drops the piece one row, or reports Locked when it is resting.
func (p *Piece) MoveDown(field Collider) MoveResult {
	if field.WouldCollideVertical(p.cells, 1) {
		return Locked
	}
	p.shift(0, 1)
	return Moved
}

// Rotate turns the piece 90 degrees clockwise about its pivot. The O piece
// never rotates. A rotation that leaves the columns, passes the floor or
// overlaps a locked cell is rejected and the piece is left unchanged.
func (p *Piece) Rotate(field Collider) bool {
	if p.kind == KindO {
		return false
	}

	pivot := p.cells[0]
	var rotated [4]Point
	for i, c := range p.cells {
		dx, dy := c.X-pivot.X, c.Y-pivot.Y
		rotated[i] = Point{X: pivot.X - dy, Y: pivot.Y + dx}
		if field.CellOccupied(rotated[i].Y, rotated[i].X) {
			return false
		}
	}

	p.cells = rotated
	return true
}
