package tetris

// Cell is one grid square. The zero value is empty.
type Cell struct {
	Occupied bool
	Color    Color
}

// Collider answers collision queries against locked geometry.
// Pieces receive one per call and never keep it.
type Collider interface {
	CellOccupied(row, col int) bool
	WouldCollideHorizontal(cells [4]Point, dx int) bool
	WouldCollideVertical(cells [4]Point, dy int) bool
}

// Playfield is the fixed-size grid of locked cells. It is the only owner of
// locked geometry.
type Playfield struct {
	rows    int
	columns int
	cells   []Cell
}

// NewPlayfield creates an empty rows x columns grid.
// It panics when either dimension is not positive.
func NewPlayfield(rows, columns int) *Playfield {
	if rows <= 0 || columns <= 0 {
		panic("playfield dimensions must be positive")
	}
	return &Playfield{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
}

// Rows returns the grid height.
func (f *Playfield) Rows() int { return f.rows }

// Columns returns the grid width.
func (f *Playfield) Columns() int { return f.columns }

func (f *Playfield) inside(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.columns
}

// Cell returns the cell at (row, col), or an empty cell outside the grid.
func (f *Playfield) Cell(row, col int) Cell {
	if !f.inside(row, col) {
		return Cell{}
	}
	return f.cells[row*f.columns+col]
}

// CellOccupied reports whether (row, col) blocks a piece. Columns outside the
// grid and rows at or below the floor are walls; rows above the top never block.
func (f *Playfield) CellOccupied(row, col int) bool {
	if col < 0 || col >= f.columns || row >= f.rows {
		return true
	}
	if row < 0 {
		return false
	}
	return f.cells[row*f.columns+col].Occupied
}

// WouldCollideHorizontal reports whether shifting cells by dx columns hits a
// wall or an occupied cell on the same row.
func (f *Playfield) WouldCollideHorizontal(cells [4]Point, dx int) bool {
	for _, c := range cells {
		if f.CellOccupied(c.Y, c.X+dx) {
			return true
		}
	}
	return false
}

// WouldCollideVertical reports whether shifting cells by dy rows hits the
// floor or an occupied cell.
func (f *Playfield) WouldCollideVertical(cells [4]Point, dy int) bool {
	for _, c := range cells {
		if f.CellOccupied(c.Y+dy, c.X) {
			return true
		}
	}
	return false
}

// Lock writes cells into the grid with the given colour. Cells above the
// visible top have no grid row and are dropped.
func (f *Playfield) Lock(cells [4]Point, color Color) {
	for _, c := range cells {
		if !f.inside(c.Y, c.X) {
			continue
		}
		f.cells[c.Y*f.columns+c.X] = Cell{Occupied: true, Color: color}
	}
}

func (f *Playfield) rowComplete(row int) bool {
	for _, c := range f.cells[row*f.columns : (row+1)*f.columns] {
		if !c.Occupied {
			return false
		}
	}
	return true
}

// CompletedRows returns the indices of every fully occupied row, top to bottom.
func (f *Playfield) CompletedRows() []int {
	var completed []int
	for row := 0; row < f.rows; row++ {
		if f.rowComplete(row) {
			completed = append(completed, row)
		}
	}
	return completed
}

// ClearCompletedRows removes every complete row and drops each surviving cell
// by the number of cleared rows beneath it. It returns the number of rows
// removed.
func (f *Playfield) ClearCompletedRows() int {
	completed := f.CompletedRows()
	if len(completed) == 0 {
		return 0
	}

	cleared := make([]bool, f.rows)
	for _, row := range completed {
		cleared[row] = true
	}

	// shift[row] is how far a surviving cell in row falls.
	shift := make([]int, f.rows)
	below := 0
	for row := f.rows - 1; row >= 0; row-- {
		shift[row] = below
		if cleared[row] {
			below++
		}
	}

	rebuilt := make([]Cell, len(f.cells))
	for row := 0; row < f.rows; row++ {
		if cleared[row] {
			continue
		}
		for col := 0; col < f.columns; col++ {
			cell := f.cells[row*f.columns+col]
			if !cell.Occupied {
				continue
			}
			rebuilt[(row+shift[row])*f.columns+col] = cell
		}
	}
	f.cells = rebuilt

	return len(completed)
}

// OccupiedCount returns the number of occupied cells.
func (f *Playfield) OccupiedCount() int {
	n := 0
	for _, c := range f.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Snapshot returns a deep copy of the grid indexed [row][col].
func (f *Playfield) Snapshot() [][]Cell {
	grid := make([][]Cell, f.rows)
	for row := range grid {
		grid[row] = make([]Cell, f.columns)
		copy(grid[row], f.cells[row*f.columns:(row+1)*f.columns])
	}
	return grid
}

// Reset empties the grid.
func (f *Playfield) Reset() {
	clear(f.cells)
}
