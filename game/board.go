package game

// Cell is a board or shape cell. Zero is empty; 1..7 is the colour index of
// the kind that settled there.
type Cell uint8

// Board is the fixed grid of settled cells. Row 0 is the top.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewBoard returns an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Cell returns the value at (x, y), or 0 outside the grid.
func (b *Board) Cell(x, y int) Cell {
	if !b.inside(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Occupied reports whether (x, y) holds a settled cell.
func (b *Board) Occupied(x, y int) bool {
	return b.Cell(x, y) != 0
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// IsRowComplete reports whether every cell in row y is filled.
func (b *Board) IsRowComplete(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y] {
		if c == 0 {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every complete row, shifting the rows above it
// down and inserting empty rows at the top. The scan runs bottom to top and
// re-examines an index after a removal, so stacked clears are handled in one
// pass. It returns the number of rows removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.IsRowComplete(y) {
			y--
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]Cell, b.cols)
		cleared++
	}
	return cleared
}

// Lock writes the piece colour under each filled cell of its shape. Cells
// above row 0 are dropped; the count of dropped cells is returned.
func (b *Board) Lock(p Piece) int {
	dropped := 0
	for pt := range p.Blocks() {
		if pt.Y < 0 {
			dropped++
			continue
		}
		if !b.inside(pt.X, pt.Y) {
			continue
		}
		b.cells[pt.Y][pt.X] = p.Color
	}
	return dropped
}

// Grid returns a copy of the cells, indexed [row][col].
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.rows)
	for y := range b.cells {
		out[y] = append([]Cell(nil), b.cells[y]...)
	}
	return out
}

// Filled counts the settled cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

// Height is the number of rows from the highest settled cell to the bottom.
func (b *Board) Height() int {
	for y, row := range b.cells {
		for _, c := range row {
			if c != 0 {
				return b.rows - y
			}
		}
	}
	return 0
}
