package game

// Collides reports whether p overlaps a settled cell or leaves the board
// through the left, right or bottom edge. Cells above row 0 are allowed so a
// piece can spawn and rotate partly off the top.
func Collides(b *Board, p Piece) bool {
	for pt := range p.Blocks() {
		if pt.X < 0 || pt.X >= b.cols || pt.Y >= b.rows {
			return true
		}

		if pt.Y >= 0 && b.cells[pt.Y][pt.X] != 0 {
			return true
		}
	}

	return false
}
