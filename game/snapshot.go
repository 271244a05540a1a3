package game

import "time"

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the session.
type Snapshot struct {
	Grid         [][]Cell
	Current      Piece
	Next         Piece
	Score        int
	Level        int
	Lines        int
	Remaining    int
	State        State
	Reason       EndReason
	DropInterval time.Duration
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:         s.board.Grid(),
		Current:      s.current.Clone(),
		Next:         s.next.Clone(),
		Score:        s.score,
		Level:        s.level,
		Lines:        s.stats.Lines(),
		Remaining:    s.remaining,
		State:        s.state,
		Reason:       s.reason,
		DropInterval: s.dropInterval,
	}
}

// Rows is the number of rows in the grid.
func (sn Snapshot) Rows() int { return len(sn.Grid) }

// Cols is the number of columns in the grid.
func (sn Snapshot) Cols() int {
	if len(sn.Grid) == 0 {
		return 0
	}
	return len(sn.Grid[0])
}

// Time is the remaining time as MM:SS.
func (sn Snapshot) Time() string { return FormatTime(sn.Remaining) }

// Ghost returns the current piece moved down to where a hard drop would land
// it.
func (sn Snapshot) Ghost() Piece {
	board := &Board{rows: sn.Rows(), cols: sn.Cols(), cells: sn.Grid}
	ghost := sn.Current
	if _, _, ok := ghost.Shape.Extent(); !ok {
		return ghost
	}
	for !Collides(board, ghost.Translated(0, 1)) {
		ghost = ghost.Translated(0, 1)
	}
	return ghost
}
