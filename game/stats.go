package game

import "github.com/kamstrup/intmap"

// Stats accumulates per-session counters. It is reset by Session.Start.
type Stats struct {
	locks         int
	lines         int
	cellsAboveTop int
	clears        *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		clears: intmap.New[int, int](KindCount),
	}
}

func (s *Stats) record(lines, dropped int) {
	s.locks++
	s.lines += lines
	s.cellsAboveTop += dropped
	if lines > 0 {
		n, _ := s.clears.Get(lines)
		s.clears.Put(lines, n+1)
	}
}

// Locks is the number of pieces locked into the board.
func (s *Stats) Locks() int { return s.locks }

// Lines is the total number of rows cleared.
func (s *Stats) Lines() int { return s.lines }

// CellsAboveTop counts cells dropped because they locked above row 0.
func (s *Stats) CellsAboveTop() int { return s.cellsAboveTop }

// Clears returns how many locks cleared exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}
