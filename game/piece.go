package game

import (
	"iter"
	"math/rand/v2"
)

// Piece is a shape placed on the board. X and Y locate the top-left corner of
// the shape matrix and may be negative while the piece hangs above the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Cell
	X, Y  int
}

// NewPiece returns k in its base orientation, centered over a board of the
// given width.
func NewPiece(k Kind, cols int) Piece {
	shape := BaseShape(k)
	return Piece{
		Kind:  k,
		Shape: shape,
		Color: Cell(k),
		X:     cols/2 - shape.Width()/2,
		Y:     0,
	}
}

// Translated returns a copy moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned 90 degrees clockwise in place. No offset
// correction is applied.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Blocks yields the board coordinates of the filled cells.
func (p Piece) Blocks() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for b := range p.Shape.Blocks() {
			if !yield(Point{X: p.X + b.X, Y: p.Y + b.Y}) {
				return
			}
		}
	}
}

// Clone returns a copy that does not share the shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Spawner produces pieces of uniformly random kind. Repeats are allowed.
type Spawner struct {
	cols int
	rng  *rand.Rand
}

// NewSpawner returns a spawner for a board cols wide. A nil src seeds from the
// global generator.
func NewSpawner(cols int, src rand.Source) *Spawner {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Spawner{
		cols: cols,
		rng:  rand.New(src),
	}
}

// Spawn returns a new piece at the top-center of the board. It does not check
// for collision.
func (s *Spawner) Spawn() Piece {
	k := Kind(s.rng.IntN(KindCount) + 1)
	return NewPiece(k, s.cols)
}
