package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	const rows, cols = 20, 10
	o := NewPiece(KindO, cols)
	i := NewPiece(KindI, cols)
	vertical := i.Rotated()

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"spawn position", o, false},
		{"left edge inside", Piece{Shape: o.Shape, X: 0}, false},
		{"past left edge", Piece{Shape: o.Shape, X: -1}, true},
		{"right edge inside", Piece{Shape: o.Shape, X: cols - 2}, false},
		{"past right edge", Piece{Shape: o.Shape, X: cols - 1}, true},
		{"resting on floor", Piece{Shape: o.Shape, X: 4, Y: rows - 2}, false},
		{"through floor", Piece{Shape: o.Shape, X: 4, Y: rows - 1}, true},
		{"above top", Piece{Shape: o.Shape, X: 4, Y: -1}, false},
		{"entirely above top", Piece{Shape: o.Shape, X: 4, Y: -5}, false},
		{"empty columns may hang off left", Piece{Shape: vertical.Shape, X: -2}, false},
		{"filled column off left", Piece{Shape: vertical.Shape, X: -3}, true},
		{"horizontal I off left", Piece{Shape: i.Shape, X: -1}, true},
		{"horizontal I off right", Piece{Shape: i.Shape, X: cols - 3}, true},
		{"empty bottom rows of I below floor", Piece{Shape: i.Shape, X: 0, Y: rows - 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(rows, cols)
			assert.Equal(t, tt.want, Collides(b, tt.piece))
		})
	}
}

func TestCollidesWithSettledCells(t *testing.T) {
	b := NewBoard(20, 10)
	b.cells[10][5] = 3

	assert.True(t, Collides(b, Piece{Shape: BaseShape(KindO), X: 4, Y: 9}))
	assert.True(t, Collides(b, Piece{Shape: BaseShape(KindO), X: 5, Y: 10}))
	assert.False(t, Collides(b, Piece{Shape: BaseShape(KindO), X: 6, Y: 9}))
	assert.False(t, Collides(b, Piece{Shape: BaseShape(KindO), X: 4, Y: 7}))
}

func TestCollidesDoesNotMutate(t *testing.T) {
	b := NewBoard(20, 10)
	fillRow(b, 19, 2, 3)
	before := b.Grid()
	p := NewPiece(KindT, 10).Translated(0, 18)

	Collides(b, p)

	assert.Equal(t, before, b.Grid())
	assert.Equal(t, BaseShape(KindT), p.Shape)
}
