package game

import "iter"

// Kind identifies one of the seven tetrominoes. Kind 0 is the empty sentinel
// and is never spawned.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT
)

// KindCount is the number of spawnable kinds.
const KindCount = 7

// maxShapeSize is the side of the largest base matrix (I).
const maxShapeSize = 4

var kindNames = [...]string{"-", "I", "J", "L", "O", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Point is a cell coordinate. In a shape it is relative to the top-left
// corner; on a board it is absolute.
type Point struct {
	X, Y int
}

// Shape is a rectangular matrix of cells in one orientation. Nonzero cells are
// filled. Shapes are treated as immutable: Rotate and Clone allocate.
type Shape [][]Cell

var baseShapes = [KindCount + 1]Shape{
	KindNone: {},
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindO: {
		{4, 4},
		{4, 4},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindZ: {
		{6, 6, 0},
		{0, 6, 6},
		{0, 0, 0},
	},
	KindT: {
		{0, 7, 0},
		{7, 7, 7},
		{0, 0, 0},
	},
}

// BaseShape returns the spawn orientation of k. The result is shared and must
// not be modified.
func BaseShape(k Kind) Shape {
	if int(k) >= len(baseShapes) {
		return Shape{}
	}
	return baseShapes[k]
}

// Height is the number of rows in the matrix.
func (sh Shape) Height() int {
	return len(sh)
}

// Width is the number of columns in the matrix.
func (sh Shape) Width() int {
	if len(sh) == 0 {
		return 0
	}
	return len(sh[0])
}

// Rotate returns the shape turned 90 degrees clockwise. A rows x cols matrix
// becomes cols x rows.
func (sh Shape) Rotate() Shape {
	rows := sh.Height()
	cols := sh.Width()

	rotated := make(Shape, cols)
	for x := range rotated {
		rotated[x] = make([]Cell, rows)
	}

	for y := range rows {
		for x := range cols {
			rotated[x][rows-1-y] = sh[y][x]
		}
	}

	return rotated
}

// Clone returns a deep copy.
func (sh Shape) Clone() Shape {
	out := make(Shape, len(sh))
	for y := range sh {
		out[y] = append([]Cell(nil), sh[y]...)
	}
	return out
}

// Equal reports whether both matrices have the same dimensions and cells.
func (sh Shape) Equal(other Shape) bool {
	if sh.Height() != other.Height() || sh.Width() != other.Width() {
		return false
	}
	for y := range sh {
		for x := range sh[y] {
			if sh[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Blocks yields the positions of the filled cells in row-major order.
func (sh Shape) Blocks() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range sh {
			for x, v := range sh[y] {
				if v == 0 {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Extent returns the bounding box of the filled cells. ok is false for a shape
// without any filled cell.
func (sh Shape) Extent() (minPt, maxPt Point, ok bool) {
	for p := range sh.Blocks() {
		if !ok {
			minPt, maxPt, ok = p, p, true
			continue
		}
		minPt.X = min(minPt.X, p.X)
		minPt.Y = min(minPt.Y, p.Y)
		maxPt.X = max(maxPt.X, p.X)
		maxPt.Y = max(maxPt.Y, p.Y)
	}
	return minPt, maxPt, ok
}
