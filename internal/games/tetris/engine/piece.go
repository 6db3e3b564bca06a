// Package engine implements the tetris game-state engine: the board, the
// falling piece, collision and rotation, the two-phase line clear, and the
// session state machine that ties them to a drop clock.
//
// The engine is pure logic. It owns no goroutines and reads no wall clock;
// time only moves when the host calls Session.Advance.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies a tetromino, and doubles as the occupancy label of a cell.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// String returns the single-letter name of the shape ("0" for none).
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "0"
	}
}

// Matrix is a square grid of cell labels; ShapeNone marks an empty slot.
type Matrix [][]Shape

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Equal reports whether two matrices hold the same labels.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Tetromino is an immutable catalog entry.
type Tetromino struct {
	Shape  Shape
	Matrix Matrix // base orientation
	Color  core.Color
}

// grid builds a matrix from rows where '#' marks a block of the shape.
func grid(shape Shape, rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for y, row := range rows {
		m[y] = make([]Shape, len(row))
		for x, ch := range row {
			if ch == '#' {
				m[y][x] = shape
			}
		}
	}
	return m
}

// catalog is indexed by Shape. Entries are never mutated; rotation always
// builds new matrices.
var catalog = [...]Tetromino{
	ShapeNone: {Shape: ShapeNone, Color: core.ColorDefault, Matrix: grid(ShapeNone, ".")},
	ShapeI: {Shape: ShapeI, Color: core.ColorCyan, Matrix: grid(ShapeI,
		".#..",
		".#..",
		".#..",
		".#..",
	)},
	ShapeJ: {Shape: ShapeJ, Color: core.ColorBlue, Matrix: grid(ShapeJ,
		".#.",
		".#.",
		"##.",
	)},
	ShapeL: {Shape: ShapeL, Color: core.ColorOrange, Matrix: grid(ShapeL,
		".#.",
		".#.",
		".##",
	)},
	ShapeO: {Shape: ShapeO, Color: core.ColorYellow, Matrix: grid(ShapeO,
		"##",
		"##",
	)},
	ShapeS: {Shape: ShapeS, Color: core.ColorGreen, Matrix: grid(ShapeS,
		".##",
		"##.",
		"...",
	)},
	ShapeT: {Shape: ShapeT, Color: core.ColorMagenta, Matrix: grid(ShapeT,
		"...",
		"###",
		".#.",
	)},
	ShapeZ: {Shape: ShapeZ, Color: core.ColorRed, Matrix: grid(ShapeZ,
		"##.",
		".##",
		"...",
	)},
}

// Shapes lists the seven playable shapes in spawn-table order.
var Shapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// Definition returns the catalog entry for a shape. Unknown shapes map to
// the empty placeholder.
func Definition(shape Shape) *Tetromino {
	if int(shape) >= len(catalog) {
		return &catalog[ShapeNone]
	}
	return &catalog[shape]
}

// RandomShape draws one of the seven shapes uniformly.
func RandomShape(rng *rand.Rand) Shape {
	return Shapes[rng.Intn(len(Shapes))]
}

// RotateMatrix returns a new matrix turned a quarter clockwise (dir > 0) or
// counter-clockwise (dir < 0). The input is left untouched.
func RotateMatrix(m Matrix, dir Direction) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for y := range out {
		out[y] = make([]Shape, n)
		for x := range out[y] {
			out[y][x] = m[x][y] // transpose
		}
	}

	if dir > 0 {
		for _, row := range out {
			for a, b := 0, len(row)-1; a < b; a, b = a+1, b-1 {
				row[a], row[b] = row[b], row[a]
			}
		}
		return out
	}

	for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}
	return out
}

// orient returns the base matrix turned clockwise quarter times.
func orient(base Matrix, quarter int) Matrix {
	m := base
	for q := 0; q < quarter; q++ {
		m = RotateMatrix(m, Clockwise)
	}
	return m
}
