package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Direction is a rotation sense.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// SpawnX and SpawnY are where every new piece appears.
const (
	SpawnX = Width/2 - 2
	SpawnY = 0
)

// Piece is the falling tetromino.
type Piece struct {
	Tetromino *Tetromino
	Matrix    Matrix // current orientation, derived from Tetromino.Matrix
	Rotation  int    // quarter turns clockwise from the base orientation, 0..3
	X, Y      int    // top-left of Matrix on the board; Y may be negative
	Collided  bool   // set when a downward move was blocked
}

// NewPiece returns a piece of the given shape at the spawn position.
func NewPiece(shape Shape) *Piece {
	def := Definition(shape)
	return &Piece{
		Tetromino: def,
		Matrix:    def.Matrix,
		X:         SpawnX,
		Y:         SpawnY,
	}
}

// SpawnPiece draws a uniformly random shape and places it at the spawn position.
func SpawnPiece(rng *rand.Rand) *Piece {
	return NewPiece(RandomShape(rng))
}

// Shape returns the piece's shape.
func (p *Piece) Shape() Shape {
	return p.Tetromino.Shape
}

// eachBlock calls fn with the board coordinates of every block of the piece.
func (p *Piece) eachBlock(fn func(x, y int, label Shape)) {
	for y, row := range p.Matrix {
		for x, label := range row {
			if label != ShapeNone {
				fn(p.X+x, p.Y+y, label)
			}
		}
	}
}

// Move displaces the piece by (dx, dy) if the target is free and reports
// whether it moved. A blocked downward move marks the piece as collided
// instead.
func (p *Piece) Move(b *Board, dx, dy int) bool {
	if Collides(p, b, dx, dy) {
		if dy > 0 {
			p.Collided = true
		}
		return false
	}
	p.X += dx
	p.Y += dy
	p.Collided = false
	return true
}

// pose is the part of a piece a rotation attempt may change.
type pose struct {
	matrix   Matrix
	rotation int
	x        int
}

func (p *Piece) pose() pose {
	return pose{matrix: p.Matrix, rotation: p.Rotation, x: p.X}
}

func (p *Piece) restore(ps pose) {
	p.Matrix = ps.matrix
	p.Rotation = ps.rotation
	p.X = ps.x
}

// Rotate turns the piece a quarter in dir and reports whether it turned.
// When the new orientation collides in place, horizontal kicks are tried
// with offsets 1, -2, 3, -4 ... applied cumulatively, as long as the offset
// magnitude does not exceed the matrix width. If none fits, the piece is
// left exactly as it was.
func (p *Piece) Rotate(b *Board, dir Direction) bool {
	saved := p.pose()

	p.Rotation = ((p.Rotation+int(dir))%4 + 4) % 4
	p.Matrix = orient(p.Tetromino.Matrix, p.Rotation)
	if !Collides(p, b, 0, 0) {
		return true
	}

	width := len(p.Matrix[0])
	for offset := 1; core.Abs(offset) <= width; offset = -(offset + core.Sign(offset)) {
		p.X += offset
		if !Collides(p, b, 0, 0) {
			return true
		}
	}

	p.restore(saved)
	return false
}
