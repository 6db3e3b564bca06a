package engine

// Collides reports whether the piece, displaced by (dx, dy) from its current
// position, would leave the well or overlap a settled or clearing cell.
// Blocks still above the top edge are only checked against the walls and
// the floor. It has no side effects.
func Collides(p *Piece, b *Board, dx, dy int) bool {
	for y, row := range p.Matrix {
		for x, label := range row {
			if label == ShapeNone {
				continue
			}

			nx := p.X + x + dx
			ny := p.Y + y + dy

			if ny >= Height {
				return true // floor
			}
			if nx < 0 || nx >= Width {
				return true // wall
			}
			if ny >= 0 && b[ny][nx].Blocking() {
				return true
			}
		}
	}
	return false
}
