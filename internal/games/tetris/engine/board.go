package engine

// Board dimensions. They are fixed for the lifetime of the process.
const (
	Width  = 10
	Height = 20
)

// Lifecycle tags what a board cell is currently doing.
type Lifecycle uint8

const (
	// LifecycleEmpty is a free cell.
	LifecycleEmpty Lifecycle = iota
	// LifecycleTransient is the falling piece drawn for display. It never
	// blocks movement and is flushed before every restamp.
	LifecycleTransient
	// LifecycleSettled is part of the locked stack.
	LifecycleSettled
	// LifecycleClearing belongs to a full row waiting for its collapse.
	LifecycleClearing
)

// String returns the lifecycle name.
func (lc Lifecycle) String() string {
	switch lc {
	case LifecycleEmpty:
		return "empty"
	case LifecycleTransient:
		return "transient"
	case LifecycleSettled:
		return "settled"
	case LifecycleClearing:
		return "clearing"
	default:
		return "unknown"
	}
}

// Cell is one board position: which shape occupies it and in what phase.
type Cell struct {
	Label Shape
	State Lifecycle
}

// Occupied reports whether the cell carries a shape label.
func (c Cell) Occupied() bool {
	return c.Label != ShapeNone
}

// Blocking reports whether a falling piece may not enter the cell.
func (c Cell) Blocking() bool {
	return c.State == LifecycleSettled || c.State == LifecycleClearing
}

// Row is one horizontal line of the board, left to right.
type Row [Width]Cell

// Board is the playfield, top row first. It is a value type: every
// operation that changes it returns a new Board.
type Board [Height]Row

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Cell returns the cell at (x, y). Out-of-bounds positions read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{}
	}
	return b[y][x]
}

// Row returns a copy of row y.
func (b *Board) Row(y int) Row {
	if y < 0 || y >= Height {
		return Row{}
	}
	return b[y]
}

// ReplaceRow returns a board with row y replaced.
func (b Board) ReplaceRow(y int, row Row) Board {
	if y >= 0 && y < Height {
		b[y] = row
	}
	return b
}

// Flush returns a board with every transient cell reset to empty.
func (b Board) Flush() Board {
	for y := range b {
		for x := range b[y] {
			if b[y][x].State == LifecycleTransient {
				b[y][x] = Cell{}
			}
		}
	}
	return b
}

// Stamp returns a board with the piece written into it. Leftover transient
// cells from an earlier placement are flushed first. With settle the cells
// join the stack, otherwise they are transient overlay. Blocks above the top
// edge are dropped, and settled or clearing cells are never overwritten.
func (b Board) Stamp(p *Piece, settle bool) Board {
	b = b.Flush()
	if p == nil {
		return b
	}

	state := LifecycleTransient
	if settle {
		state = LifecycleSettled
	}

	p.eachBlock(func(x, y int, label Shape) {
		if !InBounds(x, y) || b[y][x].Blocking() {
			return
		}
		b[y][x] = Cell{Label: label, State: state}
	})
	return b
}

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, c := range b[y] {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// RowClearing reports whether row y is waiting for a collapse.
func (b *Board) RowClearing(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	return b[y][0].State == LifecycleClearing
}

// ClearingRows returns the indices of rows waiting for a collapse, top first.
func (b *Board) ClearingRows() []int {
	var rows []int
	for y := range b {
		if b.RowClearing(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveAndCollapse returns a board without the given rows. Each removed row
// is replaced by an empty row at the top, and the remaining rows keep their
// relative order. Duplicate and out-of-range indices are ignored.
func (b Board) RemoveAndCollapse(indices []int) Board {
	var drop [Height]bool
	removed := 0
	for _, y := range indices {
		if y < 0 || y >= Height || drop[y] {
			continue
		}
		drop[y] = true
		removed++
	}
	if removed == 0 {
		return b
	}

	var out Board // rows [0, removed) stay empty
	dst := removed
	for y := range b {
		if drop[y] {
			continue
		}
		out[dst] = b[y]
		dst++
	}
	return out
}
