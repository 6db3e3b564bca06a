package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	require.Len(t, b, Height)
	for y := range b {
		require.Len(t, b[y], Width)
		for x := range b[y] {
			assert.False(t, b[y][x].Occupied())
			assert.False(t, b[y][x].Blocking())
		}
	}
}

func TestStampTransientThenSettle(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeO)

	overlay := b.Stamp(p, false)
	assert.Equal(t, Cell{Label: ShapeO, State: LifecycleTransient}, overlay.Cell(SpawnX, 0))
	assert.Equal(t, Cell{}, b.Cell(SpawnX, 0), "stamping returns a new board")

	p.Y = 2
	moved := overlay.Stamp(p, false)
	assert.Equal(t, Cell{}, moved.Cell(SpawnX, 0), "old transient cells are flushed")
	assert.Equal(t, LifecycleTransient, moved.Cell(SpawnX, 2).State)

	settled := moved.Stamp(p, true)
	assert.Equal(t, Cell{Label: ShapeO, State: LifecycleSettled}, settled.Cell(SpawnX+1, 3))
	assert.True(t, settled.Cell(SpawnX+1, 3).Blocking())
}

func TestStampDropsOutOfBoundsAndKeepsSettled(t *testing.T) {
	b := NewBoard()
	settle(&b, 0, SpawnX)

	p := NewPiece(ShapeO)
	p.Y = -1 // top row of the piece is above the board

	out := b.Stamp(p, true)
	assert.Equal(t, ShapeI, out.Cell(SpawnX, 0).Label, "settled cells are never overwritten")
	assert.Equal(t, ShapeO, out.Cell(SpawnX+1, 0).Label)
	for y := 1; y < Height; y++ {
		for x := range Width {
			assert.False(t, out.Cell(x, y).Occupied(), "(%d,%d)", x, y)
		}
	}
}

func TestCellOutOfBoundsReadsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Cell{}, b.Cell(-1, 0))
	assert.Equal(t, Cell{}, b.Cell(Width, 0))
	assert.Equal(t, Cell{}, b.Cell(0, Height))
	assert.Equal(t, Row{}, b.Row(-1))
}

func TestReplaceRow(t *testing.T) {
	var row Row
	for x := range row {
		row[x] = Cell{Label: ShapeZ, State: LifecycleSettled}
	}

	b := NewBoard().ReplaceRow(7, row)
	assert.True(t, b.RowFull(7))
	assert.Equal(t, row, b.Row(7))

	same := b.ReplaceRow(Height, Row{})
	assert.Equal(t, b, same)
}

func TestRemoveAndCollapsePreservesOrder(t *testing.T) {
	b := NewBoard()
	for y := range Height {
		b[y][0] = Cell{Label: Shapes[y%len(Shapes)], State: LifecycleSettled}
	}

	out := b.RemoveAndCollapse([]int{19, 5, 5, -3, Height})
	require.Len(t, out, Height)

	assert.Equal(t, Row{}, out[0])
	assert.Equal(t, Row{}, out[1])

	var want []Row
	for y := range Height {
		if y != 5 && y != 19 {
			want = append(want, b[y])
		}
	}
	assert.Equal(t, want, out[2:])
}

func TestRemoveAndCollapseNothing(t *testing.T) {
	b := NewBoard()
	fillRow(&b, Height-1)
	assert.Equal(t, b, b.RemoveAndCollapse(nil))
}

func TestHeightInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBoard()

	for range 500 {
		switch rng.Intn(3) {
		case 0:
			fillRow(&b, rng.Intn(Height), rng.Intn(Width))
		case 1:
			fillRow(&b, rng.Intn(Height))
			b, _ = MarkFullRows(b)
		case 2:
			b, _ = CollapseClearing(b)
		}
		require.Len(t, b, Height)
		require.Len(t, b[0], Width)
	}
}
