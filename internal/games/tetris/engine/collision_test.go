package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		x, y   int
		dx, dy int
		want   bool
	}{
		{name: "free", x: SpawnX, y: 0, want: false},
		{name: "left wall", x: 0, y: 0, dx: -1, want: true},
		{name: "right wall", x: Width - 2, y: 0, dx: 1, want: true},
		{name: "floor", x: SpawnX, y: Height - 2, dy: 1, want: true},
		{name: "above top is allowed", x: SpawnX, y: -1, want: false},
		{
			name:  "settled cell",
			setup: func(b *Board) { settle(b, 2, SpawnX) },
			x:     SpawnX, y: 0, dy: 1,
			want: true,
		},
		{
			name: "clearing cell",
			setup: func(b *Board) {
				b[2][SpawnX+1] = Cell{Label: ShapeT, State: LifecycleClearing}
			},
			x: SpawnX, y: 0, dy: 1,
			want: true,
		},
		{
			name: "transient cell is passable",
			setup: func(b *Board) {
				b[2][SpawnX] = Cell{Label: ShapeT, State: LifecycleTransient}
			},
			x: SpawnX, y: 0, dy: 1,
			want: false,
		},
		{
			name:  "rows above the board skip occupancy",
			setup: func(b *Board) { fillRow(b, 0) },
			x:     SpawnX, y: -2,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if tt.setup != nil {
				tt.setup(&b)
			}
			p := NewPiece(ShapeO)
			p.X, p.Y = tt.x, tt.y

			before := b
			assert.Equal(t, tt.want, Collides(p, &b, tt.dx, tt.dy))
			assert.Equal(t, tt.want, Collides(p, &b, tt.dx, tt.dy), "idempotent")
			assert.Equal(t, before, b, "no side effects")
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, tt.y, p.Y)
		})
	}
}
