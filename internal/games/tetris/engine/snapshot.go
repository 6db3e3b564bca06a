package engine

import "time"

// PieceView describes the falling piece. Shape is ShapeNone when there is
// no piece, before the first start and after game over.
type PieceView struct {
	Shape    Shape
	X, Y     int
	Rotation int
	Matrix   Matrix
}

// Snapshot is a read-only copy of the session. The board includes the
// falling piece as transient cells.
type Snapshot struct {
	SessionID string
	State     State
	Board     Board
	Piece     PieceView

	Score int
	Rows  int
	Level int

	Started  bool
	Paused   bool
	GameOver bool

	DropInterval    time.Duration // zero while the drop clock is stopped
	SoftDropping    bool
	CollapsePending bool
	LastCleared     int // rows marked by the most recent lock
	Elapsed         time.Duration
}

// snapshot builds a Snapshot. Callers hold mu.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:       s.id,
		State:           s.state,
		Board:           s.board.Stamp(s.piece, false),
		Score:           s.score,
		Rows:            s.rows,
		Level:           s.level,
		Started:         s.state == StateRunning || s.state == StatePaused,
		Paused:          s.state == StatePaused,
		GameOver:        s.state == StateGameOver,
		DropInterval:    s.interval,
		SoftDropping:    s.softDropping,
		CollapsePending: s.lines.Pending(),
		LastCleared:     s.lastCleared,
		Elapsed:         s.clock.Now(),
	}

	if p := s.piece; p != nil {
		snap.Piece = PieceView{
			Shape:    p.Shape(),
			X:        p.X,
			Y:        p.Y,
			Rotation: p.Rotation,
			Matrix:   p.Matrix,
		}
	}
	return snap
}
