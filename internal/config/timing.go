package config

import "time"

// Timing derives level-dependent parameters from a TetrisConfig.
type Timing struct {
	cfg TetrisConfig
}

// NewTiming creates a timing calculator for the given config.
func NewTiming(cfg TetrisConfig) *Timing {
	return &Timing{cfg: cfg}
}

// DropInterval returns the drop clock period for a level:
// drop_base_ms/(level+1) + drop_floor_ms, using integer milliseconds.
func (t *Timing) DropInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	ms := t.cfg.Timing.DropBaseMs/(level+1) + t.cfg.Timing.DropFloorMs
	if ms <= 0 {
		ms = 1 // The clock needs a positive period
	}
	return time.Duration(ms) * time.Millisecond
}

// LevelThreshold returns the cleared-row total that advances past level.
func (t *Timing) LevelThreshold(level int) int {
	return (level + 1) * t.cfg.Scoring.RowsPerLevel
}

// RowPoints returns the points awarded for clearing rows at a level.
// Points are multiplied per row, not per lock event.
func (t *Timing) RowPoints(rows, level int) int {
	return rows * t.cfg.Scoring.PointsPerRow * (level + 1)
}

// InitialDrop returns the drop interval used right after a session starts.
func (t *Timing) InitialDrop() time.Duration {
	return t.cfg.Timing.InitialDrop()
}

// ClearDelay returns the mark-to-collapse delay.
func (t *Timing) ClearDelay() time.Duration {
	return t.cfg.Timing.ClearDelay()
}
