// Package config provides YAML-based configuration loading for the tetris
// engine's drop timing and scoring parameters.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all tunable parameters of a tetris session.
// Board dimensions are fixed by the engine and are not part of it.
type TetrisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TimingConfig defines the drop clock and line-clear delays, in milliseconds.
type TimingConfig struct {
	InitialDropMs     int `yaml:"initial_drop_ms"`
	DropBaseMs        int `yaml:"drop_base_ms"`
	DropFloorMs       int `yaml:"drop_floor_ms"`
	ClearDelayMs      int `yaml:"clear_delay_ms"`
	SoftDropReleaseMs int `yaml:"soft_drop_release_ms"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
	RowsPerLevel int `yaml:"rows_per_level"`
}

// InitialDrop returns the drop interval used right after a session starts.
func (t TimingConfig) InitialDrop() time.Duration {
	return time.Duration(t.InitialDropMs) * time.Millisecond
}

// ClearDelay returns the delay between marking full rows and collapsing them.
func (t TimingConfig) ClearDelay() time.Duration {
	return time.Duration(t.ClearDelayMs) * time.Millisecond
}

// SoftDropRelease returns how long the platform waits without a soft-drop
// input before it considers the key released.
func (t TimingConfig) SoftDropRelease() time.Duration {
	return time.Duration(t.SoftDropReleaseMs) * time.Millisecond
}

// Validate checks that every parameter is usable by the engine.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Timing.InitialDropMs <= 0:
		return fmt.Errorf("%w: timing.initial_drop_ms must be positive, got %d", ErrInvalidConfig, c.Timing.InitialDropMs)
	case c.Timing.DropBaseMs < 0:
		return fmt.Errorf("%w: timing.drop_base_ms must not be negative, got %d", ErrInvalidConfig, c.Timing.DropBaseMs)
	case c.Timing.DropFloorMs < 0:
		return fmt.Errorf("%w: timing.drop_floor_ms must not be negative, got %d", ErrInvalidConfig, c.Timing.DropFloorMs)
	case c.Timing.DropBaseMs+c.Timing.DropFloorMs <= 0:
		return fmt.Errorf("%w: timing.drop_base_ms + timing.drop_floor_ms must be positive", ErrInvalidConfig)
	case c.Timing.ClearDelayMs < 0:
		return fmt.Errorf("%w: timing.clear_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Timing.ClearDelayMs)
	case c.Timing.SoftDropReleaseMs <= 0:
		return fmt.Errorf("%w: timing.soft_drop_release_ms must be positive, got %d", ErrInvalidConfig, c.Timing.SoftDropReleaseMs)
	case c.Scoring.PointsPerRow < 0:
		return fmt.Errorf("%w: scoring.points_per_row must not be negative, got %d", ErrInvalidConfig, c.Scoring.PointsPerRow)
	case c.Scoring.RowsPerLevel <= 0:
		return fmt.Errorf("%w: scoring.rows_per_level must be positive, got %d", ErrInvalidConfig, c.Scoring.RowsPerLevel)
	}
	return nil
}
