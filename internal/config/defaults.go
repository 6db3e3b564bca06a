package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			InitialDropMs:     1000,
			DropBaseMs:        1000,
			DropFloorMs:       200,
			ClearDelayMs:      300,
			SoftDropReleaseMs: 150,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
			RowsPerLevel: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
