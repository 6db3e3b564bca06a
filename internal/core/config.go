package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WithDefaults fills a non-positive tick rate from DefaultConfig.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	return c
}

// Frame returns the wall time covered by one simulation tick.
func (c RuntimeConfig) Frame() time.Duration {
	return time.Second / time.Duration(c.WithDefaults().TickRate)
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Rows     int
	Level    int
	GameOver bool
	Paused   bool
	Started  bool // a session is in progress
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
