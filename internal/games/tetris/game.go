// Package tetris adapts the tetris engine to the platform's Game interface:
// it turns per-frame input into engine intents, advances engine time by one
// frame per Step, and draws the session snapshot into a screen buffer.
package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	logger     *log.Logger
)

// SetConfigPath sets a custom config file path. Empty means the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game is the tetris adapter.
type Game struct {
	session *engine.Session
	cfg     config.TetrisConfig

	frame         time.Duration // engine time per Step
	sinceSoftDrop time.Duration
	softDropHeld  bool

	tick    uint64
	screenW int
	screenH int
}

// New creates a tetris game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset builds a fresh idle session. A config that fails to load is
// reported through the logger and replaced by the defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	l := logger
	if l == nil {
		l = log.New(io.Discard)
	}

	tetrisCfg, err := config.LoadTetris(configPath)
	if err != nil {
		l.Warn("using default tetris config", "error", err)
		tetrisCfg = config.DefaultTetrisConfig()
	}

	session, err := engine.NewSession(engine.Options{
		Config: tetrisCfg,
		Seed:   cfg.Seed,
		Logger: l,
	})
	if err != nil {
		l.Error("could not create session", "error", err)
		session, _ = engine.NewSession(engine.Options{Seed: cfg.Seed, Logger: l})
	}

	g.session = session
	g.cfg = tetrisCfg
	g.frame = cfg.Frame()
	g.sinceSoftDrop = 0
	g.softDropHeld = false
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Step applies the frame's actions in arrival order, then advances engine
// time by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	softDropped := false
	for _, action := range in.Actions() {
		switch action {
		case core.ActionStart:
			g.session.Start()
			g.softDropHeld = false
		case core.ActionPause:
			g.session.TogglePause()
		case core.ActionLeft:
			g.session.MoveLeft()
		case core.ActionRight:
			g.session.MoveRight()
		case core.ActionRotate:
			g.session.Rotate()
		case core.ActionRotateBack:
			g.session.RotateCounterClockwise()
		case core.ActionSoftDrop:
			g.session.SoftDrop()
			g.softDropHeld = true
			softDropped = true
		case core.ActionReleaseDrop:
			g.releaseSoftDrop()
		}
	}

	// Terminals report no key-up, so a soft drop ends after a quiet spell.
	if g.softDropHeld {
		if softDropped {
			g.sinceSoftDrop = 0
		} else {
			g.sinceSoftDrop += g.frame
			if g.sinceSoftDrop >= g.cfg.Timing.SoftDropRelease() {
				g.releaseSoftDrop()
			}
		}
	}

	g.session.Advance(g.frame)

	return core.StepResult{State: g.State()}
}

func (g *Game) releaseSoftDrop() {
	g.session.ReleaseSoftDrop()
	g.softDropHeld = false
	g.sinceSoftDrop = 0
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Rows:     snap.Rows,
		Level:    snap.Level,
		GameOver: snap.GameOver,
		Paused:   snap.Paused,
		Started:  snap.Started,
	}
}

// Snapshot returns the engine snapshot for tests and tooling.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→ Move | ↓ Drop | ↑ Rotate | Z Rotate back | Enter Start | P Pause | Q Quit"
}
