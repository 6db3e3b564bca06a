package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (tetris if omitted).

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Down/J/S     - Soft drop
  Up/K/W/X     - Rotate clockwise
  Z            - Rotate counter-clockwise
  Enter        - Start / restart
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.tetris/screenshots
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  tetris play
  tetris play --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if gameID == "tetris" {
		tetris.SetConfigPath(flagConfig)
		tetris.SetLogger(logger.WithPrefix("engine"))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	logger.Info("starting", "game", gameID, "width", width, "height", height, "fps", flagFPS)
	return tui.Run(game, cfg, logger)
}
