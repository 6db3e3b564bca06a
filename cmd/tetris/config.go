package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the tetris configuration as YAML, after applying the search order:
--config path, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml, built-in defaults.

Examples:
  tetris config
  tetris config --config ./my-tetris.yaml
  tetris config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("tetris"))
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}
