package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default rules file",
	Long: `Print the default rules YAML, or write it where it is picked up
automatically.

The rules file is searched in this order:
  --config <path>
  ~/.tui2048/configs/t2048.yaml
  ./configs/t2048.yaml
  built-in defaults

Examples:
  tui2048 config
  tui2048 config init
  tui2048 config init --force`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML("2048"))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default rules to ~/.tui2048/configs/t2048.yaml",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing rules file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := config.UserConfigPath("t2048.yaml")
	if path == "" {
		return errors.New("cannot get home directory")
	}

	if !flagConfigForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.GetDefaultYAML("2048"), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote default rules to %s\n", path)
	return nil
}
