// tui2048 plays 2048 in the terminal.
//
// Usage:
//
//	tui2048 list              - List available variants
//	tui2048 play [variant]    - Play a variant (default: 2048)
//	tui2048 menu              - Start menu to pick variants interactively
//	tui2048 serve             - Start SSH server for remote play
//	tui2048 scores [variant]  - Show high scores
//	tui2048 config [init]     - Print or install the default rules
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.tui2048/scores.db)
//	--config <path>      - Custom rules YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--theme <name>       - Color theme: default, mono
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "tui2048 - Play 2048 in your terminal",
	Long: `tui2048 is a terminal version of the 2048 sliding tile puzzle.

Slide the board with the arrow keys, WASD, hjkl or a mouse drag.
Equal tiles merge; reach 2048 to win.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or install the default rules file

Examples:
  tui2048 play
  tui2048 play 2048_classic
  tui2048 menu --theme mono
  tui2048 serve --ssh :2222
  tui2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: validateGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands discard logs otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// validateGlobalFlags rejects bad flag values before any command runs and
// applies the theme.
func validateGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)
	return nil
}
