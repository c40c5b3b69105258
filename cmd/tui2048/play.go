package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: 2048).

Variants:
  2048          - One merge per row per move
  2048_classic  - Every tile merges at most once per move

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  Mouse drag        - Slide tiles in the drag direction
  P                 - Pause
  R                 - Restart
  Esc               - Pause, press again to leave
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Difficulty options (chance of a spawned tile being a 4):
  easy   - 10%
  normal - 50%
  hard   - 75%
  fixed  - Keep the config file value

Examples:
  tui2048 play
  tui2048 play 2048_classic
  tui2048 play --difficulty easy
  tui2048 play --seed 42
  tui2048 play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'tui2048 list' to see available variants", gameID)
	}

	logger, closeLog, err := newLogger("tui2048", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Rules are read when the game is first reset
	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue without storage - best score lives in memory
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "variant", gameID, "seed", cfg.Seed)
	if _, err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
