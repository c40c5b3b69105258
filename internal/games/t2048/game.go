package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Registry IDs for the two rule variants.
const (
	IDStandard = "2048"
	IDClassic  = "2048_classic"
)

// Game adapts a Session to the terminal platform: it maps input frames to
// moves, tracks the window size and draws the board.
type Game struct {
	id        string
	title     string
	mergeRule MergeRule // forces the merge rule when set
	rng       *rand.Rand
	session   *Session
	store     core.KeyValueStore
	logger    *log.Logger

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused    bool
	tooSmall  bool
	recorded  bool   // Current run was already reported as ended
	lastSpawn []Cell // Tiles spawned by the last move, highlighted on render
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a 2048 game using the merge rule from config
// (one merge per row by default).
func New() *Game {
	return &Game{
		id:    IDStandard,
		title: "2048",
	}
}

// NewClassic creates a 2048 game that always uses the classic
// one-merge-per-tile rule and keeps its own best score.
func NewClassic() *Game {
	return &Game{
		id:        IDClassic,
		title:     "2048 (Classic merges)",
		mergeRule: MergeOncePerTile,
	}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// BestScoreKey returns the storage key holding the best score of a variant.
func BestScoreKey(gameID string) string {
	if gameID == IDStandard {
		return HighScoreKey
	}
	return gameID + ":" + HighScoreKey
}

// UseStore sets the persistence for the best score and the logger used to
// report persistence problems. Must be called before the first Reset.
func (g *Game) UseStore(store core.KeyValueStore, logger *log.Logger) {
	if g.id != IDStandard {
		store = core.Namespaced(store, g.id)
	}
	g.store = store
	g.logger = logger
}

// Reset starts a new board. The first call builds the session, loading
// rules from config and the best score from the store. Later calls reseed
// the RNG and keep the best score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.recorded = false
	g.lastSpawn = nil

	if g.session == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
		g.session = NewSession(Options{
			Rules:  g.loadRules(),
			Rand:   g.rng,
			Store:  g.store,
			Logger: g.logger,
		})
	} else {
		g.rng.Seed(cfg.Seed)
		g.session.Reset()
	}

	g.checkScreenSize()
}

// loadRules reads rules from config, applying the difficulty preset and
// the variant's forced merge rule.
func (g *Game) loadRules() Rules {
	logger := g.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		logger.Warn("using default rules", "error", err)
		cfg = config.DefaultT2048Config()
	}

	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}

	rule, err := ParseMergeRule(cfg.Rules.MergeRule)
	if err != nil {
		logger.Warn("using default merge rule", "error", err)
		rule = MergeOncePerRow
	}
	if g.mergeRule != "" {
		rule = g.mergeRule
	}

	return Rules{
		MergeRule:    rule,
		WinTile:      cfg.Rules.WinTile,
		Spawn4Prob:   cfg.Rules.Spawn4Prob,
		InitialTiles: cfg.Rules.InitialTiles,
	}
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input. Queued moves are applied in order until
// the run ends.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		return g.restart()
	}

	result := core.StepResult{State: g.State()}
	for _, a := range in.Moves {
		if result.State.GameOver {
			break
		}
		dir, ok := directionFor(a)
		if !ok {
			continue
		}

		res := g.session.ApplyMove(dir)
		if res.Moved {
			result.Moved = true
			g.lastSpawn = res.Spawned
		}
		result.State = g.State()
	}

	if result.State.GameOver && !g.recorded {
		g.recorded = true
		result.RunEnded = true
		result.FinalScore = g.session.Score()
		g.logRunEnd("finished")
	}
	return result
}

// restart resets the board, reporting the abandoned run if it scored.
func (g *Game) restart() core.StepResult {
	var result core.StepResult
	if !g.recorded && g.session.Score() > 0 {
		result.RunEnded = true
		result.FinalScore = g.session.Score()
		g.logRunEnd("restarted")
	}

	g.session.Reset()
	g.recorded = false
	g.lastSpawn = nil

	result.State = g.State()
	return result
}

// logRunEnd logs the final snapshot of a run.
func (g *Game) logRunEnd(reason string) {
	if g.logger == nil {
		return
	}
	snap := g.Snapshot()
	g.logger.Info("run ended",
		"reason", reason,
		"state", snap.State,
		"score", snap.Score,
		"moves", snap.Moves,
		"max_tile", snap.MaxTile,
		"merge_rule", snap.MergeRule,
	)
}

// directionFor maps a directional action to a move.
func directionFor(a core.Action) (Direction, bool) {
	if !a.IsDirectional() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	}
	return DirRight, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.Won() || g.session.Stuck(),
		Paused:    g.paused || g.tooSmall,
	}
}
