package t2048

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// HighScoreKey is the storage slot holding the best score.
const HighScoreKey = "highscore"

// DefaultWinTile is the tile value that wins the game.
const DefaultWinTile = 2048

// Rules are the tunable parts of the game.
type Rules struct {
	MergeRule    MergeRule
	WinTile      int
	Spawn4Prob   float64
	InitialTiles int
}

// DefaultRules returns the standard rules: one merge per row, win at 2048,
// even odds for 2 and 4, two starting tiles.
func DefaultRules() Rules {
	return Rules{
		MergeRule:    MergeOncePerRow,
		WinTile:      DefaultWinTile,
		Spawn4Prob:   DefaultSpawn4Prob,
		InitialTiles: InitialTiles,
	}
}

// withDefaults returns DefaultRules for a zero Rules and otherwise fills
// zero or out-of-range fields. A zero Spawn4Prob in a non-zero Rules means
// only 2s spawn.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r == (Rules{}) {
		return def
	}
	if r.MergeRule == "" {
		r.MergeRule = def.MergeRule
	}
	if r.WinTile <= 0 {
		r.WinTile = def.WinTile
	}
	if r.Spawn4Prob < 0 || r.Spawn4Prob > 1 {
		r.Spawn4Prob = def.Spawn4Prob
	}
	if r.InitialTiles <= 0 {
		r.InitialTiles = def.InitialTiles
	}
	return r
}

// Options configure a Session. Every field is optional.
type Options struct {
	Rules  Rules
	Rand   Rand               // defaults to a time-seeded source
	Store  core.KeyValueStore // nil keeps the high score in memory only
	Logger *log.Logger        // nil discards log output
}

// MoveResult describes the effect of ApplyMove.
type MoveResult struct {
	Moved      bool   // Board changed and a tile was spawned
	ScoreDelta int    // Points gained by merges
	Spawned    []Cell // Cells filled after the move
	Won        bool   // Session is in the won state after the move
}

// Session owns one game of 2048: the board, score, best score and win flag.
// It is mutated only by ApplyMove and Reset and is not safe for concurrent use.
type Session struct {
	rules  Rules
	rng    Rand
	store  core.KeyValueStore
	logger *log.Logger

	board     Board
	score     int
	highScore int
	won       bool
	moves     int
}

// NewSession creates a session with a fresh board and loads the stored
// high score.
func NewSession(opts Options) *Session {
	s := &Session{
		rules:  opts.Rules.withDefaults(),
		rng:    opts.Rand,
		store:  opts.Store,
		logger: opts.Logger,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.highScore = s.loadHighScore()
	s.Reset()
	return s
}

// loadHighScore reads the stored best score.
// Missing, unreadable or malformed values count as 0.
func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}

	raw, ok, err := s.store.Get(HighScoreKey)
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		s.logger.Warn("ignoring malformed high score", "value", raw)
		return 0
	}
	return v
}

// saveHighScore raises the stored best score to the session's. Other
// sessions may share the store, so a higher stored value is kept and
// adopted. Failures are logged and the in-memory value stays authoritative.
func (s *Session) saveHighScore() {
	if s.store == nil {
		return
	}
	stored, err := core.SetMax(s.store, HighScoreKey, s.highScore)
	if err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
		return
	}
	if stored > s.highScore {
		s.highScore = stored
	}
}

// Reset starts a new board with score 0. The high score is kept.
func (s *Session) Reset() {
	s.board = Spawn(Board{}, s.rules.InitialTiles, s.rng, s.rules.Spawn4Prob)
	s.score = 0
	s.won = false
	s.moves = 0
}

// ApplyMove moves the board in dir.
// It does nothing once the game is won or when the move would not change
// the board. Otherwise it spawns one tile, adds the merge score, raises and
// persists the high score if needed, and re-checks the win condition.
// Panics on an invalid direction.
func (s *Session) ApplyMove(dir Direction) MoveResult {
	if !dir.Valid() {
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}
	if s.won {
		return MoveResult{Won: true}
	}

	next, delta, changed := Slide(s.board, dir, s.rules.MergeRule)
	if !changed {
		return MoveResult{}
	}

	next, spawned := spawnTracked(next, 1, s.rng, s.rules.Spawn4Prob)
	s.board = next
	s.moves++
	s.addScore(delta)

	if MaxTile(s.board) >= s.rules.WinTile {
		s.won = true
		s.logger.Debug("win tile reached", "score", s.score, "moves", s.moves)
	}

	return MoveResult{
		Moved:      true,
		ScoreDelta: delta,
		Spawned:    spawned,
		Won:        s.won,
	}
}

// addScore adds points and tracks the high score.
func (s *Session) addScore(points int) {
	s.score += points
	if s.score > s.highScore {
		s.highScore = s.score
		s.saveHighScore()
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen by this session or loaded from storage.
func (s *Session) HighScore() int {
	return s.highScore
}

// Won reports whether the win tile has been reached since the last Reset.
func (s *Session) Won() bool {
	return s.won
}

// Stuck reports whether no move can change the board.
func (s *Session) Stuck() bool {
	return IsStuck(s.board)
}

// Moves returns the number of accepted moves since the last Reset.
func (s *Session) Moves() int {
	return s.moves
}

// Rules returns the rules this session plays by.
func (s *Session) Rules() Rules {
	return s.rules
}
