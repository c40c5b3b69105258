package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateStuck       GameStateType = "stuck"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the externally visible state of a session.
type Snapshot struct {
	Board     [BoardSize][BoardSize]int
	Score     int
	HighScore int
	Won       bool
	Moves     int
	MaxTile   int // Highest tile on board
	MergeRule MergeRule
	State     GameStateType
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.won:
		state = StateWon
	case s.Stuck():
		state = StateStuck
	}

	return Snapshot{
		Board:     s.board.Rows(),
		Score:     s.score,
		HighScore: s.highScore,
		Won:       s.won,
		Moves:     s.moves,
		MaxTile:   MaxTile(s.board),
		MergeRule: s.rules.MergeRule,
		State:     state,
	}
}

// Snapshot returns the game snapshot, reporting a too-small window first.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	if g.tooSmall {
		snap.State = StatePausedSmall
	}
	return snap
}
