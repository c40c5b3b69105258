package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows reserved under the game screen.
const helpHeight = 1

// GameModel is the Bubble Tea model for running one game.
// It is used on its own by the play command and inside SessionModel
// for menu-driven play.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	swipe      *core.Swipe
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if p, ok := game.(registry.Persistent); ok && store != nil {
		p.UseStore(store, logger.With("game", game.ID()))
	}

	h := help.New()
	h.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     gameCfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		swipe:      &core.Swipe{},
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := swipeAction(m.swipe, msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.recordUnfinished()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Back leaves a finished or paused game; otherwise it pauses.
		if m.gameState.GameOver || m.gameState.Paused {
			m.recordUnfinished()
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize updates the screen without restarting the game.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick applies the input collected since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RunEnded {
		m.recordScore(result.FinalScore)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordUnfinished stores the score of a run that is being abandoned.
// Finished runs were already recorded when they ended.
func (m *GameModel) recordUnfinished() {
	state := m.game.State()
	if !state.GameOver && state.Score > 0 {
		m.recordScore(state.Score)
	}
}

// recordScore saves a finished run to the score history. Best effort.
func (m *GameModel) recordScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", score, "error", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "score", score)
}

// saveScreenshot saves the current screen to ~/.tui2048/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game screen and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + theme.HelpBar.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Run starts a full-screen Bubble Tea program for game.
// It returns true when the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, logger, cfg)

	p := tea.NewProgram(
		standaloneGame{model},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press and release feed swipes
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if sg, ok := final.(standaloneGame); ok {
		return sg.BackToMenu(), nil
	}
	return false, nil
}

// standaloneGame exits the program when the player goes back to the menu.
type standaloneGame struct {
	GameModel
}

func (s standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		return s, cmd
	}
	s.GameModel = gm
	if gm.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
