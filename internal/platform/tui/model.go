package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/games/trench"
	"github.com/vovakirdan/trench-runner/internal/replay"
	"github.com/vovakirdan/trench-runner/internal/storage"
)

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game       *trench.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *ScoreboardModel // Leaderboard overlay, nil while playing
	quitting   bool
}

// NewModel creates a model for the given game. The store may be nil, in which
// case runs are not persisted.
func NewModel(game *trench.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if store != nil {
		best, err := store.BestScore()
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		}
		game.SetBest(best)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		next, cmd := m.board.Update(msg)
		board := next.(ScoreboardModel)
		switch {
		case board.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case board.IsGoingBack():
			m.board = nil
		default:
			m.board = &board
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeaderboard:
		if m.gameState.GameOver {
			board := NewScoreboardModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH)
			m.board = &board
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width

	if m.board != nil {
		next, _ := m.board.Update(msg)
		board := next.(ScoreboardModel)
		m.board = &board
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.board == nil {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if result.Ended {
			m.saveRun()
		}
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores a finished run with its replay when it makes the leaderboard.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	b := m.game.Breakdown()
	ok, err := m.store.Qualifies(b.Score)
	if err != nil {
		m.logger.Error("leaderboard check failed", "error", err)
		return
	}
	if !ok {
		return
	}

	rec, _ := m.game.Recording()
	data, err := replay.Encode(rec)
	if err != nil {
		m.logger.Warn("replay not stored", "run", m.game.RunID(), "error", err)
		data = nil
	}

	run := storage.RunEntry{
		ID:        m.game.RunID(),
		Player:    m.config.Player,
		Tier:      m.game.Tier(),
		Breakdown: b,
		Seed:      rec.Seed,
		Preset:    rec.Preset,
	}
	if err := m.store.SaveRun(run, data); err != nil {
		m.logger.Error("could not save run", "run", run.ID, "error", err)
		return
	}
	m.logger.Info("run saved", "run", run.ID, "player", run.Player, "score", b.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trench", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(game *trench.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
