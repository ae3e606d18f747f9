package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-punchman/internal/core"
	"github.com/vovakirdan/tui-punchman/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a game session.
type Options struct {
	// Runs records finished runs. Nil disables recording.
	Runs RunRecorder
	// Player is the name runs are recorded under.
	Player string
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
	// HoldDelay and RepeatGap tune held-key emulation. Zero uses the defaults.
	HoldDelay time.Duration
	RepeatGap time.Duration
	// ScreenshotDir is where ctrl+s writes. Empty means ~/.punchman/screenshots.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          core.Game
	screen        *core.Screen
	runs          RunRecorder
	player        string
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          *KeyMapper
	hold          *holdTracker
	help          help.Model
	showHelp      bool
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	now           func() time.Time
	quitting      bool
	runSaved      bool // Whether the current finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	delay, gap := opts.HoldDelay, opts.RepeatGap
	if delay <= 0 {
		delay = DefaultHoldDelay
	}
	if gap <= 0 {
		gap = DefaultRepeatGap
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runs:          opts.Runs,
		player:        opts.Player,
		logger:        logger,
		config:        cfg,
		keys:          NewKeyMapper(),
		hold:          newHoldTracker(delay, gap),
		help:          h,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
		screenshotDir: opts.ScreenshotDir,
		now:           time.Now,
	}
}

// Init initializes the model and starts the game.
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.screen.Resize(m.config.ScreenW, m.playHeight())
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionPause {
		// Releases reach the game before the pause, while it still moves
		m.hold.releaseAll(&m.inputFrame)
	}
	if action != core.ActionNone {
		m.hold.press(action, m.now(), &m.inputFrame)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; only
// the view changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight())
	m.help.Width = msg.Width
	return m, nil
}

// playHeight is the number of rows left for the game.
func (m Model) playHeight() int {
	if m.showHelp {
		return max(m.config.ScreenH-1, 0)
	}
	return m.config.ScreenH
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.expire(now, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordRun()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run once. A new run re-arms it.
func (m *Model) recordRun() {
	if !m.gameState.Finished() {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.runs == nil {
		return
	}

	run := storage.Run{
		Player:  m.player,
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: storage.OutcomeGameOver,
	}
	if m.gameState.Won {
		run.Outcome = storage.OutcomeWin
	}
	id, err := m.runs.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "player", run.Player, "score", run.Score, "outcome", run.Outcome)
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".punchman", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return out
}

// Run starts the Bubble Tea program for the game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
