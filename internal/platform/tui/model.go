package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/servetkarckay/neon-runner-sub001/internal/core"
	"github.com/servetkarckay/neon-runner-sub001/internal/registry"
	"github.com/servetkarckay/neon-runner-sub001/internal/sim"
	"github.com/servetkarckay/neon-runner-sub001/internal/storage"
)

// runRecorder is implemented by games that expose per-run counters for
// the run history table.
type runRecorder interface {
	Stats() sim.RunStats
	Seed() int64
	DeathCause() string
}

// reviver is implemented by games that can resume a run after a death.
type reviver interface {
	Revive()
}

// Model is the Bubble Tea model for running the game, both locally and
// inside an SSH session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
	reviveUsed bool // One revive per run
	holdTicks  int  // Remaining ticks to treat the jump key as held
	duckTicks  int  // Remaining ticks to treat the duck key as held
}

// jumpHoldWindow is how many ticks a single jump key event counts as
// held. Terminal key repeat arrives slower than the tick rate, so a
// held key refreshes this window before it runs out.
const jumpHoldWindow = 8

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
		m.holdTicks = jumpHoldWindow
	case core.ActionDuck:
		m.inputFrame.Set(core.ActionDuck)
		m.duckTicks = jumpHoldWindow
	case core.ActionConfirm:
		// Enter on the game over screen revives the run, once.
		if m.gameState.GameOver && !m.reviveUsed {
			if r, ok := m.game.(reviver); ok {
				r.Revive()
				m.reviveUsed = true
				m.runSaved = false
				m.gameState = m.game.State()
			}
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.reviveUsed = false
		m.holdTicks = 0
		m.duckTicks = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// A recent jump key event keeps the sustain active across ticks
	// until terminal key repeat refreshes it.
	if m.holdTicks > 0 {
		m.inputFrame.Set(core.ActionJumpHold)
		m.holdTicks--
	}
	if m.duckTicks > 0 {
		m.inputFrame.Set(core.ActionDuck)
		m.duckTicks--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the score and, when the game exposes them, the run
// counters. Best effort: play continues regardless of storage errors.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveScore(m.game.ID(), m.gameState.Score)

	if rec, ok := m.game.(runRecorder); ok {
		stats := rec.Stats()
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(storage.RunRecord{
			GameID:     m.game.ID(),
			Score:      m.gameState.Score,
			Ticks:      stats.Ticks,
			Grazes:     stats.Grazes,
			PowerUps:   stats.PowerUps,
			Obstacles:  stats.Obstacles,
			Seed:       rec.Seed(),
			DeathCause: rec.DeathCause(),
		})
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".neonrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
