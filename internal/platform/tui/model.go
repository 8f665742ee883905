package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivors/internal/core"
	"github.com/vovakirdan/tui-survivors/internal/registry"
	"github.com/vovakirdan/tui-survivors/internal/storage"
	"github.com/vovakirdan/tui-survivors/internal/survivors"
)

// Model is the Bubble Tea model for running a survivors game.
//
// Terminals deliver key presses, never releases, so movement is modeled as a
// persistent heading: a direction key sets the heading, pressing the active
// direction again (or space) stops. The heading is merged into every tick's
// input frame alongside the momentary actions pressed since the last tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	heading    core.Action // Persistent movement direction; ActionNone when stopped
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
}

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
		inputFrame: core.NewInputFrame(),
		heading:    core.ActionNone,
		keyMapper:  NewKeyMapper(),
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
	if msg.String() == " " {
		m.heading = core.ActionNone
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if IsDirection(action) {
		if m.heading == action {
			m.heading = core.ActionNone // Same key again stops
		} else {
			m.heading = action
		}
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
			m.heading = core.ActionNone
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
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.runSaved = false
	}

	frame := m.inputFrame.Clone()
	if m.heading != core.ActionNone {
		frame.Set(m.heading)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run. Best effort; the UI continues on error.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	record := storage.RunRecord{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  1,
	}
	if sg, ok := m.game.(interface{ Snapshot() survivors.Snapshot }); ok {
		snap := sg.Snapshot()
		record.Level = snap.Player.Level
		record.SurvivedSecs = snap.Final.SurvivedSeconds
		record.EnemiesKilled = snap.Stats.EnemiesKilled
		record.Cause = snap.Final.Cause
	}

	//nolint:errcheck // Best-effort save, the UI continues regardless
	m.store.SaveRun(record)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
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
