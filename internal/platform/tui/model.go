package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/storage"
)

// Game is the contract between a game and the terminal platform.
// Games hold no Bubble Tea state: the platform maps keys to actions,
// drives ticks and renders the screen buffer.
type Game interface {
	ID() string
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size without resetting the game.
	Resize(w, h int)

	// Step applies one tick of input and advances game time by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	State() core.GameState

	// Close abandons a running game when the session ends.
	Close()
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game        Game
	screen      *core.Screen
	history     HistoryModel
	mapper      *KeyMapper
	help        help.Model
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	width       int
	height      int
	showHistory bool
	quitting    bool
	back        bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store holds the session history and may be nil.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		history:    NewHistoryModel(store, cfg.ScreenW, cfg.ScreenH),
		mapper:     NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
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
	keys := m.mapper.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.game.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		// Full help takes rows from the board; not while a game runs.
		if !m.help.ShowAll && m.game.State().Playing {
			return m, nil
		}
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, keys.History):
		if !m.gameState.Playing {
			m.showHistory = !m.showHistory
			if m.showHistory {
				m.history.Refresh()
			}
		}
		return m, nil
	}

	if m.showHistory {
		if key.Matches(msg, keys.Back) {
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, keys.Back) && !m.gameState.Playing {
		m.game.Close()
		m.back = true
		return m, tea.Quit
	}

	m.mapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.history.Resize(msg.Width, msg.Height)
	m.layout()
	return m, nil
}

// layout sizes the game screen to the space above the help footer.
func (m *Model) layout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
}

func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.mapper.Keys())), 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.history.Refresh()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	helpView := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.mapper.Keys()))

	if m.showHistory {
		return m.history.View() + "\n" + helpView
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Back reports whether the player left the game to pick another level.
func (m Model) Back() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given model.
// Returns back=true when the player pressed Esc to return to the level menu.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.Back(), nil
}
