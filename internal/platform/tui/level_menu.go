package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

// LevelMenuModel lets the player choose a level before playing.
type LevelMenuModel struct {
	levels    []core.LevelInfo
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *core.LevelInfo
	quitting  bool
}

// NewLevelMenuModel creates a level menu with initial preselected.
// An invalid initial level puts the cursor on the first level.
func NewLevelMenuModel(initial core.Level, width, height int) LevelMenuModel {
	cursor := 0
	if initial.Valid() {
		cursor = int(initial - core.MinLevel)
	}
	return LevelMenuModel{
		levels:    core.Levels,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Number keys jump straight to a level.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(m.levels) {
			m.cursor = i
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		selected := m.levels[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S I M O N   S A Y S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("  %d. %-10s %2d steps", int(l.Level), l.Name, l.Steps)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  1-4: Jump  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelMenuModel) Selected() *core.LevelInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelSelector shows the level menu and returns the chosen level.
// quit is true when the player left without choosing.
func RunLevelSelector(initial core.Level, width, height int) (level core.Level, quit bool, err error) {
	p := tea.NewProgram(
		NewLevelMenuModel(initial, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := final.(LevelMenuModel)
	if !ok || m.Selected() == nil {
		return 0, true, nil
	}
	return m.Selected().Level, false, nil
}
