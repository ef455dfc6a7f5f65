package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simon-says/internal/games/simon"
	"github.com/vovakirdan/simon-says/internal/games/simon/core"
	"github.com/vovakirdan/simon-says/internal/storage"
)

const maxHistory = 50

// Recorder returns an OnFinish hook that saves every finished game to store.
// Save errors are reported to onErr, which may be nil.
func Recorder(store *storage.Store, onErr func(error)) func(simon.Result) {
	return func(r simon.Result) {
		if store == nil {
			return
		}
		_, err := store.SaveGame(storage.GameRecord{
			Level:     int(r.Level),
			Rounds:    r.Rounds,
			Steps:     r.Steps,
			Reason:    string(r.Reason),
			StartedAt: r.StartedAt,
			EndedAt:   r.EndedAt,
		})
		if err != nil && onErr != nil {
			onErr(err)
		}
	}
}

// HistoryModel shows the games finished in this session.
type HistoryModel struct {
	store  *storage.Store
	games  []storage.GameRecord
	stats  storage.Stats
	err    error
	table  table.Model
	width  int
	height int
}

// NewHistoryModel creates a history view over store. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.Refresh()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 12},
		{Title: "Rounds", Width: 8},
		{Title: "Steps", Width: 6},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the games from the store.
func (m *HistoryModel) Refresh() {
	m.games, m.stats, m.err = nil, storage.Stats{}, nil
	if m.store != nil {
		m.games, m.err = m.store.RecentGames(maxHistory)
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}

	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.games)-i),
			levelName(core.Level(g.Level)),
			fmt.Sprintf("%d", g.Rounds),
			fmt.Sprintf("%d", g.Steps),
			g.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (m *HistoryModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.Refresh()
}

// Update scrolls the table.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Rows returns the number of games shown.
func (m HistoryModel) Rows() int {
	return len(m.games)
}

// Summary returns the one-line session statistics.
func (m HistoryModel) Summary() string {
	if m.stats.Games == 0 {
		return "No games finished yet"
	}
	return fmt.Sprintf("Games: %d   Best: %d rounds   Average: %.1f rounds",
		m.stats.Games, m.stats.BestRounds, m.stats.AvgRounds)
}

// View renders the history.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SESSION HISTORY"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error())
	case len(m.games) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No games finished yet.\nHistory is kept until you quit.")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(content)))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(centerText(summaryStyle.Render(m.Summary()), m.width))

	return b.String()
}

func levelName(l core.Level) string {
	if info := core.GetLevel(l); info != nil {
		return fmt.Sprintf("%d %s", int(l), info.Name)
	}
	return l.String()
}
