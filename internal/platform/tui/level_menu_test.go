package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

func updateMenu(t *testing.T, m LevelMenuModel, msgs ...tea.Msg) LevelMenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(LevelMenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestLevelMenuBounds(t *testing.T) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name    string
		initial core.Level
		keys    []tea.Msg
		want    core.Level
	}{
		{"initial level kept", 3, []tea.Msg{enter}, 3},
		{"invalid initial starts at first", 9, []tea.Msg{enter}, 1},
		{"up stops at first", 2, []tea.Msg{up, up, up, enter}, 1},
		{"down stops at last", 1, []tea.Msg{down, down, down, down, down, enter}, 4},
		{"number jumps", 1, []tea.Msg{runeKey("4"), enter}, 4},
		{"number past table ignored", 2, []tea.Msg{runeKey("7"), enter}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := updateMenu(t, NewLevelMenuModel(tt.initial, 80, 24), tt.keys...)
			if m.Selected() == nil {
				t.Fatal("no level selected")
			}
			if m.Selected().Level != tt.want {
				t.Errorf("Selected() = %v, want %v", m.Selected().Level, tt.want)
			}
		})
	}
}

func TestLevelMenuQuit(t *testing.T) {
	m := updateMenu(t, NewLevelMenuModel(1, 80, 24), runeKey("q"))
	if !m.IsQuitting() || m.Selected() != nil {
		t.Errorf("quitting = %v selected = %v, want quit without selection", m.IsQuitting(), m.Selected())
	}
}

func TestLevelMenuView(t *testing.T) {
	m := NewLevelMenuModel(2, 80, 24)
	view := m.View()
	for _, info := range core.Levels {
		if !containsText(view, info.Name) {
			t.Errorf("View() missing level %q", info.Name)
		}
	}
}
