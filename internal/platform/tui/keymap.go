package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-says/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Green     key.Binding
	Red       key.Binding
	Yellow    key.Binding
	Blue      key.Binding
	Start     key.Binding
	LevelUp   key.Binding
	LevelDown key.Binding
	History   key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Green, k.Red, k.Yellow, k.Blue, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Green, k.Red, k.Yellow, k.Blue},
		{k.Start, k.LevelUp, k.LevelDown},
		{k.History, k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Pads use their color initial or the number of their screen position.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Green: key.NewBinding(
			key.WithKeys("g", "1"),
			key.WithHelp("g/1", "green"),
		),
		Red: key.NewBinding(
			key.WithKeys("r", "2"),
			key.WithHelp("r/2", "red"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("y", "3"),
			key.WithHelp("y/3", "yellow"),
		),
		Blue: key.NewBinding(
			key.WithKeys("b", "4"),
			key.WithHelp("b/4", "blue"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/ok"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/+", "next level"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/-", "prev level"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Green):
		return core.ActionPadGreen, false
	case key.Matches(msg, k.Red):
		return core.ActionPadRed, false
	case key.Matches(msg, k.Yellow):
		return core.ActionPadYellow, false
	case key.Matches(msg, k.Blue):
		return core.ActionPadBlue, false
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, k.LevelUp):
		return core.ActionLevelUp, false
	case key.Matches(msg, k.LevelDown):
		return core.ActionLevelDown, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame appends the key's action to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Add(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
