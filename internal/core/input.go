package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionPadGreen
	ActionPadRed
	ActionPadYellow
	ActionPadBlue
	ActionConfirm   // Start a game or acknowledge a notice
	ActionLevelUp   // Select the next level while idle
	ActionLevelDown // Select the previous level while idle
	ActionBack      // Leave the game
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPadGreen:
		return "PadGreen"
	case ActionPadRed:
		return "PadRed"
	case ActionPadYellow:
		return "PadYellow"
	case ActionPadBlue:
		return "PadBlue"
	case ActionConfirm:
		return "Confirm"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsPad reports whether a is one of the pad actions.
func (a Action) IsPad() bool {
	return a >= ActionPadGreen && a <= ActionPadBlue
}

// InputFrame collects the actions triggered during one tick.
// Pad presses keep their order since the game compares them one by one.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the action was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
