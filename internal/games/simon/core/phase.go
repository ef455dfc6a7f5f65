package core

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle         Phase = iota // Waiting for a start request
	PhaseComputerTurn              // Playing back the sequence
	PhaseHumanTurn                 // Accepting pad input
	PhaseGameOver                  // Mismatch seen, reset pending
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseComputerTurn:
		return "ComputerTurn"
	case PhaseHumanTurn:
		return "HumanTurn"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Reason explains why a game ended.
type Reason string

const (
	ReasonMismatch Reason = "mismatch"
)
