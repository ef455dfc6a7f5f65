package core

// RuntimeConfig is passed to the game when it is (re)initialized.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second; one tick advances game time by 1s/TickRate
	Seed     int64 // RNG seed, 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about the game after a tick.
type GameState struct {
	Score    int  // Rounds completed in the current game
	Round    int  // Round counter shown to the player
	GameOver bool // A mismatch ended the game and the reset is pending
	Playing  bool // A game is in progress
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Finished is set on the tick a game ended.
	Finished bool
}
