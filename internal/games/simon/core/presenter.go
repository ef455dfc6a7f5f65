package core

// Text shown by the controller through the presenter.
const (
	HeadingIdle     = "Simon Says"
	StatusWatch     = "Watch closely!"
	StatusYourTurn  = "Your turn!"
	StatusGameOver  = "Game Over!"
	MessageTryAgain = "Try Again!"
)

// Presenter is the presentation layer the controller drives.
// Calls are fire-and-forget and are made from the controller's goroutine.
type Presenter interface {
	// HighlightAndSound pulses a pad and plays its tone.
	// The presenter clears the highlight on its own after a short duration.
	HighlightAndSound(p Pad)

	// SetInteractive enables or disables pad input.
	SetInteractive(enabled bool)

	SetStatusText(text string)
	SetHeadingText(text string)

	ShowStartControl()
	HideStartControl()
	ShowStatusIndicator()
	HideStatusIndicator()

	// NotifyUser shows a message the user must acknowledge.
	NotifyUser(message string)
}

// Listener receives the events the presentation layer produces.
type Listener interface {
	StartRequested(level Level)
	PadActivated(p Pad)
}
