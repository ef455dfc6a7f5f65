package simon

import (
	"time"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
	"github.com/vovakirdan/simon-says/internal/sched"
)

// ToneSink plays the tone of a pad.
type ToneSink interface {
	PlayPad(p core.Pad)
}

type noTones struct{}

func (noTones) PlayPad(core.Pad) {}

// Board is the terminal presenter: it holds everything the controller shows.
// Highlights clear themselves after the flash duration using the same scheduler
// the controller runs on.
type Board struct {
	sched sched.Scheduler
	flash time.Duration
	tones ToneSink

	lit   [len(core.Pads)]bool
	clear [len(core.Pads)]sched.Timer

	interactive   bool
	status        string
	heading       string
	startVisible  bool
	statusVisible bool
	notice        string
}

// NewBoard creates a board showing the start screen.
func NewBoard(s sched.Scheduler, flash time.Duration, tones ToneSink) *Board {
	if tones == nil {
		tones = noTones{}
	}
	return &Board{
		sched:        s,
		flash:        flash,
		tones:        tones,
		heading:      core.HeadingIdle,
		startVisible: true,
	}
}

// HighlightAndSound lights p and plays its tone. Lighting a lit pad restarts its timer.
func (b *Board) HighlightAndSound(p core.Pad) {
	if !p.Valid() {
		return
	}
	b.lit[p] = true
	b.tones.PlayPad(p)

	if t := b.clear[p]; t != nil {
		t.Stop()
	}
	b.clear[p] = b.sched.AfterFunc(b.flash, func() {
		b.lit[p] = false
		b.clear[p] = nil
	})
}

func (b *Board) SetInteractive(enabled bool) { b.interactive = enabled }
func (b *Board) SetStatusText(text string)   { b.status = text }
func (b *Board) SetHeadingText(text string)  { b.heading = text }
func (b *Board) ShowStartControl()           { b.startVisible = true }
func (b *Board) HideStartControl()           { b.startVisible = false }
func (b *Board) ShowStatusIndicator()        { b.statusVisible = true }
func (b *Board) HideStatusIndicator()        { b.statusVisible = false }

// NotifyUser raises a notice. It stays up until Acknowledge.
func (b *Board) NotifyUser(message string) {
	b.notice = message
}

// Acknowledge dismisses the notice. Reports whether one was showing.
func (b *Board) Acknowledge() bool {
	if b.notice == "" {
		return false
	}
	b.notice = ""
	return true
}

// Lit reports whether p is currently highlighted.
func (b *Board) Lit(p core.Pad) bool {
	return p.Valid() && b.lit[p]
}

// Interactive reports whether pad input is enabled.
func (b *Board) Interactive() bool { return b.interactive }

// Status returns the status text.
func (b *Board) Status() string { return b.status }

// Heading returns the heading text.
func (b *Board) Heading() string { return b.heading }

// StartVisible reports whether the start control is shown.
func (b *Board) StartVisible() bool { return b.startVisible }

// StatusVisible reports whether the status indicator is shown.
func (b *Board) StatusVisible() bool { return b.statusVisible }

// Notice returns the pending notice, or "".
func (b *Board) Notice() string { return b.notice }

// Blocked reports whether a notice must be acknowledged before anything else.
func (b *Board) Blocked() bool { return b.notice != "" }

// Stop cancels the highlight timers and turns every pad off.
func (b *Board) Stop() {
	for i, t := range b.clear {
		if t != nil {
			t.Stop()
		}
		b.clear[i] = nil
		b.lit[i] = false
	}
}
