package core

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/simon-says/internal/sched"
)

// recorder is a Presenter that remembers what it was told.
type recorder struct {
	clock         *sched.Clock
	highlights    []Pad
	highlightAt   []time.Duration
	interactive   bool
	status        string
	heading       string
	startVisible  bool
	statusVisible bool
	notices       []string
}

func (r *recorder) HighlightAndSound(p Pad) {
	r.highlights = append(r.highlights, p)
	r.highlightAt = append(r.highlightAt, r.clock.Now())
}
func (r *recorder) SetInteractive(enabled bool) { r.interactive = enabled }
func (r *recorder) SetStatusText(text string)   { r.status = text }
func (r *recorder) SetHeadingText(text string)  { r.heading = text }
func (r *recorder) ShowStartControl()           { r.startVisible = true }
func (r *recorder) HideStartControl()           { r.startVisible = false }
func (r *recorder) ShowStatusIndicator()        { r.statusVisible = true }
func (r *recorder) HideStatusIndicator()        { r.statusVisible = false }
func (r *recorder) NotifyUser(message string)   { r.notices = append(r.notices, message) }

func newTestController(seed int64, opts ...Option) (*Controller, *recorder, *sched.Clock) {
	clock := sched.NewClock()
	rec := &recorder{clock: clock, startVisible: true}
	opts = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, opts...)
	return NewController(rec, clock, opts...), rec, clock
}

// startWithTarget starts a level 1 game and replaces its target before playback reads it.
func startWithTarget(t *testing.T, c *Controller, target ...Pad) {
	t.Helper()
	if err := c.StartGame(1); err != nil {
		t.Fatalf("StartGame(1) failed: %v", err)
	}
	c.target = target
}

// untilPhase advances the clock in small steps until the controller reaches want.
func untilPhase(t *testing.T, c *Controller, clock *sched.Clock, want Phase) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if c.Phase() == want {
			return
		}
		clock.Advance(50 * time.Millisecond)
	}
	t.Fatalf("phase = %v after 50s, want %v", c.Phase(), want)
}

func TestStartGameSequenceLength(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{1, 8},
		{2, 14},
		{3, 20},
		{4, 31},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			c, _, _ := newTestController(42)
			if err := c.StartGame(tt.level); err != nil {
				t.Fatalf("StartGame(%d) failed: %v", tt.level, err)
			}
			if got := len(c.Target()); got != tt.want {
				t.Errorf("len(Target()) = %d, want %d", got, tt.want)
			}
			if c.Phase() != PhaseComputerTurn {
				t.Errorf("Phase() = %v, want ComputerTurn", c.Phase())
			}
			if c.Round() != 1 {
				t.Errorf("Round() = %d, want 1", c.Round())
			}
		})
	}
}

func TestGeneratedPadsInSet(t *testing.T) {
	seen := make(map[Pad]bool)
	for seed := int64(1); seed <= 50; seed++ {
		c, _, _ := newTestController(seed)
		if err := c.StartGame(MaxLevel); err != nil {
			t.Fatalf("StartGame failed: %v", err)
		}
		for i, p := range c.Target() {
			if !p.Valid() {
				t.Fatalf("seed %d: target[%d] = %v is not a pad", seed, i, p)
			}
			seen[p] = true
		}
	}
	if len(seen) != len(Pads) {
		t.Errorf("saw %d distinct pads across 50 games, want %d", len(seen), len(Pads))
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, _, _ := newTestController(7)
	b, _, _ := newTestController(7)
	a.StartGame(3)
	b.StartGame(3)

	ta, tb := a.Target(), b.Target()
	for i := range ta {
		if ta[i] != tb[i] {
			t.Fatalf("targets differ at %d: %v vs %v", i, ta, tb)
		}
	}
}

func TestStartGameInvalidLevel(t *testing.T) {
	for _, level := range []Level{-1, 0, 5, 100} {
		t.Run(level.String(), func(t *testing.T) {
			c, rec, _ := newTestController(1)

			err := c.StartGame(level)

			var invalid *InvalidLevelError
			if !errors.As(err, &invalid) {
				t.Fatalf("StartGame(%d) error = %v, want *InvalidLevelError", level, err)
			}
			if invalid.Level != int(level) {
				t.Errorf("InvalidLevelError.Level = %d, want %d", invalid.Level, level)
			}
			if c.Phase() != PhaseIdle {
				t.Errorf("Phase() = %v, want Idle", c.Phase())
			}
			if c.Target() != nil {
				t.Errorf("Target() = %v, want empty", c.Target())
			}
			if c.Round() != 1 {
				t.Errorf("Round() = %d, want 1", c.Round())
			}
			if !rec.startVisible {
				t.Error("start control hidden after a failed start")
			}
		})
	}
}

func TestStartGameInvalidLevelFromGameOver(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadRed)
	c.HandlePadActivation(PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadGreen)

	before := c.Snapshot()
	pending := clock.Pending()

	var invalid *InvalidLevelError
	if err := c.StartGame(5); !errors.As(err, &invalid) {
		t.Fatalf("StartGame(5) error = %v, want *InvalidLevelError", err)
	}

	after := c.Snapshot()
	if after.Phase != PhaseGameOver {
		t.Errorf("Phase() = %v, want GameOver", after.Phase)
	}
	if after.Round != before.Round || after.Round != 2 {
		t.Errorf("Round() = %d, want %d", after.Round, before.Round)
	}
	if after.Level != before.Level {
		t.Errorf("Level() = %v, want %v", after.Level, before.Level)
	}
	if len(after.Target) != 2 || after.Target[0] != PadRed || after.Target[1] != PadBlue {
		t.Errorf("Target() = %v, want [red blue]", after.Target)
	}
	if len(after.Player) != 1 || after.Player[0] != PadGreen {
		t.Errorf("Player() = %v, want [green]", after.Player)
	}
	if got := clock.Pending(); got != pending {
		t.Errorf("Pending() = %d, want %d", got, pending)
	}

	// The scheduled reset still happens.
	clock.Advance(1500 * time.Millisecond)
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after reset delay, want Idle", c.Phase())
	}
	if len(rec.notices) != 1 || rec.notices[0] != MessageTryAgain {
		t.Errorf("notices = %v, want [%q]", rec.notices, MessageTryAgain)
	}
}

func TestStartGameWhileInProgress(t *testing.T) {
	c, _, clock := newTestController(1)
	c.StartGame(1)
	target := c.Target()

	if err := c.StartGame(2); !errors.Is(err, ErrGameInProgress) {
		t.Errorf("StartGame during ComputerTurn = %v, want ErrGameInProgress", err)
	}

	untilPhase(t, c, clock, PhaseHumanTurn)
	if err := c.StartGame(2); !errors.Is(err, ErrGameInProgress) {
		t.Errorf("StartGame during HumanTurn = %v, want ErrGameInProgress", err)
	}
	if got := c.Target(); len(got) != len(target) {
		t.Errorf("target replaced by rejected start: len %d, want %d", len(got), len(target))
	}
}

func TestStartGamePresenterState(t *testing.T) {
	c, rec, _ := newTestController(1)
	c.StartGame(1)

	if rec.heading != "Simon Says - Round 1" {
		t.Errorf("heading = %q, want %q", rec.heading, "Simon Says - Round 1")
	}
	if rec.startVisible {
		t.Error("start control still visible")
	}
	if !rec.statusVisible {
		t.Error("status indicator hidden")
	}
	if rec.status != StatusWatch {
		t.Errorf("status = %q, want %q", rec.status, StatusWatch)
	}
	if rec.interactive {
		t.Error("pads interactive during playback")
	}
}

func TestPlaybackTiming(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue, PadGreen)

	clock.Advance(3 * 600 * time.Millisecond)
	want := []time.Duration{600 * time.Millisecond, 1200 * time.Millisecond, 1800 * time.Millisecond}
	if len(rec.highlightAt) != len(want) {
		t.Fatalf("highlights at %v, want %v", rec.highlightAt, want)
	}
	for i := range want {
		if rec.highlightAt[i] != want[i] {
			t.Errorf("step %d at %v, want %v", i, rec.highlightAt[i], want[i])
		}
	}
	for i, p := range []Pad{PadRed, PadBlue, PadGreen} {
		if rec.highlights[i] != p {
			t.Errorf("step %d pad = %v, want %v", i, rec.highlights[i], p)
		}
	}

	// Human turn starts TurnDelay after the tick following the last step.
	clock.Advance(600*time.Millisecond + 999*time.Millisecond)
	if c.Phase() != PhaseComputerTurn {
		t.Fatalf("Phase() = %v before turn delay elapsed, want ComputerTurn", c.Phase())
	}
	clock.Advance(time.Millisecond)
	if c.Phase() != PhaseHumanTurn {
		t.Fatalf("Phase() = %v at %v, want HumanTurn", c.Phase(), clock.Now())
	}
	if !rec.interactive {
		t.Error("pads not interactive on the player's turn")
	}
	if rec.status != StatusYourTurn {
		t.Errorf("status = %q, want %q", rec.status, StatusYourTurn)
	}
}

func TestPlaybackCustomTiming(t *testing.T) {
	timing := Timing{
		StepInterval:  100 * time.Millisecond,
		FlashDuration: 50 * time.Millisecond,
		TurnDelay:     200 * time.Millisecond,
		ResetDelay:    300 * time.Millisecond,
	}
	c, _, clock := newTestController(1, WithTiming(timing))
	startWithTarget(t, c, PadYellow, PadYellow)

	clock.Advance(3*100*time.Millisecond + 200*time.Millisecond)
	if c.Phase() != PhaseHumanTurn {
		t.Errorf("Phase() = %v at %v, want HumanTurn", c.Phase(), clock.Now())
	}
}

func TestHandlePadIgnoredOutsideHumanTurn(t *testing.T) {
	c, rec, clock := newTestController(1)

	// Idle
	c.HandlePadActivation(PadRed)
	if c.Player() != nil || c.Round() != 1 || len(rec.highlights) != 0 {
		t.Errorf("Idle input mutated state: player=%v round=%d highlights=%v", c.Player(), c.Round(), rec.highlights)
	}

	// ComputerTurn
	startWithTarget(t, c, PadRed, PadBlue)
	c.HandlePadActivation(PadRed)
	if c.Player() != nil || c.Round() != 1 {
		t.Errorf("ComputerTurn input mutated state: player=%v round=%d", c.Player(), c.Round())
	}

	// GameOver
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadGreen)
	if c.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want GameOver", c.Phase())
	}
	before := c.Player()
	c.HandlePadActivation(PadRed)
	if len(c.Player()) != len(before) || c.Round() != 1 {
		t.Errorf("GameOver input mutated state: player=%v round=%d", c.Player(), c.Round())
	}
}

func TestHandlePadUnknownPad(t *testing.T) {
	c, _, clock := newTestController(1)
	startWithTarget(t, c, PadRed)
	untilPhase(t, c, clock, PhaseHumanTurn)

	c.HandlePadActivation(Pad(9))
	if c.Phase() != PhaseHumanTurn || c.Player() != nil {
		t.Errorf("unknown pad changed state: phase=%v player=%v", c.Phase(), c.Player())
	}
}

func TestMismatchEndsGame(t *testing.T) {
	var hookSnap Snapshot
	var hookReason Reason
	hook := WithGameOverHook(func(s Snapshot, r Reason) {
		hookSnap = s
		hookReason = r
	})

	c, rec, clock := newTestController(1, hook)
	startWithTarget(t, c, PadRed, PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)

	c.HandlePadActivation(PadGreen)

	if c.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want GameOver", c.Phase())
	}
	if rec.status != StatusGameOver {
		t.Errorf("status = %q, want %q", rec.status, StatusGameOver)
	}
	if rec.interactive {
		t.Error("pads still interactive after game over")
	}
	if hookReason != ReasonMismatch {
		t.Errorf("hook reason = %q, want %q", hookReason, ReasonMismatch)
	}
	if hookSnap.Phase != PhaseGameOver || len(hookSnap.Player) != 1 || hookSnap.Player[0] != PadGreen {
		t.Errorf("hook snapshot = %+v", hookSnap)
	}
	// The wrong press still gets feedback.
	if last := rec.highlights[len(rec.highlights)-1]; last != PadGreen {
		t.Errorf("last highlight = %v, want green", last)
	}
}

func TestFullMatchAdvancesRound(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)

	c.HandlePadActivation(PadRed)
	c.HandlePadActivation(PadBlue)

	if c.Phase() != PhaseComputerTurn {
		t.Fatalf("Phase() = %v, want ComputerTurn", c.Phase())
	}
	if c.Round() != 2 {
		t.Errorf("Round() = %d, want 2", c.Round())
	}
	if rec.heading != "Simon Says - Round 2" {
		t.Errorf("heading = %q, want %q", rec.heading, "Simon Says - Round 2")
	}
	if rec.interactive {
		t.Error("pads interactive after full match")
	}

	// The same target is replayed after the turn delay.
	highlightsBefore := len(rec.highlights)
	clock.Advance(999 * time.Millisecond)
	if rec.status == StatusWatch {
		t.Fatal("replay started before the turn delay")
	}
	clock.Advance(time.Millisecond)
	if rec.status != StatusWatch {
		t.Fatalf("status = %q after the turn delay, want %q", rec.status, StatusWatch)
	}
	untilPhase(t, c, clock, PhaseHumanTurn)

	replayed := rec.highlights[highlightsBefore:]
	if len(replayed) != 2 || replayed[0] != PadRed || replayed[1] != PadBlue {
		t.Errorf("replayed %v, want [red blue]", replayed)
	}
	if c.Player() != nil {
		t.Errorf("Player() = %v after new turn, want empty", c.Player())
	}
	if got := c.Target(); len(got) != 2 || got[0] != PadRed || got[1] != PadBlue {
		t.Errorf("Target() = %v, want unchanged [red blue]", got)
	}
}

func TestPartialMatch(t *testing.T) {
	c, _, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue, PadGreen)
	untilPhase(t, c, clock, PhaseHumanTurn)

	c.HandlePadActivation(PadRed)

	if c.Phase() != PhaseHumanTurn {
		t.Errorf("Phase() = %v, want HumanTurn", c.Phase())
	}
	if got := c.Player(); len(got) != 1 || got[0] != PadRed {
		t.Errorf("Player() = %v, want [red]", got)
	}
	if c.Round() != 1 {
		t.Errorf("Round() = %d, want 1", c.Round())
	}
}

func TestGameOverResetsAfterDelay(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadRed)
	c.HandlePadActivation(PadBlue)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadYellow)

	clock.Advance(1499 * time.Millisecond)
	if c.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v before reset delay, want GameOver", c.Phase())
	}
	clock.Advance(time.Millisecond)

	if c.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, want Idle", c.Phase())
	}
	if len(rec.notices) != 1 || rec.notices[0] != MessageTryAgain {
		t.Errorf("notices = %v, want [%q]", rec.notices, MessageTryAgain)
	}
	assertReset(t, c, rec)
}

func TestResetGameInvariant(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed, PadBlue, PadGreen)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadRed)

	c.ResetGame("bye")

	assertReset(t, c, rec)
	if rec.notices[len(rec.notices)-1] != "bye" {
		t.Errorf("last notice = %q, want %q", rec.notices[len(rec.notices)-1], "bye")
	}
}

func assertReset(t *testing.T, c *Controller, rec *recorder) {
	t.Helper()
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want Idle", c.Phase())
	}
	if c.Round() != 1 {
		t.Errorf("Round() = %d, want 1", c.Round())
	}
	if c.Target() != nil {
		t.Errorf("Target() = %v, want empty", c.Target())
	}
	if c.Player() != nil {
		t.Errorf("Player() = %v, want empty", c.Player())
	}
	if rec.heading != HeadingIdle {
		t.Errorf("heading = %q, want %q", rec.heading, HeadingIdle)
	}
	if !rec.startVisible {
		t.Error("start control hidden after reset")
	}
	if rec.statusVisible {
		t.Error("status indicator visible after reset")
	}
	if rec.interactive {
		t.Error("pads interactive after reset")
	}
}

func TestStartGameCancelsPendingReset(t *testing.T) {
	c, rec, clock := newTestController(1)
	startWithTarget(t, c, PadRed)
	untilPhase(t, c, clock, PhaseHumanTurn)
	c.HandlePadActivation(PadBlue)

	if err := c.StartGame(1); err != nil {
		t.Fatalf("StartGame from GameOver failed: %v", err)
	}
	clock.Advance(2 * time.Second)

	if len(rec.notices) != 0 {
		t.Errorf("reset of the previous game fired: notices = %v", rec.notices)
	}
	if c.Phase() == PhaseIdle {
		t.Error("new game was reset by the previous game's timer")
	}
}

func TestAbortCancelsPlayback(t *testing.T) {
	c, rec, clock := newTestController(1)
	c.StartGame(2)
	clock.Advance(1300 * time.Millisecond)
	played := len(rec.highlights)

	c.Abort()
	clock.Advance(time.Minute)

	if len(rec.highlights) != played {
		t.Errorf("%d highlights after abort", len(rec.highlights)-played)
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want Idle", c.Phase())
	}
	if len(rec.notices) != 0 {
		t.Errorf("Abort notified the user: %v", rec.notices)
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d after abort, want 0", clock.Pending())
	}
}

func TestEndGameWhenIdleIsNoop(t *testing.T) {
	called := false
	c, _, clock := newTestController(1, WithGameOverHook(func(Snapshot, Reason) { called = true }))

	c.EndGame(ReasonMismatch)
	clock.Advance(time.Minute)

	if c.Phase() != PhaseIdle || called {
		t.Errorf("EndGame in Idle: phase=%v hook=%v", c.Phase(), called)
	}
}

func TestListenerRoutesEvents(t *testing.T) {
	c, _, clock := newTestController(1)
	var l Listener = c

	l.StartRequested(9)
	if c.Phase() != PhaseIdle {
		t.Fatalf("invalid start request changed phase to %v", c.Phase())
	}

	l.StartRequested(1)
	if c.Phase() != PhaseComputerTurn {
		t.Fatalf("Phase() = %v, want ComputerTurn", c.Phase())
	}
	l.StartRequested(1)
	if len(c.Target()) != 8 {
		t.Errorf("second start request replaced the game")
	}

	untilPhase(t, c, clock, PhaseHumanTurn)
	first := c.Target()[0]
	l.PadActivated(first)
	if got := c.Player(); len(got) != 1 || got[0] != first {
		t.Errorf("Player() = %v, want [%v]", got, first)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	c, _, _ := newTestController(1)
	c.StartGame(1)

	snap := c.Snapshot()
	snap.Target[0] = Pad(99)

	if c.Target()[0] == Pad(99) {
		t.Error("Snapshot aliases the controller's target")
	}
}
