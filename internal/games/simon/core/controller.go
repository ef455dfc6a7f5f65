package core

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simon-says/internal/sched"
)

// Timing holds the delays of the playback and turn transitions.
type Timing struct {
	StepInterval  time.Duration // Between activation starts during playback
	FlashDuration time.Duration // How long a pad stays lit
	TurnDelay     time.Duration // Before the player's turn and before replay
	ResetDelay    time.Duration // From game over to reset
}

// DefaultTiming returns the standard cadence.
func DefaultTiming() Timing {
	return Timing{
		StepInterval:  600 * time.Millisecond,
		FlashDuration: 300 * time.Millisecond,
		TurnDelay:     1000 * time.Millisecond,
		ResetDelay:    1500 * time.Millisecond,
	}
}

// Snapshot is a copy of the controller state.
type Snapshot struct {
	Phase  Phase
	Level  Level
	Round  int
	Target []Pad
	Player []Pad
}

// Controller owns the game state and sequencing.
// It must be used from a single goroutine, the same one that advances its scheduler.
type Controller struct {
	presenter  Presenter
	scheduler  sched.Scheduler
	rng        *rand.Rand
	timing     Timing
	logger     *log.Logger
	onGameOver func(Snapshot, Reason)

	phase  Phase
	level  Level
	round  int
	target []Pad
	player []Pad

	nextTimerID uint64
	pending     map[uint64]sched.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source for sequence generation.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithTiming overrides the default delays.
func WithTiming(t Timing) Option {
	return func(c *Controller) {
		c.timing = t
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithGameOverHook registers a function called when a game ends.
func WithGameOverHook(fn func(Snapshot, Reason)) Option {
	return func(c *Controller) {
		c.onGameOver = fn
	}
}

// NewController creates a controller in the Idle phase.
func NewController(p Presenter, s sched.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		presenter: p,
		scheduler: s,
		timing:    DefaultTiming(),
		phase:     PhaseIdle,
		level:     MinLevel,
		round:     1,
		pending:   make(map[uint64]sched.Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// StartGame generates a new target sequence for level and starts playback.
// Only allowed in Idle or GameOver. An invalid level is logged and returned
// as *InvalidLevelError without touching any state.
func (c *Controller) StartGame(level Level) error {
	if c.phase != PhaseIdle && c.phase != PhaseGameOver {
		return ErrGameInProgress
	}

	steps, err := level.Steps()
	if err != nil {
		c.logger.Error("cannot start game", "level", int(level), "err", err)
		return err
	}

	c.cancelPending()

	c.level = level
	c.target = c.generate(steps)
	c.round = 1
	c.player = nil

	c.presenter.SetHeadingText(roundHeading(c.round))
	c.presenter.HideStartControl()
	c.presenter.ShowStatusIndicator()
	c.setPhase(PhaseComputerTurn)
	c.playback()

	return nil
}

// generate draws n pads uniformly with replacement.
func (c *Controller) generate(n int) []Pad {
	seq := make([]Pad, n)
	for i := range seq {
		seq[i] = Pads[c.rng.Intn(len(Pads))]
	}
	return seq
}

// playback replays the whole target sequence, then hands the turn to the player.
// Step k fires k*StepInterval after playback begins; the player's turn starts
// TurnDelay after the tick following the last step.
func (c *Controller) playback() {
	c.presenter.SetStatusText(StatusWatch)
	c.presenter.SetInteractive(false)
	c.scheduleStep(0)
}

func (c *Controller) scheduleStep(i int) {
	c.after(c.timing.StepInterval, func() {
		if i >= len(c.target) {
			c.after(c.timing.TurnDelay, c.beginPlayerTurn)
			return
		}
		c.presenter.HighlightAndSound(c.target[i])
		c.scheduleStep(i + 1)
	})
}

// beginPlayerTurn clears the player's input and accepts pads.
func (c *Controller) beginPlayerTurn() {
	c.player = make([]Pad, 0, len(c.target))
	c.setPhase(PhaseHumanTurn)
	c.presenter.SetInteractive(true)
	c.presenter.SetStatusText(StatusYourTurn)
}

// HandlePadActivation processes a pad pressed by the player.
// Ignored outside HumanTurn.
func (c *Controller) HandlePadActivation(p Pad) {
	if c.phase != PhaseHumanTurn {
		return
	}
	if !p.Valid() {
		c.logger.Warn("ignoring unknown pad", "pad", int(p))
		return
	}

	c.presenter.HighlightAndSound(p)
	c.player = append(c.player, p)

	i := len(c.player) - 1
	if c.player[i] != c.target[i] {
		c.logger.Debug("mismatch", "index", i, "want", c.target[i], "got", p)
		c.EndGame(ReasonMismatch)
		return
	}

	if len(c.player) == len(c.target) {
		c.round++
		c.presenter.SetHeadingText(roundHeading(c.round))
		c.presenter.SetInteractive(false)
		c.setPhase(PhaseComputerTurn)
		c.after(c.timing.TurnDelay, c.playback)
	}
}

// EndGame moves to GameOver and schedules the reset.
// Does nothing when no game is running.
func (c *Controller) EndGame(reason Reason) {
	if c.phase == PhaseIdle || c.phase == PhaseGameOver {
		return
	}

	c.cancelPending()
	c.presenter.SetStatusText(StatusGameOver)
	c.presenter.SetInteractive(false)
	c.setPhase(PhaseGameOver)

	if c.onGameOver != nil {
		c.onGameOver(c.Snapshot(), reason)
	}

	c.after(c.timing.ResetDelay, func() {
		c.ResetGame(MessageTryAgain)
	})
}

// ResetGame returns to Idle, showing message to the user if it is not empty.
func (c *Controller) ResetGame(message string) {
	c.cancelPending()

	if message != "" {
		c.presenter.NotifyUser(message)
	}
	c.presenter.SetHeadingText(HeadingIdle)
	c.presenter.ShowStartControl()
	c.presenter.HideStatusIndicator()
	c.presenter.SetInteractive(false)

	c.round = 1
	c.target = nil
	c.player = nil
	c.setPhase(PhaseIdle)
}

// Abort cancels whatever is running and resets silently.
func (c *Controller) Abort() {
	c.ResetGame("")
}

// StartRequested implements Listener.
func (c *Controller) StartRequested(level Level) {
	if err := c.StartGame(level); err != nil && errors.Is(err, ErrGameInProgress) {
		c.logger.Debug("start ignored", "phase", c.phase)
	}
}

// PadActivated implements Listener.
func (c *Controller) PadActivated(p Pad) {
	c.HandlePadActivation(p)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Level returns the level of the current or last game.
func (c *Controller) Level() Level {
	return c.level
}

// Round returns the round counter.
func (c *Controller) Round() int {
	return c.round
}

// Target returns a copy of the target sequence.
func (c *Controller) Target() []Pad {
	return clonePads(c.target)
}

// Player returns a copy of the player's input this turn.
func (c *Controller) Player() []Pad {
	return clonePads(c.player)
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:  c.phase,
		Level:  c.level,
		Round:  c.round,
		Target: clonePads(c.target),
		Player: clonePads(c.player),
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase != p {
		c.logger.Debug("phase", "from", c.phase, "to", p, "round", c.round)
	}
	c.phase = p
}

// after schedules fn and tracks the timer so it can be cancelled.
func (c *Controller) after(d time.Duration, fn func()) {
	c.nextTimerID++
	id := c.nextTimerID
	c.pending[id] = c.scheduler.AfterFunc(d, func() {
		delete(c.pending, id)
		fn()
	})
}

// cancelPending stops every outstanding timer.
func (c *Controller) cancelPending() {
	for id, t := range c.pending {
		t.Stop()
		delete(c.pending, id)
	}
}

func roundHeading(round int) string {
	return fmt.Sprintf("%s - Round %d", HeadingIdle, round)
}

func clonePads(src []Pad) []Pad {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Pad, len(src))
	copy(dst, src)
	return dst
}
