// Package simon adapts the Simon Says controller to the terminal platform.
// Everything runs on a virtual clock that advances one tick per Step.
package simon

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/games/simon/core"
	"github.com/vovakirdan/simon-says/internal/sched"
)

// ID identifies the game in logs and session records.
const ID = "simon"

// Minimum playable screen size.
const (
	MinWidth  = 40
	MinHeight = 16
)

// Result describes a finished game.
type Result struct {
	Level     core.Level
	Rounds    int // Rounds completed before the mismatch
	Steps     int // Length of the target sequence
	Reason    core.Reason
	StartedAt time.Time
	EndedAt   time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithTiming overrides the controller and board delays.
func WithTiming(t core.Timing) Option {
	return func(g *Game) { g.timing = t }
}

// WithTones sets where pad tones go.
func WithTones(s ToneSink) Option {
	return func(g *Game) { g.tones = s }
}

// WithLogger sets the logger passed to the controller.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithLevel preselects a level. It is not validated until a game starts.
func WithLevel(l core.Level) Option {
	return func(g *Game) { g.initialLevel = l }
}

// OnFinish registers a callback for every finished game.
func OnFinish(fn func(Result)) Option {
	return func(g *Game) { g.onFinish = fn }
}

// Game runs Simon Says on the terminal platform.
type Game struct {
	timing       core.Timing
	tones        ToneSink
	logger       *log.Logger
	initialLevel core.Level
	onFinish     func(Result)
	now          func() time.Time

	clock *sched.Clock
	board *Board
	ctrl  *core.Controller

	tick      uint64
	tickDur   time.Duration
	selected  core.Level
	startErr  error
	startedAt time.Time
	finished  bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{
		timing:       core.DefaultTiming(),
		tones:        noTones{},
		initialLevel: core.MinLevel,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return core.HeadingIdle
}

// Reset initializes the game on the start screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}

	if g.ctrl != nil {
		g.ctrl.Abort()
		g.board.Stop()
	}

	g.clock = sched.NewClock()
	g.board = NewBoard(g.clock, g.timing.FlashDuration, g.tones)
	g.ctrl = core.NewController(g.board, g.clock,
		core.WithRand(rand.New(rand.NewSource(seed))),
		core.WithTiming(g.timing),
		core.WithLogger(g.logger),
		core.WithGameOverHook(g.gameOver),
	)

	g.tick = 0
	g.tickDur = time.Second / time.Duration(tickRate)
	g.selected = g.initialLevel
	g.startErr = nil
	g.finished = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size. Shrinking below the playable size
// abandons a running game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight

	if g.tooSmall && g.playing() {
		g.logger.Info("screen too small, abandoning game", "width", w, "height", h)
		g.ctrl.Abort()
		g.board.Stop()
	}
}

// Step applies the frame's actions in order, then advances game time by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.finished = false

	if !g.tooSmall {
		for _, a := range in.Actions {
			g.apply(a)
		}
	}

	g.clock.Advance(g.tickDur)

	return platformcore.StepResult{
		State:    g.State(),
		Finished: g.finished,
	}
}

func (g *Game) apply(a platformcore.Action) {
	switch {
	case a == platformcore.ActionConfirm:
		if g.board.Acknowledge() {
			return
		}
		g.start()
	case g.board.Blocked():
		// Only Confirm gets past a notice.
	case a.IsPad():
		g.ctrl.PadActivated(padForAction(a))
	case a == platformcore.ActionLevelUp:
		g.selectLevel(g.selected + 1)
	case a == platformcore.ActionLevelDown:
		g.selectLevel(g.selected - 1)
	}
}

// start requests a game at the selected level when the start control is up.
func (g *Game) start() {
	if !g.board.StartVisible() {
		return
	}
	err := g.ctrl.StartGame(g.selected)
	g.startErr = err
	if err != nil {
		return
	}
	g.startedAt = g.now()
}

func (g *Game) selectLevel(l core.Level) {
	if g.playing() || !g.board.StartVisible() {
		return
	}
	if l < core.MinLevel {
		l = core.MinLevel
	}
	if l > core.MaxLevel {
		l = core.MaxLevel
	}
	g.selected = l
	g.startErr = nil
}

func (g *Game) gameOver(s core.Snapshot, reason core.Reason) {
	g.finished = true
	if g.onFinish == nil {
		return
	}
	g.onFinish(Result{
		Level:     s.Level,
		Rounds:    s.Round - 1,
		Steps:     len(s.Target),
		Reason:    reason,
		StartedAt: g.startedAt,
		EndedAt:   g.now(),
	})
}

func (g *Game) playing() bool {
	if g.ctrl == nil {
		return false
	}
	p := g.ctrl.Phase()
	return p == core.PhaseComputerTurn || p == core.PhaseHumanTurn
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	round := g.ctrl.Round()
	return platformcore.GameState{
		Score:    round - 1,
		Round:    round,
		GameOver: g.ctrl.Phase() == core.PhaseGameOver,
		Playing:  g.playing(),
	}
}

// SelectedLevel returns the level the next game starts at.
func (g *Game) SelectedLevel() core.Level {
	return g.selected
}

// Err returns the error of the last start request, if any.
func (g *Game) Err() error {
	return g.startErr
}

// Board returns the presenter the controller draws on.
func (g *Game) Board() *Board {
	return g.board
}

// Controller returns the underlying controller.
func (g *Game) Controller() *core.Controller {
	return g.ctrl
}

// Close abandons a running game and silences the board.
func (g *Game) Close() {
	if g.ctrl == nil {
		return
	}
	g.ctrl.Abort()
	g.board.Stop()
}

func padForAction(a platformcore.Action) core.Pad {
	switch a {
	case platformcore.ActionPadGreen:
		return core.PadGreen
	case platformcore.ActionPadRed:
		return core.PadRed
	case platformcore.ActionPadYellow:
		return core.PadYellow
	default:
		return core.PadBlue
	}
}

// ActionForPad is the inverse of the pad actions.
func ActionForPad(p core.Pad) platformcore.Action {
	switch p {
	case core.PadGreen:
		return platformcore.ActionPadGreen
	case core.PadRed:
		return platformcore.ActionPadRed
	case core.PadYellow:
		return platformcore.ActionPadYellow
	case core.PadBlue:
		return platformcore.ActionPadBlue
	default:
		return platformcore.ActionNone
	}
}

// IsInvalidLevel reports whether err is a rejected level.
func IsInvalidLevel(err error) bool {
	var target *core.InvalidLevelError
	return errors.As(err, &target)
}
