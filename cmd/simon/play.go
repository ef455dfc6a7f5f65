package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/simon-says/internal/audio"
	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/games/simon"
	simoncore "github.com/vovakirdan/simon-says/internal/games/simon/core"
	"github.com/vovakirdan/simon-says/internal/platform/tui"
	"github.com/vovakirdan/simon-says/internal/storage"
)

var (
	flagLevel int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon Says",
	Long: `Start a game in this terminal.

Without --level a level menu is shown first; Esc in the game returns to it.

Controls:
  g r y b / 1-4   - Press the green, red, yellow, blue pad
  Enter/Space     - Start, or dismiss a notice
  Left/Right      - Change level while idle
  Tab             - Session history
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Levels:
  1 Novice      8 steps
  2 Apprentice 14 steps
  3 Adept      20 steps
  4 Master     31 steps

Examples:
  simon play
  simon play --level 2
  simon play --level 4 --mute --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level 1-4 (0 = choose from menu)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable pad tones")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagLevel != 0 && !simoncore.Level(flagLevel).Valid() {
		fmt.Fprintf(os.Stderr, "Error: level must be between %d and %d, got %d\n",
			simoncore.MinLevel, simoncore.MaxLevel, flagLevel)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg, logger)
	defer player.Close()

	// History lives as long as this invocation
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("session history unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	record := tui.Recorder(store, func(err error) {
		logger.Warn("could not record game", "error", err)
	})

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	level := simoncore.Level(flagLevel)
	if level == 0 {
		level = cfg.Level()
	}

	for {
		if flagLevel == 0 {
			chosen, quit, err := tui.RunLevelSelector(level, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if quit {
				return
			}
			level = chosen
		}

		game := simon.New(
			simon.WithTiming(cfg.ToTiming()),
			simon.WithTones(player),
			simon.WithLogger(logger),
			simon.WithLevel(level),
			simon.OnFinish(func(r simon.Result) {
				logger.Info("game finished", "level", int(r.Level), "rounds", r.Rounds, "reason", r.Reason)
				record(r)
			}),
		)

		rc := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Game.TickRate,
			Seed:     flagSeed,
		}

		back, err := tui.Run(game, store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !back || flagLevel != 0 {
			return
		}
		// Keep the level the player ended on as the menu's starting point
		level = game.SelectedLevel()
	}
}
