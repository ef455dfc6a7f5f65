// simon is the Simon Says memory game for the terminal.
//
// Usage:
//
//	simon play              - Pick a level and play
//	simon serve             - Start SSH server for remote play
//	simon levels            - Show the level table
//	simon config            - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--fps <rate>    - Override the tick rate
//	--seed <value>  - Set RNG seed for reproducible sequences
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/simon-says/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says - a color and tone memory game for your terminal",
	Long: `Simon Says plays a sequence of colored pads. Repeat it pad by pad;
every full match starts a new round, the first mistake ends the game.

Available commands:
  play     - Pick a level and play
  serve    - Start SSH server for remote play
  levels   - Show the level table
  config   - Print the effective configuration

Examples:
  simon play
  simon play --level 3 --mute
  simon serve --ssh :2222
  simon config --config ./simon.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.simon/config.yaml, ./configs/simon.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log phase changes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.SimonConfig, error) {
	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to --log, or discarding everything
// when no path was given. The alternate screen owns the terminal while playing.
func newFileLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "simon",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { _ = f.Close() }, nil
}
