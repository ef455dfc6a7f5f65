// Package config provides YAML-based configuration loading for the game:
// playback timings, tone settings and session defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

// SimonConfig contains all configuration for a Simon Says session.
type SimonConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
	Game   GameConfig   `yaml:"game"`
}

// TimingConfig defines the delays of playback and turn changes.
type TimingConfig struct {
	StepInterval  time.Duration `yaml:"step_interval"`
	FlashDuration time.Duration `yaml:"flash_duration"`
	TurnDelay     time.Duration `yaml:"turn_delay"`
	ResetDelay    time.Duration `yaml:"reset_delay"`
}

// AudioConfig defines pad tone playback.
type AudioConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Volume       float64       `yaml:"volume"`        // 0.0 = silent, 1.0 = full scale
	ToneDuration time.Duration `yaml:"tone_duration"` // Length of one pad tone
	SampleRate   int           `yaml:"sample_rate"`
}

// GameConfig defines session defaults.
type GameConfig struct {
	DefaultLevel int `yaml:"default_level"` // Preselected in the level menu
	TickRate     int `yaml:"tick_rate"`     // Ticks per second
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
// The default level is checked by the controller when a game starts.
func (c SimonConfig) Validate() error {
	t := c.Timing
	for _, d := range []struct {
		name string
		v    time.Duration
	}{
		{"timing.step_interval", t.StepInterval},
		{"timing.flash_duration", t.FlashDuration},
		{"timing.turn_delay", t.TurnDelay},
		{"timing.reset_delay", t.ResetDelay},
	} {
		if d.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %s: %w", d.name, d.v, ErrInvalidConfig)
		}
	}
	if t.FlashDuration > t.StepInterval {
		return fmt.Errorf("config: timing.flash_duration %s exceeds step_interval %s: %w",
			t.FlashDuration, t.StepInterval, ErrInvalidConfig)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g: %w", c.Audio.Volume, ErrInvalidConfig)
	}
	if c.Audio.Enabled {
		if c.Audio.ToneDuration <= 0 {
			return fmt.Errorf("config: audio.tone_duration must be positive, got %s: %w", c.Audio.ToneDuration, ErrInvalidConfig)
		}
		if c.Audio.SampleRate <= 0 {
			return fmt.Errorf("config: audio.sample_rate must be positive, got %d: %w", c.Audio.SampleRate, ErrInvalidConfig)
		}
	}

	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: game.tick_rate must be positive, got %d: %w", c.Game.TickRate, ErrInvalidConfig)
	}
	return nil
}

// ToTiming converts the timing section for the controller.
func (c SimonConfig) ToTiming() core.Timing {
	return core.Timing{
		StepInterval:  c.Timing.StepInterval,
		FlashDuration: c.Timing.FlashDuration,
		TurnDelay:     c.Timing.TurnDelay,
		ResetDelay:    c.Timing.ResetDelay,
	}
}

// Level returns the default level as a core level. It may be invalid.
func (c SimonConfig) Level() core.Level {
	return core.Level(c.Game.DefaultLevel)
}
