package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon Says configuration.
func DefaultSimonConfig() SimonConfig {
	t := core.DefaultTiming()
	return SimonConfig{
		Timing: TimingConfig{
			StepInterval:  t.StepInterval,
			FlashDuration: t.FlashDuration,
			TurnDelay:     t.TurnDelay,
			ResetDelay:    t.ResetDelay,
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       0.5,
			ToneDuration: 300 * time.Millisecond,
			SampleRate:   44100,
		},
		Game: GameConfig{
			DefaultLevel: int(core.MinLevel),
			TickRate:     60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSimonYAML
}
