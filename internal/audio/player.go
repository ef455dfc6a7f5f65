package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

// Sink receives pad tones.
type Sink interface {
	PlayPad(p core.Pad)
}

// Silent discards every tone.
type Silent struct{}

// PlayPad implements Sink.
func (Silent) PlayPad(core.Pad) {}

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// initSpeaker opens the audio device once per process.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(50*time.Millisecond))
	})
	return speakerRate, speakerErr
}

// Player plays pad tones on the speaker through a mixer.
// Without an audio device it stays silent.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	rate     beep.SampleRate
	volume   float64
	duration time.Duration
	active   bool
}

// NewPlayer creates a player for the given settings.
// A disabled config or a failing device gives a silent player, never an error.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		mixer:    &beep.Mixer{},
		rate:     beep.SampleRate(cfg.SampleRate),
		volume:   cfg.Volume,
		duration: cfg.ToneDuration,
	}
	if !cfg.Enabled || cfg.Volume == 0 {
		logger.Debug("audio disabled")
		return p
	}

	rate, err := initSpeaker(p.rate)
	if err != nil {
		logger.Warn("no audio device, tones disabled", "err", err)
		return p
	}
	p.rate = rate
	speaker.Play(p.mixer)
	p.active = true
	return p
}

// Active reports whether tones reach the speaker.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// PlayPad implements Sink. It never blocks on playback.
func (p *Player) PlayPad(pad core.Pad) {
	freq := PadFrequency(pad)
	if freq == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	tone := NewTone(freq, p.duration, p.volume, p.rate)
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops every tone. The player is silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.active = false
}
