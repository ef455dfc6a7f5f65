// Package audio plays the pad tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

// Classic Simon pad tones in Hz.
var padFrequencies = map[core.Pad]float64{
	core.PadGreen:  415.3,
	core.PadRed:    310.0,
	core.PadYellow: 252.0,
	core.PadBlue:   209.0,
}

// PadFrequency returns the tone of a pad, or 0 for an unknown pad.
func PadFrequency(p core.Pad) float64 {
	return padFrequencies[p]
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// Tone is a finite square wave with a linear attack and release.
type Tone struct {
	freq    float64
	volume  float64
	rate    beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
}

// NewTone creates a tone of the given frequency, length and volume (0 to 1).
func NewTone(freq float64, d time.Duration, volume float64, rate beep.SampleRate) *Tone {
	total := rate.N(d)
	return &Tone{
		freq:    freq,
		volume:  math.Max(0, math.Min(volume, 1)),
		rate:    rate,
		total:   total,
		attack:  min(rate.N(attack), total/2),
		release: min(rate.N(release), total/2),
	}
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.total
}

// Stream implements beep.Streamer.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := t.volume * t.envelope() * t.square()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *Tone) Err() error {
	return nil
}

func (t *Tone) square() float64 {
	phase := math.Mod(t.freq*float64(t.pos)/float64(t.rate), 1)
	if phase < 0.5 {
		return 1
	}
	return -1
}

func (t *Tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	default:
		return 1
	}
}
