// Package core implements the Simon Says round state machine.
// It has no terminal, audio or timer dependencies of its own: the presentation
// layer is reached through Presenter and delays go through a sched.Scheduler.
package core

import (
	"fmt"
	"strings"
)

// Pad identifies one of the four colored pads.
type Pad int

const (
	PadRed Pad = iota
	PadBlue
	PadGreen
	PadYellow
)

// Pads lists every pad in draw order for sequence generation.
var Pads = [...]Pad{PadRed, PadBlue, PadGreen, PadYellow}

// String returns the pad's color name.
func (p Pad) String() string {
	switch p {
	case PadRed:
		return "red"
	case PadBlue:
		return "blue"
	case PadGreen:
		return "green"
	case PadYellow:
		return "yellow"
	default:
		return fmt.Sprintf("pad(%d)", int(p))
	}
}

// Valid reports whether p is one of the four pads.
func (p Pad) Valid() bool {
	return p >= PadRed && p <= PadYellow
}

// ParsePad converts a color name to a Pad. Matching is case-insensitive.
func ParsePad(name string) (Pad, error) {
	for _, p := range Pads {
		if strings.EqualFold(p.String(), name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("core: unknown pad %q", name)
}
