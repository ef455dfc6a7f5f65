package simon

import "github.com/vovakirdan/simon-says/internal/games/simon/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Selected core.Level
	Game     core.Snapshot
	Lit      []core.Pad // Highlighted pads in layout order
	Status   string
	Heading  string
	Notice   string
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var lit []core.Pad
	for _, p := range padLayout {
		if g.board.Lit(p) {
			lit = append(lit, p)
		}
	}
	return Snapshot{
		Tick:     g.tick,
		Selected: g.selected,
		Game:     g.ctrl.Snapshot(),
		Lit:      lit,
		Status:   g.board.Status(),
		Heading:  g.board.Heading(),
		Notice:   g.board.Notice(),
		TooSmall: g.tooSmall,
	}
}
