package simon

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/games/simon/core"
)

// Screen positions of the pads: green and red on top, yellow and blue below.
var padLayout = [4]core.Pad{core.PadGreen, core.PadRed, core.PadYellow, core.PadBlue}

var padColors = map[core.Pad]platformcore.Color{
	core.PadGreen:  platformcore.ColorGreen,
	core.PadRed:    platformcore.ColorRed,
	core.PadYellow: platformcore.ColorYellow,
	core.PadBlue:   platformcore.ColorBlue,
}

// PadKey is the key hint drawn on each pad.
var PadKey = map[core.Pad]string{
	core.PadGreen:  "g",
	core.PadRed:    "r",
	core.PadYellow: "y",
	core.PadBlue:   "b",
}

const (
	maxBoardW = 60
	hudTop    = 3 // heading, level, blank
	hudBottom = 3 // status, prompt, score
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderPads(dst, g.padArea(dst))
	g.renderFooter(dst)

	if notice := g.board.Notice(); notice != "" {
		g.renderNotice(dst, notice)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorWhite)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, g.board.Heading(), platformcore.ColorBrightWhite)

	label := levelLabel(g.selected)
	if g.board.StartVisible() {
		label = "< " + label + " >"
	}
	dst.DrawTextCentered(1, label, platformcore.ColorGray)
}

// padArea is the rectangle holding the four pads.
func (g *Game) padArea(dst *platformcore.Screen) platformcore.Rect {
	w := min(dst.Width()-4, maxBoardW)
	h := dst.Height() - hudTop - hudBottom
	return platformcore.NewRect((dst.Width()-w)/2, hudTop, w, h)
}

func (g *Game) renderPads(dst *platformcore.Screen, area platformcore.Rect) {
	for i, r := range area.Quadrants(2, 1) {
		pad := padLayout[i]
		color := padColors[pad]
		fill := '░'
		if g.board.Lit(pad) {
			color = color.Bright()
			fill = '█'
		}

		dst.DrawBox(r, color)
		inner := platformcore.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
		dst.DrawRect(inner, fill, color)

		_, cy := inner.Center()
		label := fmt.Sprintf(" %s [%s] ", strings.ToUpper(pad.String()), PadKey[pad])
		labelColor := color
		if g.board.Interactive() {
			labelColor = platformcore.ColorBrightWhite
		}
		dst.DrawTextIn(platformcore.NewRect(inner.X, cy, inner.W, 1), label, labelColor)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()

	switch {
	case g.startErr != nil:
		dst.DrawTextCentered(h-3, g.startErr.Error(), platformcore.ColorBrightRed)
	case g.board.StatusVisible():
		color := platformcore.ColorWhite
		if g.ctrl.Phase() == core.PhaseGameOver {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextCentered(h-3, g.board.Status(), color)
	}

	if g.board.StartVisible() && !g.board.Blocked() {
		dst.DrawTextCentered(h-2, "Press Enter to start", platformcore.ColorBrightWhite)
	}

	st := g.State()
	dst.DrawText(1, h-1, fmt.Sprintf("Round: %d", st.Round), platformcore.ColorGray)
	score := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawText(dst.Width()-len(score)-1, h-1, score, platformcore.ColorGray)
}

func (g *Game) renderNotice(dst *platformcore.Screen, notice string) {
	hint := "Press Enter"
	w := max(len(notice), len(hint)) + 6
	r := platformcore.NewRect((dst.Width()-w)/2, dst.Height()/2-2, w, 5)

	dst.DrawRect(r, ' ', platformcore.ColorDefault)
	dst.DrawBox(r, platformcore.ColorBrightWhite)
	dst.DrawTextIn(platformcore.NewRect(r.X, r.Y+1, r.W, 1), notice, platformcore.ColorBrightWhite)
	dst.DrawTextIn(platformcore.NewRect(r.X, r.Y+3, r.W, 1), hint, platformcore.ColorGray)
}

func levelLabel(l core.Level) string {
	info := core.GetLevel(l)
	if info == nil {
		return l.String()
	}
	return fmt.Sprintf("Level %d: %s (%d steps)", int(info.Level), info.Name, info.Steps)
}
