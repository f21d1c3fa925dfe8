package runner

import (
	"fmt"

	"github.com/arcadehop/hopper/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	CactusChar = '▓'
	RockChar   = '█'
	CloudChar  = '░'
	TrunkChar  = '│'
	GroundChar = '═'
)

// Render draws the world into the screen buffer. World coordinates are
// scaled to cells here and nowhere else; gameplay never sees cell space.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.player == nil {
		return
	}

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height
	groundRow := int(g.cfg.World.GroundY * sy)

	for _, c := range g.backdrop.Clouds() {
		w := core.Max(2, int(c.Size*sx))
		dst.DrawHLine(int(c.X*sx), int(c.Y*sy), w, CloudChar, core.ColorWhite)
	}

	for _, tr := range g.backdrop.Trees() {
		g.drawTree(dst, tr, sx, sy, groundRow)
	}

	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.field.Active() {
		g.drawObstacle(dst, o, sx, sy, groundRow)
	}

	g.drawRunner(dst, sx, sy)

	// HUD: zero-padded score, top-right
	hud := fmt.Sprintf(" %05d ", int(g.score))
	dst.DrawTextColor(dst.Width()-len(hud)-2, 0, hud, core.ColorBrightWhite)

	switch g.phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "H O P P E R", "Press SPACE to start")
	case core.PhaseOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %05d  |  SPACE to retry", int(g.score)))
	}
}

// drawRunner renders the player sprite, bottom-anchored so the feet stay
// on the ground row regardless of rounding.
func (g *Game) drawRunner(dst *core.Screen, sx, sy float64) {
	bottom := int((g.player.Y + g.player.H) * sy)
	col := int(g.player.X * sx)
	top := bottom - 3

	// Head and shoulders
	dst.SetCell(col+1, top, RunnerHead, core.ColorOrange)
	dst.SetCell(col+2, top, RunnerBody, core.ColorOrange)

	// Body
	dst.SetCell(col, top+1, RunnerBody, core.ColorOrange)
	dst.SetCell(col+1, top+1, RunnerBody, core.ColorOrange)
	dst.SetCell(col+2, top+1, RunnerBody, core.ColorOrange)

	// Legs, animated while grounded
	if g.player.Grounded() {
		if g.tickCount%10 < 5 {
			dst.SetCell(col, top+2, RunnerLeg1, core.ColorOrange)
			dst.SetCell(col+2, top+2, RunnerLeg2, core.ColorOrange)
		} else {
			dst.SetCell(col+1, top+2, RunnerLeg1, core.ColorOrange)
			dst.SetCell(col+2, top+2, RunnerLeg2, core.ColorOrange)
		}
	} else {
		// In air, legs tucked
		dst.SetCell(col, top+2, RunnerLeg1, core.ColorOrange)
		dst.SetCell(col+1, top+2, RunnerLeg2, core.ColorOrange)
	}
}

// drawObstacle renders a single obstacle, bottom-anchored to the ground.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, sx, sy float64, groundRow int) {
	w := core.Max(1, int(o.W*sx))
	h := core.Max(1, int(o.H*sy))
	col := int(o.X * sx)

	glyph, color := CactusChar, core.ColorBrightGreen
	if o.Kind == VariantB {
		glyph, color = RockChar, core.ColorGray
	}

	dst.DrawRect(col, groundRow-h, w, h, glyph, color)
}

// drawTree renders a decorative tree as a trunk with a crown.
func (g *Game) drawTree(dst *core.Screen, tr Tree, sx, sy float64, groundRow int) {
	h := core.Max(2, int(tr.Size*sy))
	col := int(tr.X * sx)

	crown := '♣'
	if tr.Kind == TreePointy {
		crown = '♠'
	}

	dst.SetCell(col, groundRow-1, TrunkChar, core.ColorGreen)
	for i := 1; i < h; i++ {
		dst.SetCell(col, groundRow-1-i, crown, core.ColorGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
