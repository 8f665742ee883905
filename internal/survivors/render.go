package survivors

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-survivors/internal/core"
)

// Cell aspect correction: a terminal cell is roughly twice as tall as wide,
// so one world unit maps to two columns and one row.
const (
	cellsPerUnitX = 2.0
	cellsPerUnitY = 1.0
)

// hudRows is the screen rows reserved at the top for the status line.
const hudRows = 2

var tierGlyphs = []rune{'z', 'v', 'B', 'S', 'M'}

// Render draws the full frame: the world around a player-centered camera,
// the HUD, and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateMenu {
		dst.DrawTextCentered(dst.Height()/2, "Press any direction to start")
		return
	}

	g.renderWorld(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// project maps a world position into screen cells relative to the
// player-centered camera. ok is false when the cell is outside the viewport.
func (g *Game) project(dst *core.Screen, pos core.Vec2) (int, int, bool) {
	cx := dst.Width() / 2
	cy := (dst.Height()-hudRows)/2 + hudRows
	x := cx + int(math.Round((pos.X-g.player.Pos.X)*cellsPerUnitX))
	y := cy + int(math.Round((pos.Y-g.player.Pos.Y)*cellsPerUnitY))
	if x < 0 || x >= dst.Width() || y < hudRows || y >= dst.Height() {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Game) renderWorld(dst *core.Screen) {
	for _, p := range g.particles {
		if x, y, ok := g.project(dst, p.Pos); ok {
			glyph := '.'
			if p.Alpha() > 0.5 {
				glyph = '*'
			}
			dst.SetColored(x, y, glyph, p.Color)
		}
	}

	for i := range g.pickups {
		if x, y, ok := g.project(dst, g.pickups[i].Pos); ok {
			dst.SetColored(x, y, '◆', core.ColorCyan)
		}
	}

	for i := range g.instances {
		g.renderInstance(dst, &g.instances[i])
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if x, y, ok := g.project(dst, e.Pos); ok {
			glyph := tierGlyphs[core.Clamp(e.Tier, 0, len(tierGlyphs)-1)]
			dst.SetColored(x, y, glyph, e.Color)
		}
	}

	if x, y, ok := g.project(dst, g.player.Pos); ok {
		dst.SetColored(x, y, '@', core.ColorGreen)
	}
}

// renderInstance draws one weapon effect in its kinematic shape.
func (g *Game) renderInstance(dst *core.Screen, in *Instance) {
	switch in.Mode {
	case ModeSweep:
		for dy := -in.HalfH; dy <= in.HalfH; dy += 1 / cellsPerUnitY {
			for dx := -in.HalfW; dx <= in.HalfW; dx += 1 / cellsPerUnitX {
				p := core.Vec2{X: in.Pos.X + dx, Y: in.Pos.Y + dy}
				if x, y, ok := g.project(dst, p); ok {
					dst.SetColored(x, y, '─', core.ColorYellow)
				}
			}
		}
	case ModeAura:
		const segments = 24
		for i := 0; i < segments; i++ {
			angle := float64(i) / segments * 2 * math.Pi
			p := in.Pos.Add(core.FromAngle(angle).Scale(in.Size))
			if x, y, ok := g.project(dst, p); ok {
				dst.SetColored(x, y, '·', core.ColorBlue)
			}
		}
	case ModeOrbital:
		if x, y, ok := g.project(dst, in.Pos); ok {
			dst.SetColored(x, y, '+', core.ColorCyan)
		}
	case ModeBoomerang:
		glyph := '/'
		if in.Returning {
			glyph = '\\'
		}
		if x, y, ok := g.project(dst, in.Pos); ok {
			dst.SetColored(x, y, glyph, core.ColorMagenta)
		}
	default:
		if x, y, ok := g.project(dst, in.Pos); ok {
			dst.SetColored(x, y, '•', core.ColorWhite)
		}
	}
}

// renderHUD draws health, level, the xp bar and the survival clock.
func (g *Game) renderHUD(dst *core.Screen) {
	hp := fmt.Sprintf("HP %3.0f/%3.0f", math.Max(0, g.player.Health), g.player.MaxHealth)
	dst.DrawTextColored(1, 0, hp, core.ColorRed)

	level := fmt.Sprintf("Lv %d", g.player.Level)
	dst.DrawTextCentered(0, level)

	total := int(g.elapsed)
	clock := fmt.Sprintf("%02d:%02d", total/60, total%60)
	dst.DrawText(dst.Width()-len(clock)-1, 0, clock)

	kills := fmt.Sprintf("Kills %d", g.stats.EnemiesKilled)
	dst.DrawText(dst.Width()-len(clock)-len(kills)-4, 0, kills)

	// XP progress bar across row 1.
	barW := dst.Width() - 2
	filled := 0
	if g.player.XPToNext > 0 {
		filled = int(float64(barW) * core.ClampF(g.player.XP/g.player.XPToNext, 0, 1))
	}
	for x := 0; x < barW; x++ {
		glyph := '░'
		if x < filled {
			glyph = '█'
		}
		dst.SetColored(x+1, 1, glyph, core.ColorCyan)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state == StateLevelUp:
		g.renderOffers(dst)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.state == StateGameOver:
		subtitle := fmt.Sprintf("Survived %s at level %d  |  Press R to restart",
			formatDuration(g.final.SurvivedSeconds), g.final.Level)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.state == StateVictory:
		subtitle := fmt.Sprintf("Level %d, %d kills  |  Press R to restart",
			g.final.Level, g.stats.EnemiesKilled)
		g.drawCenteredBox(dst, "YOU SURVIVED!", subtitle)
	}
}

// renderOffers draws the level-up choice box with the numbered offers.
func (g *Game) renderOffers(dst *core.Screen) {
	title := "LEVEL UP - choose one"
	boxW := len(title) + 6
	for i, o := range g.offers {
		line := len(fmt.Sprintf("[%d] %s: %s", i+1, o.Name, o.Description))
		if line+4 > boxW {
			boxW = line + 4
		}
	}
	boxH := len(g.offers) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, o := range g.offers {
		line := fmt.Sprintf("[%d] %s: %s", i+1, o.Name, o.Description)
		dst.DrawTextColored(boxX+2, boxY+2+i, line, core.ColorYellow)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// formatDuration renders whole seconds as mm:ss.
func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
