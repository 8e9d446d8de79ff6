package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const (
	cellsPerTile = 4 // Screen cells per board tile, horizontally
	hudHeight    = 2
)

// minScreenSize returns the smallest screen the board fits on.
func minScreenSize(b *Board) (w, h int) {
	return b.Columns * cellsPerTile, b.Rows + hudHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Columns * cellsPerTile
	boardX := (g.runtime.ScreenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderLanes(dst, boardX, boardY)
	g.renderHomes(dst, boardX, boardY)
	g.renderPowerUp(dst, boardX, boardY)
	g.renderActor(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW)
}

// cellX converts a board pixel x to a screen column offset.
func (g *Game) cellX(px float64) int {
	return int(px * cellsPerTile / float64(g.board.TileSize))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.runtime.ScreenW - len(msg)) / 2
	y := g.runtime.ScreenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.runtime.ScreenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 0, scoreStr)

	livesStr := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor(boardX+(boardW-len(livesStr))/2, 0, livesStr, core.ColorRed)

	levelStr := fmt.Sprintf("Level %d", g.level)
	dst.DrawText(boardX+boardW-len(levelStr), 0, levelStr)

	if g.invincibleMs > 0 {
		star := fmt.Sprintf("★ %.1fs", g.invincibleMs/1000)
		dst.DrawTextColor(boardX, 1, star, core.ColorYellow)
	}
}

// renderLanes paints each row's background and its hazards.
func (g *Game) renderLanes(dst *core.Screen, boardX, boardY int) {
	boardW := g.board.Columns * cellsPerTile

	for row, lane := range g.lanes {
		y := boardY + row
		bg, color := laneBackground(lane.Spec.Type)
		for x := range boardW {
			dst.SetColor(boardX+x, y, bg, color)
		}
		for _, h := range lane.Hazards {
			g.renderHazard(dst, boardX, y, h)
		}
	}
}

func laneBackground(t LaneType) (rune, core.Color) {
	switch t {
	case LaneWater:
		return '~', core.ColorBlue
	case LaneRoad:
		return ' ', core.ColorDefault
	case LaneHome:
		return '#', core.ColorGreen
	default:
		return '.', core.ColorGreen
	}
}

// renderHazard draws one hazard as a run of glyphs across its width.
// Submerged platforms vanish into the water; diving and rising ones
// render dimmed as a warning.
func (g *Game) renderHazard(dst *core.Screen, boardX, y int, h *Hazard) {
	glyph, color := hazardGlyph(h)

	if h.Dive != nil {
		switch h.Dive.Phase {
		case DiveSubmerged:
			return
		case DiveDiving, DiveRising:
			glyph, color = '≈', core.ColorCyan
		}
	}

	x0 := g.cellX(h.X)
	x1 := g.cellX(h.X + h.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1; x++ {
		if x < 0 || x >= g.board.Columns*cellsPerTile {
			continue
		}
		dst.SetColor(boardX+x, y, glyph, color)
	}
}

func hazardGlyph(h *Hazard) (rune, core.Color) {
	switch h.Kind {
	case KindLogShort, KindLogMedium, KindLogLong:
		return '=', core.ColorYellow
	case KindTurtleDuo, KindTurtleTrio:
		return 'o', core.ColorGreen
	case KindTruck:
		return '▓', core.ColorMagenta
	case KindBulldozer:
		return '▒', core.ColorOrange
	case KindCarSport:
		return '>', core.ColorRed
	default:
		return '■', core.ColorWhite
	}
}

func (g *Game) renderHomes(dst *core.Screen, boardX, boardY int) {
	y := boardY + g.board.HomeRow
	for _, spot := range g.homes {
		x0 := g.cellX(spot.X)
		glyph := '_'
		color := core.ColorDefault
		if spot.Filled {
			glyph = 'ö'
			color = core.ColorGreen
		}
		for x := x0; x < x0+cellsPerTile; x++ {
			dst.SetColor(boardX+x, y, glyph, color)
		}
	}
}

func (g *Game) renderPowerUp(dst *core.Screen, boardX, boardY int) {
	p := g.powerUp
	if p == nil || p.Collected {
		return
	}
	dst.SetColor(boardX+g.cellX(p.X), boardY+p.Row, p.Kind.Glyph(), core.ColorYellow)
}

func (g *Game) renderActor(dst *core.Screen, boardX, boardY int) {
	x := g.cellX(g.px + float64(g.cfg.Player.Width)/2)
	y := boardY + g.board.RowOf(g.py)

	glyph := 'ö'
	color := core.ColorGreen
	if g.state == StateDying {
		glyph, color = '✗', core.ColorRed
		if g.deathEvent == core.EventSplash {
			glyph = '◎'
		}
	} else if g.invincibleMs > 0 {
		color = core.ColorYellow
	}
	dst.SetColor(boardX+x, y, glyph, color)
}

func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW int) {
	centerY := boardY + g.board.Rows/2

	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, boardX, centerY, boardW, []string{"PAUSED", "Press P to resume"})
	case StateGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score), "R: restart"}
		if g.ContinuesLeft() > 0 {
			lines = append(lines, fmt.Sprintf("C: continue (%d left)", g.ContinuesLeft()))
		}
		g.drawCenteredBox(dst, boardX, centerY, boardW, lines)
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, boardX, centerY, boardW int, lines []string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	w := maxLen + 4
	h := len(lines) + 2
	x := boardX + (boardW-w)/2
	y := centerY - h/2

	dst.DrawRect(core.NewRect(x+1, y+1, w-2, h-2), ' ')
	dst.DrawBox(core.NewRect(x, y, w, h))
	for i, line := range lines {
		dst.DrawText(x+(w-len(line))/2, y+1+i, line)
	}
}
