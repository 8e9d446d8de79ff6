package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// PowerUpKind identifies a power-up effect.
type PowerUpKind int

const (
	PowerExtraLife PowerUpKind = iota
	PowerInvincibility
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerExtraLife:
		return "extra_life"
	case PowerInvincibility:
		return "invincibility"
	default:
		return "?"
	}
}

// Glyph returns the display character for the power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerExtraLife:
		return '♥'
	case PowerInvincibility:
		return '★'
	default:
		return '?'
	}
}

// PowerUp is the single optional pickup on the median safe row.
type PowerUp struct {
	X         float64 // Center x, pixels
	Row       int
	Kind      PowerUpKind
	Collected bool
}

// rollPowerUp replaces the current power-up with a fresh one at the
// configured probability. Called at level start and after each home
// fill. A failed roll leaves whatever uncollected pickup exists.
func (g *Game) rollPowerUp() {
	if g.rng.Float64() >= g.cfg.PowerUps.SpawnChance {
		return
	}

	kind := PowerInvincibility
	if g.rng.Intn(3) == 0 {
		kind = PowerExtraLife
	}

	// Tile-centered random column, keeping one tile of margin.
	col := 1 + g.rng.Intn(g.board.Columns-2)
	g.powerUp = &PowerUp{
		X:    float64(col*g.board.TileSize) + float64(g.board.TileSize)/2,
		Row:  g.board.MedianRow,
		Kind: kind,
	}
}

// collectPowerUp applies the effect of a picked-up power-up.
func (g *Game) collectPowerUp(p *PowerUp) {
	p.Collected = true

	switch p.Kind {
	case PowerExtraLife:
		if g.lives < g.cfg.PowerUps.MaxLives {
			g.lives++
		}
	case PowerInvincibility:
		// A second pickup resets the timer rather than stacking.
		g.invincibleMs = g.cfg.PowerUps.InvincibilityMs
	}

	g.emit(core.EventPowerUp)
}
