package frogger

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Run state constants
const (
	StatePlaying  = "playing"  // Normal simulation
	StateDying    = "dying"    // Death animation pause, input ignored
	StateGameOver = "gameover" // No lives left; restart or continue
	StatePaused   = "paused"   // Game paused
	StateSmall    = "paused_small_window"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the frogger simulation. All mutation happens
// synchronously inside Step; Render and Snapshot only read.
type Game struct {
	cfg        config.FroggerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	board      *Board
	dive       *DiveTable
	factory    *laneFactory
	rng        *rand.Rand

	lanes []*Lane // Indexed by row

	// Actor state. Positions are pixels; x/y interpolate toward the
	// tile-aligned target while moving.
	px, py           float64
	targetX, targetY float64
	moving           bool
	furthestRow      int // Lowest row index reached since last reset to start
	pendingHopScore  int // Forward-progress bonus awaiting a survived landing

	homes   []HomeSpot
	powerUp *PowerUp

	// Run state
	state         string
	score         int
	lives         int
	level         int
	continuesUsed int
	invincibleMs  float64 // Remaining invincibility, <=0 means off
	deathPauseMs  float64 // Remaining death animation pause
	deathEvent    core.Event
	tick          uint64

	events   []core.Event // Accumulated during the current Step
	tooSmall bool
}

// New creates a new frogger game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game as a fresh run at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		cfg = config.DefaultFroggerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFroggerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.board = NewBoard(cfg)
	g.dive = NewDiveTable(cfg.Dive)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.factory = newLaneFactory(cfg, g.board, g.dive, g.difficulty, g.rng)

	g.lanes = make([]*Lane, g.board.Rows)
	for row := range g.lanes {
		g.lanes[row] = &Lane{Spec: g.board.Specs[row]}
	}

	g.score = 0
	g.pendingHopScore = 0
	g.lives = cfg.Run.Lives
	g.level = 1
	g.continuesUsed = 0
	g.invincibleMs = 0
	g.deathPauseMs = 0
	g.tick = 0
	g.state = StatePlaying
	g.events = nil

	g.checkScreenSize()
	g.startLevel()
}

// Continue resumes a finished run: lives and position reset, score and
// level kept. Refused once the maximum continue count is spent.
func (g *Game) Continue() bool {
	if g.state != StateGameOver {
		return false
	}
	if g.continuesUsed >= g.cfg.Run.MaxContinues {
		return false
	}
	g.continuesUsed++
	g.lives = g.cfg.Run.Lives
	g.invincibleMs = 0
	g.deathPauseMs = 0
	g.resetActor()
	g.state = StatePlaying
	return true
}

// ContinuesLeft returns how many continues remain.
func (g *Game) ContinuesLeft() int {
	n := g.cfg.Run.MaxContinues - g.continuesUsed
	if n < 0 {
		return 0
	}
	return n
}

// startLevel regenerates hazards and homes for the current level and
// puts the actor back on the start tile.
func (g *Game) startLevel() {
	g.factory.PopulateAll(g.lanes, g.level)
	g.homes = g.board.NewHomeSpots()
	g.powerUp = nil
	g.rollPowerUp()
	g.resetActor()
}

// resetActor snaps the actor to the starting tile.
func (g *Game) resetActor() {
	g.px = g.board.StartX()
	g.py = g.board.RowY(g.board.StartRow)
	g.targetX = g.px
	g.targetY = g.py
	g.moving = false
	g.furthestRow = g.board.StartRow
}

func (g *Game) checkScreenSize() {
	w, h := minScreenSize(g.board)
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

// emit queues a fire-and-forget event for this frame's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Step advances the simulation by one frame. elapsed is the real time
// since the previous frame; zero (or negative) means one nominal frame.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	// Game-over handling: restart or continue.
	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		} else if in.Has(core.ActionContinue) {
			g.Continue()
		}
		return g.result()
	}

	// Pause toggle.
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	g.tick++

	refMs := g.cfg.Board.ReferenceFrameMs
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	if elapsedMs <= 0 {
		elapsedMs = refMs
	}
	// A stalled or backgrounded runtime reports a huge elapsed step;
	// skip position and timer updates for that frame so hazards do not
	// teleport, but keep the loop alive.
	stalled := elapsedMs > g.cfg.Board.StallThresholdMs
	dt := elapsedMs / refMs

	// Timed effects.
	if !stalled {
		if g.invincibleMs > 0 {
			g.invincibleMs -= elapsedMs
		}
		if g.state == StateDying {
			g.deathPauseMs -= elapsedMs
			if g.deathPauseMs <= 0 {
				g.finishDeath()
			}
		}
	}

	// Input: commit at most one hop per frame. A stalled frame still
	// accepts the hop; only its motion waits for the next frame.
	if g.state == StatePlaying && !g.moving {
		if dir := in.Direction(); dir != core.ActionNone {
			g.movePlayer(dir)
		}
	}

	if stalled {
		return g.result()
	}

	// Hazard positions update before any collision or support read.
	g.advanceHazards(elapsedMs, dt)

	// Actor hop interpolation.
	g.advanceActor(dt)

	// Outcome resolution only once the actor is stationary.
	if g.state == StatePlaying && !g.moving {
		g.resolveOutcome(dt)
	}

	return g.result()
}

// movePlayer commits a hop toward the given direction. No-op while
// mid-hop, dying, or when the hop would leave the board.
func (g *Game) movePlayer(dir core.Action) {
	tile := float64(g.board.TileSize)
	tx, ty := g.targetX, g.targetY

	switch dir {
	case core.ActionUp:
		ty -= tile
	case core.ActionDown:
		ty += tile
	case core.ActionLeft:
		tx -= tile
	case core.ActionRight:
		tx += tile
	default:
		return
	}

	if tx < 0 || tx > g.board.WidthPx-float64(g.cfg.Player.Width) {
		return
	}
	if ty < 0 || ty > g.board.RowY(g.board.StartRow) {
		return
	}

	g.targetX = tx
	g.targetY = ty
	g.moving = true
	g.emit(core.EventHop)

	// Forward progress scores exactly once per newly reached row until
	// the actor is reset to the start tile. The bonus is held until the
	// landing resolves: a hop that ends in a death never scores.
	row := g.board.RowOf(ty)
	if row < g.furthestRow {
		g.pendingHopScore += g.cfg.Scoring.ForwardHop * (g.furthestRow - row)
		g.furthestRow = row
	}
}

// advanceHazards moves every hazard, advances dive cycles, wraps
// hazards that left the play area and re-enforces road gaps.
func (g *Game) advanceHazards(elapsedMs, dt float64) {
	prog := g.progressiveMult()

	for _, lane := range g.lanes {
		for _, h := range lane.Hazards {
			h.X += h.Speed * float64(h.Dir) * prog * dt
			if h.Dive != nil {
				g.dive.Advance(h.Dive, elapsedMs, g.rng)
			}
		}
		g.factory.wrapExited(lane, g.level)
		g.factory.enforceRoadGaps(lane, g.level)
	}
}

// progressiveMult scales hazard speed by the actor's row progress:
// slower near the start row, full speed near the home row.
func (g *Game) progressiveMult() float64 {
	start := g.board.StartRow
	if start <= 0 {
		return g.cfg.Hazards.GlobalMult
	}
	row := g.board.RowOf(g.py)
	progress := float64(start-row) / float64(start)
	return core.Lerp(g.cfg.Hazards.ProgressiveMin, 1.0, progress) * g.cfg.Hazards.GlobalMult
}

// advanceActor interpolates the actor toward its target tile at a
// fixed step, snapping when within one step.
func (g *Game) advanceActor(dt float64) {
	if !g.moving {
		return
	}
	step := g.cfg.Player.HopStep * dt

	g.px = stepToward(g.px, g.targetX, step)
	g.py = stepToward(g.py, g.targetY, step)

	if g.px == g.targetX && g.py == g.targetY {
		g.moving = false
	}
}

// stepToward moves v toward target by at most step, snapping when the
// remaining distance is within one step.
func stepToward(v, target, step float64) float64 {
	d := target - v
	if math.Abs(d) <= step {
		return target
	}
	if d > 0 {
		return v + step
	}
	return v - step
}

// resolveOutcome classifies the stationary actor's situation by lane
// type and commits the resulting state change.
func (g *Game) resolveOutcome(dt float64) {
	row := g.board.RowOf(g.py)

	switch g.board.Specs[row].Type {
	case LaneRoad:
		g.resolveRoad(row)
	case LaneWater:
		g.resolveWater(row, dt)
	case LaneHome:
		g.resolveHome()
	case LaneSafe:
		g.resolvePickup(row)
	}

	// The landing survived: commit the forward-progress bonus.
	if g.state == StatePlaying && g.pendingHopScore > 0 {
		g.score += g.pendingHopScore
		g.pendingHopScore = 0
	}
}

// resolveRoad kills the actor on any overlap with a road hazard, with
// a small forgiving inset on both edges.
func (g *Game) resolveRoad(row int) {
	inset := g.cfg.Player.InsetPx
	actor := g.actorSpan().Inset(inset)

	for _, h := range g.lanes[row].Hazards {
		if actor.Overlaps(h.Span().Inset(inset)) {
			g.die(core.EventCrash)
			return
		}
	}
}

// resolveWater finds the supporting platform under the actor. Standing
// on nothing, or being carried off the board, is a water death; a valid
// support drags the actor along at the carry factor.
func (g *Game) resolveWater(row int, dt float64) {
	actor := g.actorSpan()

	var support *Hazard
	for _, h := range g.lanes[row].Hazards {
		if !actor.Overlaps(h.Span()) {
			continue
		}
		if !g.dive.Safe(h.Dive, g.level) {
			continue
		}
		support = h
		break
	}

	if support == nil {
		g.die(core.EventSplash)
		return
	}

	carry := support.Speed * float64(support.Dir) * g.progressiveMult() * dt * g.cfg.Hazards.CarryFactor
	g.px += carry
	g.targetX = g.px

	if g.px < 0 || g.px > g.board.WidthPx-float64(g.cfg.Player.Width) {
		g.die(core.EventSplash)
	}
}

// resolveHome fills an aligned empty home slot or treats the landing
// as a water death when no slot aligns.
func (g *Game) resolveHome() {
	half := float64(g.board.TileSize) / 2
	center := g.px + float64(g.cfg.Player.Width)/2

	for i := range g.homes {
		spot := &g.homes[i]
		if spot.Filled {
			continue
		}
		slotCenter := spot.X + half
		if math.Abs(center-slotCenter) <= half {
			g.fillHome(spot)
			return
		}
	}
	g.die(core.EventSplash)
}

// fillHome commits a home arrival: score, reset, power-up roll, and
// level completion when the last slot fills.
func (g *Game) fillHome(spot *HomeSpot) {
	spot.Filled = true
	g.score += g.cfg.Scoring.ReachHome
	g.emit(core.EventVictory)

	for i := range g.homes {
		if !g.homes[i].Filled {
			g.resetActor()
			g.rollPowerUp()
			return
		}
	}

	// All slots filled: bonus, next level, full regeneration.
	g.score += g.cfg.Scoring.AllHomesBonus + g.level*g.cfg.Scoring.LevelBonus
	g.level++
	g.emit(core.EventLevelUp)
	g.startLevel()
}

// resolvePickup collects the power-up when the actor sits within the
// pickup radius on the median safe row.
func (g *Game) resolvePickup(row int) {
	p := g.powerUp
	if p == nil || p.Collected || row != p.Row {
		return
	}
	center := g.px + float64(g.cfg.Player.Width)/2
	if math.Abs(center-p.X) <= g.cfg.PowerUps.PickupRadius {
		g.collectPowerUp(p)
	}
}

// die triggers a death outcome. Suppressed entirely while invincible,
// and single-flight while a death animation is already running.
func (g *Game) die(cause core.Event) {
	if g.invincibleMs > 0 {
		return
	}
	if g.state != StatePlaying {
		return
	}

	g.pendingHopScore = 0
	g.lives--
	g.deathEvent = cause
	g.emit(cause)
	g.state = StateDying
	g.deathPauseMs = g.cfg.Run.DeathPauseMs
}

// finishDeath ends the death animation: respawn, or game over when no
// lives remain.
func (g *Game) finishDeath() {
	g.deathPauseMs = 0
	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver)
		return
	}
	g.resetActor()
	g.state = StatePlaying
}

// actorSpan returns the actor's horizontal extent.
func (g *Game) actorSpan() core.Span {
	return core.Span{X: g.px, W: float64(g.cfg.Player.Width)}
}

// IsInvincible reports whether the invincibility effect is active.
func (g *Game) IsInvincible() bool {
	return g.invincibleMs > 0
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append(res.Events, g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused || g.tooSmall,
	}
}
