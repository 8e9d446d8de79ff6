package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

// stepN runs n nominal frames with the given input.
func stepN(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in, 0)
	}
}

// clearLanes removes every hazard so lane outcomes can be staged
// explicitly.
func clearLanes(g *Game) {
	for _, lane := range g.lanes {
		lane.Hazards = nil
	}
}

// placeActor puts the stationary actor tile-aligned on the given row.
func placeActor(g *Game, row, col int) {
	g.px = float64(col * g.board.TileSize)
	g.py = g.board.RowY(row)
	g.targetX = g.px
	g.targetY = g.py
	g.moving = false
}

// rowOfType returns the first row with the given lane type.
func rowOfType(t *testing.T, g *Game, lt LaneType) int {
	t.Helper()
	for row, spec := range g.board.Specs {
		if spec.Type == lt {
			return row
		}
	}
	t.Fatalf("no %v row on the board", lt)
	return -1
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical states.
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputSequence[i].Set(core.ActionUp)
		case i%40 == 20:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	g1 := newTestGame(12345)
	for _, in := range inputSequence {
		g1.Step(in, 0)
	}
	snap1 := g1.Snapshot()

	g2 := newTestGame(12345)
	for _, in := range inputSequence {
		g2.Step(in, 0)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.ActorX != snap2.ActorX || snap1.ActorY != snap2.ActorY {
		t.Errorf("Determinism failed: actor positions differ")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	stepN(g, 50, core.NewInputFrame())
	g.score = 500
	g.lives = 1

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.lives != g.cfg.Run.Lives {
		t.Errorf("Reset should restore lives, got %d", g.lives)
	}
	if g.level != 1 {
		t.Errorf("Reset should set level 1, got %d", g.level)
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should set state playing, got %s", g.state)
	}
	if g.px != g.board.StartX() || g.py != g.board.RowY(g.board.StartRow) {
		t.Errorf("Reset should place actor on the start tile")
	}
}

func TestForwardHopScores(t *testing.T) {
	g := newTestGame(7)
	clearLanes(g)

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up, 0)
	stepN(g, 10, core.NewInputFrame()) // Finish the hop

	if g.moving {
		t.Fatal("hop should have completed")
	}
	if g.score != g.cfg.Scoring.ForwardHop {
		t.Errorf("forward hop score = %d, want %d", g.score, g.cfg.Scoring.ForwardHop)
	}

	// Hopping back down and up again must not score the same row twice.
	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	g.Step(down, 0)
	stepN(g, 10, core.NewInputFrame())
	g.Step(up, 0)
	stepN(g, 10, core.NewInputFrame())

	if g.score != g.cfg.Scoring.ForwardHop {
		t.Errorf("re-reached row scored again: score = %d, want %d", g.score, g.cfg.Scoring.ForwardHop)
	}
}

func TestEmptyWaterIsDeath(t *testing.T) {
	g := newTestGame(9)
	clearLanes(g)
	row := rowOfType(t, g, LaneWater)
	placeActor(g, row, g.board.Columns/2)

	scoreBefore := g.score
	res := g.Step(core.NewInputFrame(), 0)

	if g.state != StateDying {
		t.Fatalf("state = %s, want %s", g.state, StateDying)
	}
	if g.lives != g.cfg.Run.Lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Run.Lives-1)
	}
	if g.score != scoreBefore {
		t.Errorf("death must not change score: %d -> %d", scoreBefore, g.score)
	}
	if !hasEvent(res.Events, core.EventSplash) {
		t.Errorf("expected splash event, got %v", res.Events)
	}

	// The death pause expires and the actor respawns at the start.
	stepN(g, 80, core.NewInputFrame())
	if g.state != StatePlaying {
		t.Errorf("state after death pause = %s, want %s", g.state, StatePlaying)
	}
	if g.py != g.board.RowY(g.board.StartRow) {
		t.Errorf("actor should respawn on the start row")
	}
}

func TestFatalHopDoesNotScore(t *testing.T) {
	g := newTestGame(9)
	clearLanes(g)
	placeActor(g, g.board.MedianRow, g.board.Columns/2)
	g.furthestRow = g.board.MedianRow

	scoreBefore := g.score
	livesBefore := g.lives

	// One hop up onto an empty water lane. The forward-progress bonus
	// must not survive the splash.
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up, 0)
	stepN(g, 10, core.NewInputFrame())

	if g.state != StateDying {
		t.Fatalf("hop onto empty water should be a death, state = %s", g.state)
	}
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
	if g.score != scoreBefore {
		t.Errorf("fatal hop changed score: %d -> %d", scoreBefore, g.score)
	}

	// The death pause expires and the actor is back on the start tile
	// with nothing pending.
	stepN(g, 80, core.NewInputFrame())
	if g.py != g.board.RowY(g.board.StartRow) {
		t.Errorf("actor should respawn on the start row")
	}
	if g.score != scoreBefore {
		t.Errorf("score changed after respawn: %d -> %d", scoreBefore, g.score)
	}
}

func TestSurvivedHopScoresOnLanding(t *testing.T) {
	g := newTestGame(9)
	clearLanes(g)

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up, 0)

	// Mid-hop the bonus is still pending.
	if g.moving && g.score != 0 {
		t.Errorf("bonus committed before landing: score = %d", g.score)
	}

	stepN(g, 10, core.NewInputFrame())
	if g.score != g.cfg.Scoring.ForwardHop {
		t.Errorf("survived landing score = %d, want %d", g.score, g.cfg.Scoring.ForwardHop)
	}
}

func TestPlatformSupportCarries(t *testing.T) {
	g := newTestGame(3)
	clearLanes(g)
	row := rowOfType(t, g, LaneWater)
	placeActor(g, row, g.board.Columns/2)

	g.lanes[row].Hazards = []*Hazard{{
		X:     g.px - 20,
		Row:   row,
		Width: 96,
		Speed: 1.4,
		Dir:   1,
		Kind:  KindLogMedium,
	}}

	before := g.px
	g.Step(core.NewInputFrame(), 0)

	if g.state != StatePlaying {
		t.Fatalf("supported actor died: state = %s", g.state)
	}
	if g.px <= before {
		t.Errorf("carry should drag the actor along: %f -> %f", before, g.px)
	}
	if g.targetX != g.px {
		t.Errorf("carry must move the hop target with the actor")
	}
}

func TestCarryOffBoardIsDeath(t *testing.T) {
	g := newTestGame(3)
	clearLanes(g)
	row := rowOfType(t, g, LaneWater)
	placeActor(g, row, g.board.Columns-1)

	// A platform carrying the actor into the right edge.
	g.lanes[row].Hazards = []*Hazard{{
		X:     g.px - 20,
		Row:   row,
		Width: 96,
		Speed: 3.0,
		Dir:   1,
		Kind:  KindLogMedium,
	}}

	livesBefore := g.lives
	stepN(g, 120, core.NewInputFrame())

	if g.lives != livesBefore-1 {
		t.Errorf("carry off board should cost a life: %d -> %d", livesBefore, g.lives)
	}
}

func TestRoadCollisionKills(t *testing.T) {
	g := newTestGame(11)
	clearLanes(g)
	row := rowOfType(t, g, LaneRoad)
	placeActor(g, row, g.board.Columns/2)

	g.lanes[row].Hazards = []*Hazard{{
		X:     g.px - 10,
		Row:   row,
		Width: 44,
		Speed: 0,
		Dir:   -1,
		Kind:  KindCarSedan,
	}}

	res := g.Step(core.NewInputFrame(), 0)

	if g.state != StateDying {
		t.Fatalf("state = %s, want %s", g.state, StateDying)
	}
	if !hasEvent(res.Events, core.EventCrash) {
		t.Errorf("expected crash event, got %v", res.Events)
	}
}

func TestInvincibilitySuppressesRoadDeath(t *testing.T) {
	g := newTestGame(11)
	clearLanes(g)
	row := rowOfType(t, g, LaneRoad)
	placeActor(g, row, g.board.Columns/2)

	g.lanes[row].Hazards = []*Hazard{{
		X:     g.px - 10,
		Row:   row,
		Width: 44,
		Speed: 0,
		Dir:   -1,
		Kind:  KindCarSedan,
	}}
	g.invincibleMs = 5000

	livesBefore := g.lives
	stepN(g, 5, core.NewInputFrame())

	if g.state != StatePlaying {
		t.Errorf("invincible actor died: state = %s", g.state)
	}
	if g.lives != livesBefore {
		t.Errorf("invincible actor lost a life: %d -> %d", livesBefore, g.lives)
	}

	// Expired invincibility restores normal collision.
	g.invincibleMs = 0
	g.Step(core.NewInputFrame(), 0)
	if g.state != StateDying {
		t.Errorf("expired invincibility should not keep suppressing deaths")
	}
}

func TestInvincibilitySuppressesWaterDeath(t *testing.T) {
	g := newTestGame(13)
	clearLanes(g)
	row := rowOfType(t, g, LaneWater)
	placeActor(g, row, g.board.Columns/2)
	g.invincibleMs = 5000

	livesBefore := g.lives
	g.Step(core.NewInputFrame(), 0)

	if g.state != StatePlaying || g.lives != livesBefore {
		t.Errorf("invincibility must suppress water deaths too: state=%s lives=%d", g.state, g.lives)
	}
}

func TestHomeFillAndLevelUp(t *testing.T) {
	g := newTestGame(21)
	clearLanes(g)

	// Fill all but the last slot, then land on it.
	for i := 0; i < len(g.homes)-1; i++ {
		g.homes[i].Filled = true
	}
	last := g.homes[len(g.homes)-1]
	g.px = last.X
	g.py = g.board.RowY(g.board.HomeRow)
	g.targetX = g.px
	g.targetY = g.py
	g.moving = false

	scoreBefore := g.score
	res := g.Step(core.NewInputFrame(), 0)

	want := g.cfg.Scoring.ReachHome + g.cfg.Scoring.AllHomesBonus + 1*g.cfg.Scoring.LevelBonus
	if g.score-scoreBefore != want {
		t.Errorf("level completion score delta = %d, want %d", g.score-scoreBefore, want)
	}
	if g.level != 2 {
		t.Errorf("level = %d, want 2", g.level)
	}
	for i, spot := range g.homes {
		if spot.Filled {
			t.Errorf("home slot %d should be reset for the new level", i)
		}
	}
	if g.py != g.board.RowY(g.board.StartRow) {
		t.Errorf("actor should be reset to the start row after level up")
	}
	if !hasEvent(res.Events, core.EventVictory) || !hasEvent(res.Events, core.EventLevelUp) {
		t.Errorf("expected victory and levelup events, got %v", res.Events)
	}
}

func TestMisalignedHomeLandingIsDeath(t *testing.T) {
	g := newTestGame(21)
	clearLanes(g)

	// Land half a board away from any slot center.
	var col int
	for col = 1; col < g.board.Columns-1; col++ {
		x := float64(col * g.board.TileSize)
		aligned := false
		for _, spot := range g.homes {
			if x == spot.X {
				aligned = true
				break
			}
		}
		if !aligned {
			break
		}
	}
	placeActor(g, g.board.HomeRow, col)

	livesBefore := g.lives
	g.Step(core.NewInputFrame(), 0)

	if g.state != StateDying {
		t.Fatalf("misaligned home landing should be a death, state = %s", g.state)
	}
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
}

func TestFilledHomeSlotRejectsSecondLanding(t *testing.T) {
	g := newTestGame(21)
	clearLanes(g)

	g.homes[0].Filled = true
	g.px = g.homes[0].X
	g.py = g.board.RowY(g.board.HomeRow)
	g.targetX = g.px
	g.targetY = g.py
	g.moving = false

	g.Step(core.NewInputFrame(), 0)

	if g.state != StateDying {
		t.Errorf("landing on a filled slot should be a death, state = %s", g.state)
	}
}

func TestGameOverAndContinue(t *testing.T) {
	g := newTestGame(31)
	g.score = 700
	g.level = 3
	g.lives = 0
	g.state = StateGameOver

	in := core.NewInputFrame()
	in.Set(core.ActionContinue)
	g.Step(in, 0)

	if g.state != StatePlaying {
		t.Fatalf("continue should resume play, state = %s", g.state)
	}
	if g.score != 700 || g.level != 3 {
		t.Errorf("continue must keep score and level, got score=%d level=%d", g.score, g.level)
	}
	if g.lives != g.cfg.Run.Lives {
		t.Errorf("continue should restore lives, got %d", g.lives)
	}
	if g.continuesUsed != 1 {
		t.Errorf("continuesUsed = %d, want 1", g.continuesUsed)
	}
}

func TestContinueExhausted(t *testing.T) {
	g := newTestGame(31)
	g.continuesUsed = g.cfg.Run.MaxContinues
	g.lives = 0
	g.state = StateGameOver

	in := core.NewInputFrame()
	in.Set(core.ActionContinue)
	g.Step(in, 0)

	if g.state != StateGameOver {
		t.Errorf("exhausted continues must not resume play, state = %s", g.state)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(31)
	g.score = 900
	g.level = 4
	g.state = StateGameOver

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, 0)

	if g.score != 0 || g.level != 1 {
		t.Errorf("restart should begin a fresh run, got score=%d level=%d", g.score, g.level)
	}
	if g.state != StatePlaying {
		t.Errorf("restart state = %s, want %s", g.state, StatePlaying)
	}
}

func TestPauseFreezesHazards(t *testing.T) {
	g := newTestGame(5)
	row := rowOfType(t, g, LaneRoad)
	if len(g.lanes[row].Hazards) == 0 {
		t.Fatal("road lane spawned no hazards")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 0)
	if g.state != StatePaused {
		t.Fatalf("state = %s, want %s", g.state, StatePaused)
	}

	before := g.lanes[row].Hazards[0].X
	stepN(g, 30, core.NewInputFrame())
	if g.lanes[row].Hazards[0].X != before {
		t.Errorf("hazards moved while paused")
	}

	g.Step(pause, 0)
	if g.state != StatePlaying {
		t.Errorf("second pause press should resume, state = %s", g.state)
	}
}

func TestStalledFrameSkipsMotion(t *testing.T) {
	g := newTestGame(5)
	row := rowOfType(t, g, LaneRoad)
	before := g.lanes[row].Hazards[0].X
	px := g.px

	g.Step(core.NewInputFrame(), 2*time.Second)

	if g.lanes[row].Hazards[0].X != before {
		t.Errorf("stalled frame should not move hazards")
	}
	if g.px != px {
		t.Errorf("stalled frame should not move the actor")
	}
	if g.state != StatePlaying {
		t.Errorf("stalled frame should not kill the actor, state = %s", g.state)
	}
}

func TestStalledFrameStillAcceptsHop(t *testing.T) {
	g := newTestGame(5)
	clearLanes(g)
	py := g.py

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up, 2*time.Second)

	if g.py != py {
		t.Errorf("stalled frame should not move the actor")
	}
	if !g.moving || g.targetY != py-float64(g.board.TileSize) {
		t.Errorf("hop pressed on a stalled frame should still commit")
	}

	// The committed hop starts moving on the next normal frame.
	g.Step(core.NewInputFrame(), 0)
	if g.py >= py {
		t.Errorf("actor did not start moving after the stall: %f", g.py)
	}
}

func TestElapsedScalesMotion(t *testing.T) {
	g1 := newTestGame(17)
	g2 := newTestGame(17)
	row := rowOfType(t, g1, LaneRoad)

	// One double-length frame moves hazards as far as two nominal ones.
	g1.Step(core.NewInputFrame(), 0)
	g1.Step(core.NewInputFrame(), 0)
	ref := time.Duration(2 * g2.cfg.Board.ReferenceFrameMs * float64(time.Millisecond))
	g2.Step(core.NewInputFrame(), ref)

	x1 := g1.lanes[row].Hazards[0].X
	x2 := g2.lanes[row].Hazards[0].X
	if diff := x1 - x2; diff > 0.001 || diff < -0.001 {
		t.Errorf("elapsed scaling mismatch: two frames %f vs one double frame %f", x1, x2)
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newTestGame(19)
	clearLanes(g)

	g.powerUp = &PowerUp{
		X:    float64(g.board.Columns/2*g.board.TileSize) + float64(g.board.TileSize)/2,
		Row:  g.board.MedianRow,
		Kind: PowerInvincibility,
	}
	placeActor(g, g.board.MedianRow, g.board.Columns/2)

	res := g.Step(core.NewInputFrame(), 0)

	if !g.powerUp.Collected {
		t.Fatal("power-up within pickup radius should collect")
	}
	if g.invincibleMs <= 0 {
		t.Errorf("invincibility pickup should start the effect timer")
	}
	if !hasEvent(res.Events, core.EventPowerUp) {
		t.Errorf("expected powerup event, got %v", res.Events)
	}
}

func TestExtraLifeCapped(t *testing.T) {
	g := newTestGame(19)
	g.lives = g.cfg.PowerUps.MaxLives

	p := &PowerUp{Kind: PowerExtraLife}
	g.collectPowerUp(p)

	if g.lives != g.cfg.PowerUps.MaxLives {
		t.Errorf("extra life must cap at %d, got %d", g.cfg.PowerUps.MaxLives, g.lives)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(23)
	last := 0

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		if i%15 == 0 {
			in.Set(core.ActionUp)
		}
		res := g.Step(in, 0)
		if res.State.Score < last {
			t.Fatalf("score decreased at frame %d: %d -> %d", i, last, res.State.Score)
		}
		last = res.State.Score
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g1 := newTestGame(101)
	in := core.NewInputFrame()
	for i := 0; i < 150; i++ {
		in.Clear()
		if i%30 == 0 {
			in.Set(core.ActionUp)
		}
		g1.Step(in, 0)
	}
	snap := g1.Snapshot()

	g2 := newTestGame(999) // Different seed; snapshot must fully override
	g2.ApplySnapshot(snap)
	snap2 := g2.Snapshot()

	if snap.Hash() != snap2.Hash() {
		t.Errorf("Snapshot hash should match after apply, got %d, want %d", snap2.Hash(), snap.Hash())
	}
	if snap2.Score != snap.Score || snap2.Level != snap.Level || snap2.Lives != snap.Lives {
		t.Errorf("Restored run state mismatch: %+v vs %+v", snap2, snap)
	}
	if snap2.HazardCount != snap.HazardCount {
		t.Errorf("Restored hazard count = %d, want %d", snap2.HazardCount, snap.HazardCount)
	}
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
