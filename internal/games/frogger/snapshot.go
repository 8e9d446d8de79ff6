package frogger

// Snapshot captures the complete game state for determinism testing
// and replay. Uses primitive types only for stable serialization;
// pixel positions are scaled by 1000.
type Snapshot struct {
	Tick          uint64
	Score         int
	PendingScore  int // Forward-progress bonus of an unresolved hop
	Lives         int
	Level         int
	Continues     int
	State         string
	ActorX        int // Scaled by 1000
	ActorY        int // Scaled by 1000
	TargetX       int // Scaled by 1000
	TargetY       int // Scaled by 1000
	Moving        bool
	FurthestRow   int
	InvincibleMs  int
	DeathPauseMs  int
	HomeMask      int // Bit i set = home slot i filled
	HazardCount   int
	HazardData    []int // Per hazard: x*1000, row, kind, divePhase, diveTimerMs
	PowerUpActive bool
	PowerUpX      int // Scaled by 1000
	PowerUpKind   int
}

// Snapshot returns the current game snapshot for determinism
// verification or later restore.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		PendingScore: g.pendingHopScore,
		Lives:        g.lives,
		Level:        g.level,
		Continues:    g.continuesUsed,
		State:        g.state,
		ActorX:       int(g.px * 1000),
		ActorY:       int(g.py * 1000),
		TargetX:      int(g.targetX * 1000),
		TargetY:      int(g.targetY * 1000),
		Moving:       g.moving,
		FurthestRow:  g.furthestRow,
		InvincibleMs: int(g.invincibleMs),
		DeathPauseMs: int(g.deathPauseMs),
	}
	if g.tooSmall {
		snap.State = StateSmall
	}

	for i, spot := range g.homes {
		if spot.Filled {
			snap.HomeMask |= 1 << i
		}
	}

	for _, lane := range g.lanes {
		for _, h := range lane.Hazards {
			snap.HazardCount++
			phase, timer := -1, 0
			if h.Dive != nil {
				phase = int(h.Dive.Phase)
				timer = int(h.Dive.TimerMs)
			}
			snap.HazardData = append(snap.HazardData,
				int(h.X*1000), h.Row, int(h.Kind), phase, timer)
		}
	}

	if p := g.powerUp; p != nil && !p.Collected {
		snap.PowerUpActive = true
		snap.PowerUpX = int(p.X * 1000)
		snap.PowerUpKind = int(p.Kind)
	}

	return snap
}

// ApplySnapshot restores the game state from a snapshot. The board and
// configuration must match the ones the snapshot was taken from.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.score = snap.Score
	g.pendingHopScore = snap.PendingScore
	g.lives = snap.Lives
	g.level = snap.Level
	g.continuesUsed = snap.Continues
	g.state = snap.State
	if snap.State == StateSmall {
		g.state = StatePlaying
	}
	g.px = float64(snap.ActorX) / 1000
	g.py = float64(snap.ActorY) / 1000
	g.targetX = float64(snap.TargetX) / 1000
	g.targetY = float64(snap.TargetY) / 1000
	g.moving = snap.Moving
	g.furthestRow = snap.FurthestRow
	g.invincibleMs = float64(snap.InvincibleMs)
	g.deathPauseMs = float64(snap.DeathPauseMs)

	for i := range g.homes {
		g.homes[i].Filled = snap.HomeMask&(1<<i) != 0
	}

	// Rebuild hazard lists; widths and speeds derive from the lane
	// specs, dive states from the recorded phase and timer.
	for _, lane := range g.lanes {
		lane.Hazards = lane.Hazards[:0]
	}
	for i := 0; i+4 < len(snap.HazardData); i += 5 {
		row := snap.HazardData[i+1]
		if row < 0 || row >= len(g.lanes) {
			continue
		}
		lane := g.lanes[row]
		kind := HazardKind(snap.HazardData[i+2])
		h := &Hazard{
			X:     float64(snap.HazardData[i]) / 1000,
			Row:   row,
			Width: kind.Spec().Width,
			Speed: g.factory.hazardSpeed(lane.Spec, g.level),
			Dir:   lane.Spec.Dir,
			Kind:  kind,
		}
		if phase := snap.HazardData[i+3]; phase >= 0 {
			h.Dive = &DiveState{
				Phase:   DivePhase(phase),
				TimerMs: float64(snap.HazardData[i+4]),
			}
		}
		lane.Hazards = append(lane.Hazards, h)
	}

	g.powerUp = nil
	if snap.PowerUpActive {
		g.powerUp = &PowerUp{
			X:    float64(snap.PowerUpX) / 1000,
			Row:  g.board.MedianRow,
			Kind: PowerUpKind(snap.PowerUpKind),
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Continues)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FurthestRow)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvincibleMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DeathPauseMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HomeMask)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HazardCount)  //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.HazardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.PowerUpActive {
		h = h*31 + uint64(snap.PowerUpX)    //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.PowerUpKind) //#nosec G115 -- hash computation
	}

	return h
}
