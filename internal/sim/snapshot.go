package sim

// FighterSnapshot captures one fighter's observable state.
type FighterSnapshot struct {
	ID           string
	Health       float32
	Stamina      float32
	HealthPct    float32
	StaminaPct   float32
	PosX         float32
	PosY         float32
	PosZ         float32
	VelX         float32
	VelY         float32
	VelZ         float32
	State        string
	AttackName   string
	AttackPhase  string
	FacingRight  bool
	Grounded     bool
	RoundWins    uint32
	ComboCounter uint32
}

// Snapshot captures the complete match state for determinism testing and
// frontends.
type Snapshot struct {
	Frame          uint32
	Phase          string
	Round          uint32
	RoundTimer     uint32
	CountdownTimer uint32
	LastHitInfo    string
	Fighters       [2]FighterSnapshot
}

// Snapshot returns the current match snapshot. Two games fed identical
// inputs produce identical snapshots frame by frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:          g.Frame,
		Phase:          g.Phase.String(),
		Round:          g.CurrentRound,
		RoundTimer:     g.RoundTimer,
		CountdownTimer: g.CountdownTimer,
		LastHitInfo:    g.LastHitInfo,
	}
	for i, f := range g.Fighters {
		if f == nil {
			continue
		}
		fs := FighterSnapshot{
			ID:           f.Data.ID,
			Health:       f.Health,
			Stamina:      f.Stamina,
			HealthPct:    f.HealthPct(),
			StaminaPct:   f.StaminaPct(),
			PosX:         f.Body.Position.X(),
			PosY:         f.Body.Position.Y(),
			PosZ:         f.Body.Position.Z(),
			VelX:         f.Body.Velocity.X(),
			VelY:         f.Body.Velocity.Y(),
			VelZ:         f.Body.Velocity.Z(),
			State:        f.Machine.State.String(),
			FacingRight:  f.Facing.Sign() > 0,
			Grounded:     f.Body.Grounded,
			RoundWins:    f.RoundWins,
			ComboCounter: f.comboHitsTaken,
		}
		if f.Machine.State == StateAttacking && f.Machine.Attack != AttackNone {
			fs.AttackName = f.MoveFor(f.Machine.Attack).Name
			fs.AttackPhase = f.Machine.Phase.String()
		}
		s.Fighters[i] = fs
	}
	return s
}
