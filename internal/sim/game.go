package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// DT is the fixed simulation timestep. The simulation always advances in
// whole frames at 60fps.
const DT float32 = 1.0 / 60.0

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

const (
	roundTimeSeconds = 60
	roundTimeFrames  = roundTimeSeconds * TicksPerSecond
	roundsToWin      = 2
	countdownFrames  = 180 // 3 seconds
	roundOverFrames  = 120 // 2 second pause between rounds

	staminaRegenRate   float32 = 0.3 // per frame, while free to act
	dashStaminaCost    float32 = 20
	specialStaminaCost float32 = 30
	aerialStaminaCost  float32 = 15
	superStaminaCost   float32 = 50

	attackLunge float32 = 3.5 // forward impulse when starting any attack

	hardKnockdownFrames = 40
	koKnockdownFrames   = 9999 // KO'd fighters stay down

	// Fighters drift toward a shared depth plane so attacks connect.
	depthAlignRate float32 = 0.3
)

// GamePhase is the top-level match state.
type GamePhase uint8

const (
	PhaseSelect GamePhase = iota
	PhaseCountdown
	PhaseFighting
	PhaseRoundOver
	PhaseMatchOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhaseCountdown:
		return "countdown"
	case PhaseFighting:
		return "fighting"
	case PhaseRoundOver:
		return "round_over"
	case PhaseMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

func startPosition(player int) mgl32.Vec3 {
	if player == 0 {
		return mgl32.Vec3{-1.5, 0, 0}
	}
	return mgl32.Vec3{1.5, 0, 0}
}

func startFacing(player int) core.Facing {
	if player == 0 {
		return core.FacingRight
	}
	return core.FacingLeft
}

// Game is a complete best-of-three duel. Tick once per frame with both
// players' held inputs.
type Game struct {
	Fighters       [2]*Fighter
	Phase          GamePhase
	Frame          uint32
	RoundTimer     uint32
	CurrentRound   uint32
	CountdownTimer uint32
	RoundOverTimer uint32
	LastHitInfo    string
}

// New creates a match between two catalog fighters, starting at the round
// countdown.
func New(p1ID, p2ID string) (*Game, error) {
	g := NewInSelect()
	if err := g.SelectFighters(p1ID, p2ID); err != nil {
		return nil, err
	}
	return g, nil
}

// NewInSelect creates a match waiting for fighter selection. Fighters is
// empty until SelectFighters is called.
func NewInSelect() *Game {
	return &Game{
		Phase:          PhaseSelect,
		RoundTimer:     roundTimeFrames,
		CurrentRound:   1,
		CountdownTimer: countdownFrames,
	}
}

// SelectFighters sets both fighters and starts the countdown.
func (g *Game) SelectFighters(p1ID, p2ID string) error {
	p1, err := NewFighter(p1ID, startPosition(0), startFacing(0))
	if err != nil {
		return err
	}
	p2, err := NewFighter(p2ID, startPosition(1), startFacing(1))
	if err != nil {
		return err
	}
	g.Fighters = [2]*Fighter{p1, p2}
	g.Phase = PhaseCountdown
	g.CountdownTimer = countdownFrames
	return nil
}

// Winner returns the match winner index once a fighter has taken enough
// rounds.
func (g *Game) Winner() (int, bool) {
	for i, f := range g.Fighters {
		if f != nil && f.RoundWins >= roundsToWin {
			return i, true
		}
	}
	return 0, false
}

// CountdownDisplay returns the text shown during the round countdown.
func (g *Game) CountdownDisplay() string {
	switch {
	case g.CountdownTimer > 120:
		return "3"
	case g.CountdownTimer > 60:
		return "2"
	case g.CountdownTimer > 0:
		return "1"
	default:
		return "FIGHT!"
	}
}

// RoundTimeRemaining returns the round clock in seconds.
func (g *Game) RoundTimeRemaining() float32 {
	return float32(g.RoundTimer) / TicksPerSecond
}

// Tick advances the match by one frame.
func (g *Game) Tick(p1Input, p2Input *InputState) {
	g.Frame++

	switch g.Phase {
	case PhaseSelect:
		// Selection is driven by the frontend.

	case PhaseCountdown:
		if g.CountdownTimer > 0 {
			g.CountdownTimer--
		} else {
			g.Phase = PhaseFighting
		}

	case PhaseFighting:
		g.tickFighting(p1Input, p2Input)

	case PhaseRoundOver:
		if g.RoundOverTimer > 0 {
			g.RoundOverTimer--
		} else if _, over := g.Winner(); over {
			g.Phase = PhaseMatchOver
		} else {
			g.CurrentRound++
			for i, f := range g.Fighters {
				f.ResetRound(startPosition(i), startFacing(i))
			}
			g.RoundTimer = roundTimeFrames
			g.CountdownTimer = countdownFrames
			g.Phase = PhaseCountdown
			g.LastHitInfo = ""
		}

	case PhaseMatchOver:
		// Nothing left to tick.
	}
}

func (g *Game) tickFighting(p1Input, p2Input *InputState) {
	inputs := [2]*InputState{p1Input, p2Input}

	for _, f := range g.Fighters {
		f.Buffer.SetFrame(g.Frame)
		f.Buffer.ExpireOld()
	}

	for i, in := range inputs {
		g.processInput(i, in)
	}

	// Forward lunge on the first frame of any attack.
	for _, f := range g.Fighters {
		if f.Machine.State == StateAttacking && f.Machine.FrameCounter == 0 {
			f.Body.Knockback[0] = f.Facing.Sign() * attackLunge
		}
	}

	for _, f := range g.Fighters {
		f.Machine.Tick()
	}

	for _, f := range g.Fighters {
		if f.Machine.CanAct() {
			f.Stamina = core.ClampF(f.Stamina+staminaRegenRate, 0, f.Data.MaxStamina)
			f.comboHitsTaken = 0
		}
	}

	// Pull both fighters toward their shared depth midpoint so strafing
	// never takes them permanently off-plane.
	midZ := (g.Fighters[0].Body.Position.Z() + g.Fighters[1].Body.Position.Z()) * 0.5
	for _, f := range g.Fighters {
		f.Body.Position[2] = core.Lerp(f.Body.Position.Z(), midZ, depthAlignRate)
	}

	// Face the opponent, unless locked in an animation.
	p0x := g.Fighters[0].Body.Position.X()
	p1x := g.Fighters[1].Body.Position.X()
	if g.Fighters[0].Machine.CanAct() {
		if p0x < p1x {
			g.Fighters[0].Facing = core.FacingRight
		} else {
			g.Fighters[0].Facing = core.FacingLeft
		}
	}
	if g.Fighters[1].Machine.CanAct() {
		if p1x < p0x {
			g.Fighters[1].Facing = core.FacingRight
		} else {
			g.Fighters[1].Facing = core.FacingLeft
		}
	}

	g.checkCombat()

	for _, f := range g.Fighters {
		landed := f.Body.Tick(DT)
		if landed && f.Machine.State == StateAirborne {
			f.Machine.Land()
			f.Body.StopMovement()
		}
	}

	if g.RoundTimer > 0 {
		g.RoundTimer--
	}

	g.checkRoundEnd()
}

// processInput translates one player's held inputs into fighter commands.
// Priority: block > dash > combos > single attacks > movement.
func (g *Game) processInput(idx int, input *InputState) {
	f := g.Fighters[idx]

	if !f.Machine.CanAct() {
		// The only thing a busy fighter can do is release block.
		if f.Machine.State == StateBlocking && !input.Block {
			f.Machine.StopBlock()
		}
		return
	}

	if input.Block {
		f.Machine.StartBlock()
		f.Body.StopMovement()
		return
	}

	if input.Dash && f.Stamina >= dashStaminaCost {
		if f.Machine.StartDash(f.Data.DashFrames) {
			f.Stamina -= dashStaminaCost
			f.Body.SetMovement(mgl32.Vec3{f.Facing.Sign() * f.Data.DashSpeed, 0, 0})
			return
		}
	}

	// Buffer attack presses before checking combos.
	if input.LightAttack {
		f.Buffer.Push(ActionLightAttack)
	}
	if input.HeavyAttack {
		f.Buffer.Push(ActionHeavyAttack)
	}
	if input.Special {
		f.Buffer.Push(ActionSpecial)
	}

	if combo := f.Buffer.DetectCombo(); combo != ComboNone {
		kind := AttackComboFinisher
		if combo == ComboSuper {
			kind = AttackSuper
		}
		canAfford := combo != ComboSuper || f.Stamina >= superStaminaCost

		if canAfford && f.startAttack(kind) {
			f.Buffer.Clear()
			f.Body.StopMovement()
			if combo == ComboSuper {
				f.Stamina -= superStaminaCost
			}
			return
		}
	}

	if input.LightAttack && f.startAttack(AttackLight) {
		f.Body.StopMovement()
		return
	}

	if input.HeavyAttack && f.startAttack(AttackHeavy) {
		f.Body.StopMovement()
		return
	}

	if input.Special && f.Stamina >= specialStaminaCost {
		if f.startAttack(AttackSpecial) {
			f.Stamina -= specialStaminaCost
			f.Body.StopMovement()
			return
		}
	}

	if input.MidKick && f.startAttack(AttackMidKick) {
		f.Body.StopMovement()
		return
	}

	if input.LowKick && f.startAttack(AttackLowKick) {
		f.Body.StopMovement()
		return
	}

	if input.Aerial && f.Stamina >= aerialStaminaCost {
		if f.startAttack(AttackAerial) {
			f.Stamina -= aerialStaminaCost
			f.Body.StopMovement()
			return
		}
	}

	if input.HasMovement() {
		var vel mgl32.Vec3
		speed := f.Data.MoveSpeed
		if input.MoveForward {
			vel[0] += f.Facing.Sign() * speed
		}
		if input.MoveBack {
			vel[0] -= f.Facing.Sign() * speed
		}
		if input.MoveLeft {
			vel[2] -= speed * 0.5
		}
		if input.MoveRight {
			vel[2] += speed * 0.5
		}
		f.Body.SetMovement(vel)
		f.Machine.SetMoving()
	} else {
		f.Body.StopMovement()
		f.Machine.SetIdle()
	}
}

func (g *Game) checkCombat() {
	for attackerIdx := 0; attackerIdx < 2; attackerIdx++ {
		defenderIdx := 1 - attackerIdx
		attacker := g.Fighters[attackerIdx]
		defender := g.Fighters[defenderIdx]

		if !attacker.Machine.IsAttackActive() {
			continue
		}
		if attacker.Machine.HitConnected {
			continue
		}
		if !defender.Machine.IsVulnerable() {
			continue
		}

		kind := attacker.Machine.Attack
		if kind == AttackNone {
			continue
		}
		move := attacker.MoveFor(kind)
		blocking := defender.Machine.State == StateBlocking

		check := HitCheck{
			AttackerPos:     attacker.Body.Position,
			AttackerFacing:  attacker.Facing,
			Move:            move,
			Weapon:          attacker.Weapon,
			DefenderPos:     defender.Body.Position,
			DefenderHurtbox: defender.Data.Hurtbox(),
			DefenderDefense: defender.Data.Defense,
			Blocking:        blocking,
			ComboHits:       defender.comboHitsTaken,
			StaleMultiplier: attacker.currentStale,
		}

		hit, ok := check.Evaluate()
		if !ok {
			continue
		}

		defender.Health = core.ClampF(defender.Health-hit.Damage, 0, defender.Data.MaxHealth)
		defender.Body.ApplyKnockback(hit.Knockback)
		defender.comboHitsTaken++

		isKO := defender.Health <= 0
		causesKnockdown := kind == AttackComboFinisher || kind == AttackSuper || kind == AttackLowKick

		switch {
		case isKO:
			defender.Machine.EnterKnockdown(koKnockdownFrames)
		case hit.Launches:
			defender.Machine.EnterAirborne()
		case !blocking && causesKnockdown:
			defender.Machine.EnterKnockdown(hardKnockdownFrames)
		case !blocking:
			defender.Machine.EnterHitStun(hit.HitstunFrames)
		}

		attacker.Machine.HitConnected = true

		blockedTag := ""
		if hit.WasBlocked {
			blockedTag = " (BLOCKED)"
		}
		g.LastHitInfo = fmt.Sprintf("P%d %s -> P%d for %.1f dmg%s",
			attackerIdx+1, move.Name, defenderIdx+1, hit.Damage, blockedTag)
	}
}

func (g *Game) checkRoundEnd() {
	p1Dead := !g.Fighters[0].IsAlive()
	p2Dead := !g.Fighters[1].IsAlive()
	timeUp := g.RoundTimer == 0

	if !p1Dead && !p2Dead && !timeUp {
		return
	}

	switch {
	case p1Dead && !p2Dead:
		g.Fighters[1].RoundWins++
	case p2Dead && !p1Dead:
		g.Fighters[0].RoundWins++
	case timeUp:
		// Higher health percentage takes the round; a draw awards no one.
		if g.Fighters[0].HealthPct() > g.Fighters[1].HealthPct() {
			g.Fighters[0].RoundWins++
		} else if g.Fighters[1].HealthPct() > g.Fighters[0].HealthPct() {
			g.Fighters[1].RoundWins++
		}
	}

	g.Phase = PhaseRoundOver
	g.RoundOverTimer = roundOverFrames
}
