package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/roster"
)

// Staleness: repeating the same move within the recent window cuts its
// damage, so mashing one attack is punished.
const (
	staleWindow  = 5
	stalePenalty = 0.15
	staleFloor   = 0.5
)

// Fighter is the runtime state of one combatant: static catalog data plus
// the live health, physics, input buffer and state machine.
type Fighter struct {
	Data      *roster.Fighter
	Weapon    *roster.Weapon
	Machine   Machine
	Body      Body
	Buffer    Buffer
	Health    float32
	Stamina   float32
	Facing    core.Facing
	RoundWins uint32

	comboHitsTaken uint32       // consecutive hits taken; resets once free to act
	recentMoves    []AttackKind // window of recently started attacks
	currentStale   float32      // staleness multiplier of the attack in progress
}

// NewFighter resolves a catalog fighter and places it in the arena.
func NewFighter(id string, position mgl32.Vec3, facing core.Facing) (*Fighter, error) {
	data, err := roster.Lookup(id)
	if err != nil {
		return nil, err
	}
	weapon, err := roster.LookupWeapon(data.WeaponID)
	if err != nil {
		return nil, err
	}
	return &Fighter{
		Data:         data,
		Weapon:       weapon,
		Machine:      NewMachine(),
		Body:         NewBody(position),
		Buffer:       NewBuffer(),
		Health:       data.MaxHealth,
		Stamina:      data.MaxStamina,
		Facing:       facing,
		currentStale: 1,
	}, nil
}

// IsAlive reports whether the fighter has health left.
func (f *Fighter) IsAlive() bool {
	return f.Health > 0
}

// HealthPct returns remaining health in [0, 1].
func (f *Fighter) HealthPct() float32 {
	return core.ClampF(f.Health/f.Data.MaxHealth, 0, 1)
}

// StaminaPct returns remaining stamina in [0, 1].
func (f *Fighter) StaminaPct() float32 {
	return core.ClampF(f.Stamina/f.Data.MaxStamina, 0, 1)
}

// MoveFor returns the catalog move for an attack kind.
func (f *Fighter) MoveFor(kind AttackKind) *roster.Move {
	m := &f.Data.Moves
	switch kind {
	case AttackLight:
		return &m.Light
	case AttackHeavy:
		return &m.Heavy
	case AttackSpecial:
		return &m.Special
	case AttackMidKick:
		return &m.MidKick
	case AttackLowKick:
		return &m.LowKick
	case AttackAerial:
		return &m.Aerial
	case AttackComboFinisher:
		return &m.ComboFinisher
	case AttackSuper:
		return &m.Super
	}
	return nil
}

// startAttack begins a move with weapon-speed-adjusted startup and records
// it for staleness. Returns false if the fighter cannot act.
func (f *Fighter) startAttack(kind AttackKind) bool {
	move := f.MoveFor(kind)
	startup := uint32(float32(move.Startup) / f.Weapon.AttackSpeed)
	if !f.Machine.StartAttack(kind, startup, move.Active, move.Recovery) {
		return false
	}
	f.noteAttackStart(kind)
	return true
}

func (f *Fighter) noteAttackStart(kind AttackKind) {
	count := 0
	for _, k := range f.recentMoves {
		if k == kind {
			count++
		}
	}
	f.currentStale = float32(math.Max(float64(1-float32(count)*stalePenalty), staleFloor))
	f.recentMoves = append(f.recentMoves, kind)
	if len(f.recentMoves) > staleWindow {
		f.recentMoves = f.recentMoves[1:]
	}
}

// ResetRound restores the fighter for a new round, keeping round wins.
func (f *Fighter) ResetRound(position mgl32.Vec3, facing core.Facing) {
	f.Machine = NewMachine()
	f.Body = NewBody(position)
	f.Buffer = NewBuffer()
	f.Health = f.Data.MaxHealth
	f.Stamina = f.Data.MaxStamina
	f.Facing = facing
	f.comboHitsTaken = 0
	f.recentMoves = f.recentMoves[:0]
	f.currentStale = 1
}
