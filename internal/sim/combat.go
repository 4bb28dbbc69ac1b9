package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/roster"
)

const (
	blockDamageReduction = 0.2 // blocked attacks deal 20% of normal damage
	hitstunBaseFrames    = 12
	launchVelocityY      = 8.0
)

// HitResult describes the outcome of a connecting attack.
type HitResult struct {
	Damage        float32
	Knockback     mgl32.Vec3
	HitstunFrames uint32
	WasBlocked    bool
	Launches      bool
}

// AttackHitbox builds the world-space hitbox for a move, mirroring the
// offset by the attacker's facing.
func AttackHitbox(attackerPos mgl32.Vec3, facing core.Facing, move *roster.Move) core.AABB {
	offset := move.Offset
	offset[0] *= facing.Sign()
	return core.AABBFromCenter(attackerPos.Add(offset), move.HalfExtents)
}

// DefenderHurtbox places a fighter-local hurtbox in world space.
func DefenderHurtbox(defenderPos mgl32.Vec3, local core.AABB) core.AABB {
	return local.Translated(defenderPos)
}

// HitCheck carries everything needed to resolve one attack against one
// defender for the current frame.
type HitCheck struct {
	AttackerPos     mgl32.Vec3
	AttackerFacing  core.Facing
	Move            *roster.Move
	Weapon          *roster.Weapon
	DefenderPos     mgl32.Vec3
	DefenderHurtbox core.AABB // fighter-local, origin at feet
	DefenderDefense float32
	Blocking        bool
	ComboHits       uint32  // hits the defender has taken in the current combo
	StaleMultiplier float32 // 1.0 = fresh move, lower = repeated
}

// Evaluate tests the hitbox against the hurtbox and, on overlap, resolves
// damage, knockback and hitstun.
func (h *HitCheck) Evaluate() (HitResult, bool) {
	hitbox := AttackHitbox(h.AttackerPos, h.AttackerFacing, h.Move)
	hurtbox := DefenderHurtbox(h.DefenderPos, h.DefenderHurtbox)
	if !hitbox.Overlaps(hurtbox) {
		return HitResult{}, false
	}
	return h.resolve(), true
}

// resolve computes the hit outcome assuming the boxes overlap.
func (h *HitCheck) resolve() HitResult {
	// Combo scaling: each hit in a combo does 15% less damage, minimum 40%,
	// and gives 25% less hitstun, minimum 30%.
	comboDamageScale := float32(math.Max(float64(1-float32(h.ComboHits)*0.15), 0.4))
	comboHitstunScale := float32(math.Max(float64(1-float32(h.ComboHits)*0.25), 0.3))

	rawDamage := h.Weapon.BaseDamage * h.Move.DamageMultiplier * h.StaleMultiplier
	var damage float32
	if h.Blocking {
		damage = rawDamage * blockDamageReduction * h.DefenderDefense
	} else {
		damage = rawDamage * h.DefenderDefense * comboDamageScale
	}

	// Knockback pushes the defender away from the attacker.
	var dirX float32 = 1
	if h.DefenderPos.X() < h.AttackerPos.X() {
		dirX = -1
	}

	comboKnockbackBoost := 1 + float32(h.ComboHits)*0.2
	var magnitude float32
	if h.Blocking {
		magnitude = h.Move.Knockback * 0.3
	} else {
		magnitude = h.Move.Knockback * comboKnockbackBoost
	}

	launches := h.Move.Launches && !h.Blocking

	var launchY float32
	if launches {
		launchY = launchVelocityY
	}
	knockback := mgl32.Vec3{dirX * magnitude, launchY, 0}

	var baseHitstun uint32
	if h.Blocking {
		baseHitstun = hitstunBaseFrames / 2
	} else {
		baseHitstun = hitstunBaseFrames + uint32(math.Round(float64(h.Move.Knockback)))
	}
	hitstun := uint32(math.Round(float64(baseHitstun) * float64(comboHitstunScale)))

	return HitResult{
		Damage:        damage,
		Knockback:     knockback,
		HitstunFrames: hitstun,
		WasBlocked:    h.Blocking,
		Launches:      launches,
	}
}
