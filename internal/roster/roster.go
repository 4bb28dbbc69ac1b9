// Package roster holds the fighter and weapon catalog. Definitions live in
// YAML so move data can be tuned without recompiling; an embedded default
// catalog makes the binary self-contained.
package roster

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Move describes a single attack: its timing windows, damage scaling and
// hitbox placement relative to the fighter's feet.
type Move struct {
	Name             string     `yaml:"name"`
	DamageMultiplier float32    `yaml:"damage_multiplier"`
	Startup          uint32     `yaml:"startup"`
	Active           uint32     `yaml:"active"`
	Recovery         uint32     `yaml:"recovery"`
	Knockback        float32    `yaml:"knockback"`
	Offset           mgl32.Vec3 `yaml:"offset"`
	HalfExtents      mgl32.Vec3 `yaml:"half_extents"`
	Launches         bool       `yaml:"launches"`
}

// TotalFrames is the full duration of the move at base weapon speed.
func (m *Move) TotalFrames() uint32 {
	return m.Startup + m.Active + m.Recovery
}

// Moveset is the full command list of a fighter.
type Moveset struct {
	Light         Move `yaml:"light"`
	Heavy         Move `yaml:"heavy"`
	Special       Move `yaml:"special"`
	MidKick       Move `yaml:"mid_kick"`
	LowKick       Move `yaml:"low_kick"`
	Aerial        Move `yaml:"aerial"`
	ComboFinisher Move `yaml:"combo_finisher"`
	Super         Move `yaml:"super"`
}

// Fighter is the static definition of a playable character.
type Fighter struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Style      string     `yaml:"style"`
	MaxHealth  float32    `yaml:"max_health"`
	MaxStamina float32    `yaml:"max_stamina"`
	MoveSpeed  float32    `yaml:"move_speed"`
	DashSpeed  float32    `yaml:"dash_speed"`
	DashFrames uint32     `yaml:"dash_frames"`
	Defense    float32    `yaml:"defense"`
	WeaponID   string     `yaml:"weapon"`
	HurtboxMin mgl32.Vec3 `yaml:"hurtbox_min"`
	HurtboxMax mgl32.Vec3 `yaml:"hurtbox_max"`
	Moves      Moveset    `yaml:"moves"`
}

// Hurtbox returns the body hurtbox in fighter-local space (origin at feet).
func (f *Fighter) Hurtbox() core.AABB {
	return core.NewAABB(f.HurtboxMin, f.HurtboxMax)
}

// Weapon is the static definition of a weapon. Damage and knockback of every
// move are scaled by the wielder's weapon.
type Weapon struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	BaseDamage  float32    `yaml:"base_damage"`
	AttackSpeed float32    `yaml:"attack_speed"`
	Range       float32    `yaml:"range"`
	Weight      float32    `yaml:"weight"`
	HalfExtents mgl32.Vec3 `yaml:"half_extents"`
}

// Info is a summary row for roster listings.
type Info struct {
	ID     string
	Name   string
	Style  string
	Weapon string
}
