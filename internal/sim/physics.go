// Package sim implements the deterministic duel simulation: physics, input
// buffering, fighter state machines, combat resolution and the match loop.
// It advances in fixed 1/60s ticks and contains no rendering or I/O, so the
// same input sequence always produces the same match.
package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
)

const (
	gravity            = -20.0 // units/s², tuned for game feel
	knockbackDecay     = 0.85  // multiplier per frame
	knockbackThreshold = 0.1   // below this, knockback stops
)

// Arena bounds. The x axis is the fighting axis, z is depth.
const (
	ArenaMinX float32 = -10.0
	ArenaMaxX float32 = 10.0
	ArenaMinZ float32 = -3.0
	ArenaMaxZ float32 = 3.0
	GroundY   float32 = 0.0
)

// Body is the physics state of one fighter. Movement velocity and knockback
// are kept separate: input sets velocity, hits set knockback, and knockback
// decays geometrically each frame.
type Body struct {
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Knockback mgl32.Vec3
	Grounded  bool
}

// NewBody creates a grounded body at the given position.
func NewBody(position mgl32.Vec3) Body {
	return Body{Position: position, Grounded: true}
}

// ApplyKnockback replaces the current knockback impulse. An upward component
// launches the body off the ground.
func (b *Body) ApplyKnockback(force mgl32.Vec3) {
	b.Knockback = force
	if force.Y() > 0 {
		b.Grounded = false
	}
}

// Tick advances the body by one frame. Returns true if the body just landed.
func (b *Body) Tick(dt float32) bool {
	justLanded := false

	// Gravity before movement so it takes effect this frame.
	if !b.Grounded {
		b.Velocity[1] += gravity * dt
	}

	b.Knockback = b.Knockback.Mul(knockbackDecay)
	if b.Knockback.Len() < knockbackThreshold {
		b.Knockback = mgl32.Vec3{}
	}

	total := b.Velocity.Add(b.Knockback)
	b.Position = b.Position.Add(total.Mul(dt))

	if !b.Grounded && b.Position.Y() <= GroundY {
		b.Position[1] = GroundY
		b.Velocity[1] = 0
		b.Grounded = true
		justLanded = true
	}

	b.Position[0] = core.ClampF(b.Position[0], ArenaMinX, ArenaMaxX)
	b.Position[2] = core.ClampF(b.Position[2], ArenaMinZ, ArenaMaxZ)

	if b.Grounded {
		b.Position[1] = GroundY
	}

	return justLanded
}

// SetMovement sets horizontal velocity from player input. The vertical
// component is left to gravity.
func (b *Body) SetMovement(vel mgl32.Vec3) {
	b.Velocity[0] = vel.X()
	b.Velocity[2] = vel.Z()
}

// StopMovement zeroes horizontal velocity.
func (b *Body) StopMovement() {
	b.Velocity[0] = 0
	b.Velocity[2] = 0
}
