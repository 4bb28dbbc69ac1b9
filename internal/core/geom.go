// Package core provides fundamental types and utilities for the duel engine.
// It contains no external dependencies beyond vector math (especially no
// Bubble Tea) to keep simulation logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box in world space, stored as opposite
// corners. Used for hitboxes, hurtboxes and ground collision.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box from explicit corners.
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromCenter creates a box centered at center, extending halfExtents
// along each axis in both directions.
func AABBFromCenter(center, halfExtents mgl32.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Translated returns a copy of the box shifted by offset.
func (b AABB) Translated(offset mgl32.Vec3) AABB {
	return AABB{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

// Overlaps returns true if the boxes intersect on all three axes.
// Touching faces count as overlap, so adjacent boxes sharing a face collide.
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y() &&
		b.Min.Z() <= other.Max.Z() && b.Max.Z() >= other.Min.Z()
}

// Facing is the horizontal direction a fighter looks along the x axis.
type Facing int8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right, -1 for left. Attack offsets and knockback
// are mirrored by multiplying their x component with this.
func (f Facing) Sign() float32 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
