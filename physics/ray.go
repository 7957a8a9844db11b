package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/core"
)

// Ray is a half-line segment: origin, unit direction, maximum travel distance
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Distance  float32
}

// NewRay normalizes dir; a zero dir yields a ray that hits nothing
func NewRay(origin, dir mgl32.Vec3, distance float32) Ray {
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Direction: dir, Distance: distance}
}

// RayBetween builds a ray from a to b with distance |b-a|
func RayBetween(a, b mgl32.Vec3) Ray {
	d := b.Sub(a)
	return NewRay(a, d, d.Len())
}

// At returns the point at distance t along the ray
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayHit describes the closest intersection found by a raycast
type RayHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Collider *Collider
	Entity   core.Entity
}

// RayParams filters a raycast
type RayParams struct {
	// CanHitFromOrigin allows reporting a collider that already contains the origin
	CanHitFromOrigin bool
	// Ignore skips colliders owned by this entity (zero ignores nothing)
	Ignore core.Entity
	// Mask restricts hits to colliders whose Layer shares a bit (zero matches all)
	Mask uint32
}

// originEpsilon is the distance under which a hit counts as "at the origin"
const originEpsilon = 1e-4
