package vmath

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box
type AABB struct {
	Min, Max mgl32.Vec3
}

// AABBFromCenter builds a box from its center and full size
func AABBFromCenter(center, size mgl32.Vec3) AABB {
	half := mgl32.Vec3{abs32(size.X()) / 2, abs32(size.Y()) / 2, abs32(size.Z()) / 2}
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (b AABB) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Extents returns half sizes
func (b AABB) Extents() mgl32.Vec3 { return b.Max.Sub(b.Min).Mul(0.5) }

// Intersects uses open intervals on every axis
func (b AABB) Intersects(o AABB) bool {
	for i := 0; i < 3; i++ {
		if !(b.Min[i] < o.Max[i] && o.Min[i] < b.Max[i]) {
			return false
		}
	}
	return true
}

// Contains tests a point against the closed box
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint clamps p into the box
func (b AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		p[i] = mgl32.Clamp(p[i], b.Min[i], b.Max[i])
	}
	return p
}

// XY projects the box onto the XY plane
func (b AABB) XY() Rect {
	return Rect{X: b.Min.X(), Y: b.Min.Y(), W: b.Max.X() - b.Min.X(), H: b.Max.Y() - b.Min.Y()}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
