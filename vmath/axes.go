package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Local axes in a right-handed, Y-up frame; forward looks down -Z
var (
	Forward = mgl32.Vec3{0, 0, -1}
	Right   = mgl32.Vec3{1, 0, 0}
	Up      = mgl32.Vec3{0, 1, 0}
	One     = mgl32.Vec3{1, 1, 1}
)

// Epsilon is the tolerance used by geometric predicates
const Epsilon = 1e-5

// NearlyEqual compares floats within eps
func NearlyEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// ApproxZero reports |v| within Epsilon
func ApproxZero(v float32) bool {
	return NearlyEqual(v, 0, Epsilon)
}

// Compose builds a local-to-parent matrix T*R*S: scale applies first, then rotation, then translation
func Compose(location mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(location.X(), location.Y(), location.Z())
	r := rotation.Mat4()
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(r).Mul4(s)
}

// LookRotation returns the rotation that maps Forward onto dir
// Zero dir yields identity; dir parallel to up falls back to an alternate up axis
func LookRotation(dir, up mgl32.Vec3) mgl32.Quat {
	if dir.Len() < Epsilon {
		return mgl32.QuatIdent()
	}
	f := dir.Normalize()
	if up.Len() < Epsilon {
		up = Up
	}
	r := f.Cross(up)
	if r.Len() < Epsilon {
		// Looking straight along up; any perpendicular works
		alt := Forward
		if math.Abs(float64(f.Dot(alt))) > 0.9 {
			alt = Right
		}
		r = f.Cross(alt)
	}
	r = r.Normalize()
	u := r.Cross(f)

	m := mgl32.Mat3FromCols(r, u, f.Mul(-1))
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}

// TransformPoint applies m to a point (w=1)
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v.W() != 0 && v.W() != 1 {
		return v.Vec3().Mul(1 / v.W())
	}
	return v.Vec3()
}
