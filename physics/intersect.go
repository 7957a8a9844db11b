package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// IntersectRay tests a ray against world bounds, ignoring the ray's max distance
// A ray starting inside reports distance 0, the origin as point and -direction as normal
func IntersectRay(r Ray, b Bounds) (dist float32, point, normal mgl32.Vec3, ok bool) {
	if r.Direction.Len() == 0 {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}

	switch b.Kind {
	case ShapeRect:
		lo := mgl32.Vec3{b.Rect.X, b.Rect.Y, 0}
		hi := mgl32.Vec3{b.Rect.X + b.Rect.W, b.Rect.Y + b.Rect.H, 0}
		dist, normal, ok = raySlabs(r, lo, hi, 2)
	case ShapeBox:
		dist, normal, ok = raySlabs(r, b.Box.Min, b.Box.Max, 3)
	case ShapeSphere:
		dist, normal, ok = raySphere(r, b.Center, b.Radius)
	}
	if !ok {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	return dist, r.At(dist), normal, true
}

// raySlabs clips the ray against axis slabs [lo, hi] on the first n axes
func raySlabs(r Ray, lo, hi mgl32.Vec3, n int) (float32, mgl32.Vec3, bool) {
	tEnter := float32(math.Inf(-1))
	tExit := float32(math.Inf(1))
	axis := -1
	var sign float32

	for i := 0; i < n; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if float32(math.Abs(float64(d))) < 1e-8 {
			// Parallel: must already lie strictly between the faces
			if o <= lo[i] || o >= hi[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo[i] - o) * inv
		t2 := (hi[i] - o) * inv
		s := float32(-1) // Entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tEnter {
			tEnter = t1
			axis = i
			sign = s
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, mgl32.Vec3{}, false
		}
	}

	// Box behind the origin, or the origin on a face with the ray leaving
	if tExit <= originEpsilon {
		return 0, mgl32.Vec3{}, false
	}
	if tEnter < 0 || axis < 0 {
		return 0, r.Direction.Mul(-1), true
	}
	var normal mgl32.Vec3
	normal[axis] = sign
	return tEnter, normal, true
}

func raySphere(r Ray, center mgl32.Vec3, radius float32) (float32, mgl32.Vec3, bool) {
	m := r.Origin.Sub(center)
	b := m.Dot(r.Direction)
	c := m.Dot(m) - radius*radius
	if c >= 0 && b > 0 {
		// Outside or on the surface, pointing away
		return 0, mgl32.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, mgl32.Vec3{}, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		return 0, r.Direction.Mul(-1), true
	}
	n := r.At(t).Sub(center)
	if n.Len() > 0 {
		n = n.Normalize()
	}
	return t, n, true
}
