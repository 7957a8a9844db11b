package vmath

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned 2D rectangle anchored at its minimum corner
type Rect struct {
	X, Y, W, H float32
}

// NewRect builds a canonical rect from two corners
func NewRect(min, max mgl32.Vec2) Rect {
	return Rect{X: min.X(), Y: min.Y(), W: max.X() - min.X(), H: max.Y() - min.Y()}.Canon()
}

// Canon flips negative extents so W and H are non-negative
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

func (r Rect) Min() mgl32.Vec2 { return mgl32.Vec2{r.X, r.Y} }

func (r Rect) Max() mgl32.Vec2 { return mgl32.Vec2{r.X + r.W, r.Y + r.H} }

func (r Rect) Center() mgl32.Vec2 { return mgl32.Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports a rect with no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects uses open intervals on both axes: shared edges do not count
// A rect with no area intersects nothing
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Overlap returns the intersection rect when Intersects holds
func (r Rect) Overlap(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	minX := max(r.X, o.X)
	minY := max(r.Y, o.Y)
	maxX := min(r.X+r.W, o.X+o.W)
	maxY := min(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// Contains tests a point against the closed rect
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.X && p.X() <= r.X+r.W &&
		p.Y() >= r.Y && p.Y() <= r.Y+r.H
}

// Translate offsets the rect
func (r Rect) Translate(d mgl32.Vec2) Rect {
	r.X += d.X()
	r.Y += d.Y()
	return r
}

// Scale multiplies position and extents per axis (local-space scaling about the origin)
func (r Rect) Scale(s mgl32.Vec2) Rect {
	return Rect{X: r.X * s.X(), Y: r.Y * s.Y(), W: r.W * s.X(), H: r.H * s.Y()}.Canon()
}
