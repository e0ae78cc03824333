// Package math provides small float32 helpers shared by the engine packages.
// Vector and matrix types come from mgl32.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Wrap01 wraps v into [0, 1).
func Wrap01(v float32) float32 {
	w := v - math32.Floor(v)
	if w >= 1 {
		return 0
	}
	return w
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// PlaneDistance returns the signed value of plane equation (a,b,c,d) at p.
// Points with a negative result lie on the culled side.
func PlaneDistance(plane mgl32.Vec4, p mgl32.Vec3) float32 {
	return plane.Dot(p.Vec4(1))
}

// ClampVec3 clamps every component of v to [lo, hi].
func ClampVec3(v mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi)}
}

// ClampVec4 clamps every component of v to [lo, hi].
func ClampVec4(v mgl32.Vec4, lo, hi float32) mgl32.Vec4 {
	return mgl32.Vec4{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi), Clamp(v[3], lo, hi)}
}
