package water

import (
	"github.com/go-gl/mathgl/mgl32"

	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// ClipEpsilon lifts the clip plane slightly above the surface to hide seams
// where terrain meets the water.
const ClipEpsilon = 0.1

// ClippingPlane returns the world-space plane used to cull terrain while
// rendering the refraction or reflection texture.
//
// With keepAbove false the plane is (0, -1, 0, h+ε) and keeps geometry below
// the surface. With keepAbove true it is the exact negation and keeps
// geometry above. Fragments where dot(vec4(p, 1), plane) < 0 are discarded.
func ClippingPlane(waterHeight float32, keepAbove bool) mgl32.Vec4 {
	plane := mgl32.Vec4{0, -1, 0, waterHeight + ClipEpsilon}
	if keepAbove {
		return plane.Mul(-1)
	}
	return plane
}

// ClipPlanes holds the two planes derived from one water height.
type ClipPlanes struct {
	Refraction mgl32.Vec4 // keeps terrain below the water
	Reflection mgl32.Vec4 // keeps terrain above the water
}

// ClipPlanesAt returns the refraction and reflection planes for a water height.
func ClipPlanesAt(waterHeight float32) ClipPlanes {
	return ClipPlanes{
		Refraction: ClippingPlane(waterHeight, false),
		Reflection: ClippingPlane(waterHeight, true),
	}
}

// Keeps reports whether a point survives the plane, matching the shader's
// discard rule.
func Keeps(plane mgl32.Vec4, p mgl32.Vec3) bool {
	return wmath.PlaneDistance(plane, p) >= 0
}
