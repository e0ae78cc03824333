// Package lighting provides the directional sun and ambient terms used by
// the terrain and water shaders.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// Sun is a directional light with a specular highlight on water.
type Sun struct {
	Direction      mgl32.Vec3 // points from the surface towards the sun
	Color          mgl32.Vec3
	Intensity      float32
	SpecularColor  mgl32.Vec3
	SpecularFactor float32
	SpecularPower  float32
}

// Ambient is the constant light term.
type Ambient struct {
	Color     mgl32.Vec3
	Intensity float32
}

// Intensity limits shared by sun and ambient light.
const (
	MinIntensity = 0.0
	MaxIntensity = 2.0
)

// DefaultSun returns a warm afternoon sun.
func DefaultSun() Sun {
	return Sun{
		Direction:      SunDirection(135, 45),
		Color:          mgl32.Vec3{1, 0.95, 0.85},
		Intensity:      1.0,
		SpecularColor:  mgl32.Vec3{1, 1, 1},
		SpecularFactor: 0.6,
		SpecularPower:  64,
	}
}

// DefaultAmbient returns a dim bluish ambient term.
func DefaultAmbient() Ambient {
	return Ambient{
		Color:     mgl32.Vec3{0.6, 0.7, 0.9},
		Intensity: 0.3,
	}
}

// SunDirection converts longitude/latitude angles in degrees to a light
// direction vector. Longitude is rotation around Y (0-360), latitude is
// elevation from the horizon (0-90). The result is normalized.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lonRad := mgl32.DegToRad(longitude)
	latRad := mgl32.DegToRad(latitude)

	return mgl32.Vec3{
		math32.Cos(latRad) * math32.Sin(lonRad),
		math32.Sin(latRad),
		math32.Cos(latRad) * math32.Cos(lonRad),
	}
}

// Nudge moves one direction component by delta, keeping every component in
// [-1, 1]. The stored vector is left unnormalized so repeated nudges are
// reversible; shaders normalize it.
func (s *Sun) Nudge(axis int, delta float32) {
	if axis < 0 || axis > 2 {
		return
	}
	s.Direction[axis] += delta
	s.Direction = wmath.ClampVec3(s.Direction, -1, 1)
}

// SetIntensity clamps and stores the diffuse intensity.
func (s *Sun) SetIntensity(v float32) {
	s.Intensity = wmath.Clamp(v, MinIntensity, MaxIntensity)
}

// NormalizedDirection returns the unit direction, or straight up when the
// stored vector has collapsed to zero.
func (s *Sun) NormalizedDirection() mgl32.Vec3 {
	if s.Direction.Len() < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return s.Direction.Normalize()
}

// SetIntensity clamps and stores the ambient intensity.
func (a *Ambient) SetIntensity(v float32) {
	a.Intensity = wmath.Clamp(v, MinIntensity, MaxIntensity)
}
