// Package scene holds the single terrain and water surface being rendered
// together with the live settings that drive the render passes.
package scene

import (
	"github.com/Faultbox/waterscape/internal/engine/terrain"
	"github.com/Faultbox/waterscape/internal/engine/water"
	"github.com/Faultbox/waterscape/pkg/formats"
	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// Scene manages the terrain, the water plane and the clip planes derived
// from the water height. Every change that affects GPU geometry bumps the
// revision so the renderer knows to upload again.
type Scene struct {
	Heightmap *formats.Heightmap
	Terrain   *terrain.Mesh
	Water     *water.Mesh
	Planes    water.ClipPlanes

	waterHeight float32
	revision    uint64
}

// New builds the scene meshes for a height map and an initial water height.
func New(hm *formats.Heightmap, waterHeight float32) *Scene {
	s := &Scene{Heightmap: hm}
	s.rebuild(wmath.Clamp(waterHeight, 0, hm.MaxHeight))
	return s
}

// WaterHeight returns the current water level.
func (s *Scene) WaterHeight() float32 {
	return s.waterHeight
}

// Revision returns a counter that changes whenever the meshes are rebuilt.
func (s *Scene) Revision() uint64 {
	return s.revision
}

// Extent returns the world size of the terrain along X and Z.
func (s *Scene) Extent() (float32, float32) {
	return float32(s.Heightmap.Width - 1), float32(s.Heightmap.Height - 1)
}

// SetWaterHeight moves the water surface. The height is clamped to
// [0, MaxHeight]; the clip planes and both meshes are rebuilt together and
// the revision advances once. It reports whether h was out of range.
func (s *Scene) SetWaterHeight(h float32) bool {
	clamped := wmath.Clamp(h, 0, s.Heightmap.MaxHeight)
	if clamped != s.waterHeight {
		s.rebuild(clamped)
	}
	return clamped != h
}

// GroundHeight returns the interpolated terrain height at a world position
// and whether the position lies over the terrain at all.
func (s *Scene) GroundHeight(x, z float32) (float32, bool) {
	if !terrain.Contains(s.Heightmap, x, z) {
		return 0, false
	}
	return terrain.GetInterpolatedHeight(s.Heightmap, x, z), true
}

func (s *Scene) rebuild(waterHeight float32) {
	width, depth := s.Extent()

	s.waterHeight = waterHeight
	s.Planes = water.ClipPlanesAt(waterHeight)
	s.Terrain = terrain.BuildMesh(s.Heightmap)
	s.Water = water.BuildPlane(width, depth, waterHeight)
	s.revision++
}
