package terrain

import (
	"github.com/Faultbox/waterscape/pkg/formats"
	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// GetInterpolatedHeight returns the terrain height at a world position.
// World X and Z map one-to-one onto height map columns and rows; heights
// between samples are bilinearly interpolated and positions outside the
// grid are clamped to the nearest edge.
func GetInterpolatedHeight(hm *formats.Heightmap, worldX, worldZ float32) float32 {
	if hm == nil || len(hm.Samples) == 0 {
		return 0
	}

	fx := wmath.Clamp(worldX, 0, float32(hm.Width-1))
	fz := wmath.Clamp(worldZ, 0, float32(hm.Height-1))

	cellX := int(fx)
	cellZ := int(fz)

	fracX := fx - float32(cellX)
	fracZ := fz - float32(cellZ)

	south := wmath.Lerp(hm.At(cellX, cellZ), hm.At(cellX+1, cellZ), fracX)
	north := wmath.Lerp(hm.At(cellX, cellZ+1), hm.At(cellX+1, cellZ+1), fracX)
	return wmath.Lerp(south, north, fracZ)
}

// Contains reports whether a world position lies over the terrain grid.
func Contains(hm *formats.Heightmap, worldX, worldZ float32) bool {
	if hm == nil {
		return false
	}
	return worldX >= 0 && worldZ >= 0 &&
		worldX <= float32(hm.Width-1) && worldZ <= float32(hm.Height-1)
}
