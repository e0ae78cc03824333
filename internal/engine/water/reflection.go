package water

import "github.com/go-gl/mathgl/mgl32"

// Mirror reflects a point across the horizontal plane y = waterHeight.
func Mirror(p mgl32.Vec3, waterHeight float32) mgl32.Vec3 {
	return mgl32.Vec3{p[0], -p[1] + 2*waterHeight, p[2]}
}

// ReflectionView derives the view matrix of the camera mirrored across the
// water surface.
//
// Position and target are mirrored; the up vector is the cross product of
// the yaw-rotated X axis and the mirrored look direction. A water point
// projects through this view to the same NDC as the terrain point it
// reflects, so the water shader samples the reflection map at its own
// projected position. Pitch stays within ±89.9° so the look direction is
// never parallel to the X axis and up is well defined.
func ReflectionView(position, target mgl32.Vec3, yaw, waterHeight float32) (mgl32.Mat4, mgl32.Vec3) {
	reflPos := Mirror(position, waterHeight)
	reflTarget := Mirror(target, waterHeight)

	right := mgl32.Rotate3DY(yaw).Mul3x1(mgl32.Vec3{1, 0, 0})
	up := right.Cross(reflTarget.Sub(reflPos)).Normalize()

	return mgl32.LookAtV(reflPos, reflTarget, up), up
}
