// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/waterscape/internal/engine/input"
	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// MaxPitch is the pitch limit in radians. Looking straight up or down would
// make the view direction parallel to world up.
var MaxPitch = mgl32.DegToRad(89.9)

// forwardAxis is the look direction at zero yaw and pitch.
var forwardAxis = mgl32.Vec3{0, 0, 1}

// Movement keys. Strafe left is +X in camera space at zero yaw.
const (
	KeyForward = input.KeyW
	KeyBack    = input.KeyS
	KeyLeft    = input.KeyA
	KeyRight   = input.KeyD
	KeyUp      = input.KeySpace
	KeyDown    = input.KeyLeftCtrl
)

// FlyCamera is a free-flying first person camera.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // radians, rotation around world Y
	Pitch    float32 // radians, clamped to ±MaxPitch

	Speed       float32 // world units per second
	Sensitivity float32 // radians per pixel per second

	target mgl32.Vec3
	view   mgl32.Mat4
}

// NewFlyCamera creates a fly camera with default settings.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Speed:       100.0,
		Sensitivity: 0.5,
	}
	c.refresh()
	return c
}

// HandleMouse applies a pointer delta scaled by dt.
// Moving the pointer right decreases yaw; moving it down tilts the view down.
func (c *FlyCamera) HandleMouse(dx, dy, dt float32) {
	c.Yaw -= dx * c.Sensitivity * dt
	c.Pitch += dy * c.Sensitivity * dt
	c.Pitch = wmath.Clamp(c.Pitch, -MaxPitch, MaxPitch)
}

// Move translates the camera by a camera-space motion rotated by yaw only,
// so flying forward never changes altitude.
func (c *FlyCamera) Move(motion mgl32.Vec3) {
	c.Position = c.Position.Add(mgl32.Rotate3DY(c.Yaw).Mul3x1(motion))
}

// Update applies one frame of input: mouse look, then movement, then the
// derived target and view matrix.
func (c *FlyCamera) Update(dt float32, in *input.State) {
	c.HandleMouse(in.MouseDX, in.MouseDY, dt)

	step := c.Speed * dt
	motion := mgl32.Vec3{
		in.Axis(KeyRight, KeyLeft) * step,
		in.Axis(KeyDown, KeyUp) * step,
		in.Axis(KeyBack, KeyForward) * step,
	}
	if motion != (mgl32.Vec3{}) {
		c.Move(motion)
	}

	c.refresh()
}

// SetOrientation sets yaw and pitch, clamping pitch.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = wmath.Clamp(pitch, -MaxPitch, MaxPitch)
	c.refresh()
}

// SetPosition moves the camera to p.
func (c *FlyCamera) SetPosition(p mgl32.Vec3) {
	c.Position = p
	c.refresh()
}

// Forward returns the unit look direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	rot := mgl32.Rotate3DY(c.Yaw).Mul3(mgl32.Rotate3DX(c.Pitch))
	return rot.Mul3x1(forwardAxis)
}

// Target returns the point one unit ahead of the camera.
func (c *FlyCamera) Target() mgl32.Vec3 {
	return c.target
}

// View returns the view matrix for this camera.
func (c *FlyCamera) View() mgl32.Mat4 {
	return c.view
}

func (c *FlyCamera) refresh() {
	c.target = c.Position.Add(c.Forward())
	c.view = mgl32.LookAtV(c.Position, c.target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection used by every pass.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// Projection parameters.
const (
	FieldOfView = 45.0
	NearPlane   = 1.0
	FarPlane    = 1000.0
)
