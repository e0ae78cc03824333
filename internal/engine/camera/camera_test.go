package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/waterscape/internal/engine/input"
)

func TestFlyCamera_Defaults(t *testing.T) {
	c := NewFlyCamera()

	assert.Equal(t, float32(100), c.Speed)
	assert.Equal(t, float32(0.5), c.Sensitivity)
	assert.True(t, c.Forward().ApproxEqual(mgl32.Vec3{0, 0, 1}))
	assert.True(t, c.Target().ApproxEqual(mgl32.Vec3{0, 0, 1}))
}

func TestFlyCamera_PitchClamp(t *testing.T) {
	c := NewFlyCamera()

	c.HandleMouse(0, 1e6, 1)
	assert.Equal(t, MaxPitch, c.Pitch)
	assert.Equal(t, mgl32.DegToRad(89.9), c.Pitch)

	c.HandleMouse(0, -1e7, 1)
	assert.Equal(t, -MaxPitch, c.Pitch)

	c.SetOrientation(0, 10)
	assert.Equal(t, MaxPitch, c.Pitch)
}

func TestFlyCamera_MouseSigns(t *testing.T) {
	c := NewFlyCamera()
	c.HandleMouse(10, 4, 0.1)

	assert.InDelta(t, -0.5, c.Yaw, 1e-6)
	assert.InDelta(t, 0.2, c.Pitch, 1e-6)

	// Positive pitch looks down.
	assert.Less(t, c.Forward().Y(), float32(0))
}

func TestFlyCamera_MoveForwardFollowsYawOnly(t *testing.T) {
	c := NewFlyCamera()
	c.SetOrientation(mgl32.DegToRad(90), 0.7)

	var in input.State
	in.SetKey(input.KeyW, true)
	c.Update(0.5, &in)

	// Forward at yaw 90° is +X; pitch does not change altitude.
	assert.InDelta(t, 50, c.Position.X(), 1e-3)
	assert.InDelta(t, 0, c.Position.Y(), 1e-3)
	assert.InDelta(t, 0, c.Position.Z(), 1e-3)
}

func TestFlyCamera_StrafeAndVertical(t *testing.T) {
	c := NewFlyCamera()

	var in input.State
	in.SetKey(input.KeyA, true)
	in.SetKey(input.KeySpace, true)
	c.Update(0.1, &in)

	assert.InDelta(t, 10, c.Position.X(), 1e-4)
	assert.InDelta(t, 10, c.Position.Y(), 1e-4)

	in.BeginFrame()
	in.SetKey(input.KeyA, false)
	in.SetKey(input.KeySpace, false)
	in.SetKey(input.KeyD, true)
	in.SetKey(input.KeyLeftCtrl, true)
	c.Update(0.1, &in)

	assert.InDelta(t, 0, c.Position.X(), 1e-4)
	assert.InDelta(t, 0, c.Position.Y(), 1e-4)
}

func TestFlyCamera_ViewLooksAtTarget(t *testing.T) {
	c := NewFlyCamera()
	c.SetPosition(mgl32.Vec3{10, 40, 10})
	c.SetOrientation(1.2, 0.4)

	target := c.View().Mul4x1(c.Target().Vec4(1))
	assert.InDelta(t, 0, target.X(), 1e-4)
	assert.InDelta(t, 0, target.Y(), 1e-4)
	assert.InDelta(t, -1, target.Z(), 1e-4)

	assert.InDelta(t, 1, c.Forward().Len(), 1e-5)
}

func TestProjection(t *testing.T) {
	p := Projection(800, 600)
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 1, 1000)
	require.True(t, p.ApproxEqual(want))

	// Zero height falls back to a square aspect instead of dividing by zero.
	assert.True(t, Projection(800, 0).ApproxEqual(mgl32.Perspective(mgl32.DegToRad(45), 1, 1, 1000)))
}
