package water

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlane(t *testing.T) {
	mesh := BuildPlane(128, 64, 20)

	require.Len(t, mesh.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, mesh.Indices)
	assert.Equal(t, float32(20), mesh.Level)

	assert.Equal(t, [3]float32{0, 20, 0}, mesh.Vertices[0].Position)
	assert.Equal(t, [3]float32{0, 20, 64}, mesh.Vertices[1].Position)
	assert.Equal(t, [3]float32{128, 20, 64}, mesh.Vertices[2].Position)
	assert.Equal(t, [3]float32{128, 20, 0}, mesh.Vertices[3].Position)

	assert.Equal(t, [2]float32{0, 1}, mesh.Vertices[0].TexCoord)
	assert.Equal(t, [2]float32{0, 0}, mesh.Vertices[1].TexCoord)
	assert.Equal(t, [2]float32{1, 0}, mesh.Vertices[2].TexCoord)
	assert.Equal(t, [2]float32{1, 1}, mesh.Vertices[3].TexCoord)
}

func TestBuildPlane_FacesUp(t *testing.T) {
	mesh := BuildPlane(10, 10, 5)

	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mgl32.Vec3(mesh.Vertices[mesh.Indices[i]].Position)
		b := mgl32.Vec3(mesh.Vertices[mesh.Indices[i+1]].Position)
		c := mgl32.Vec3(mesh.Vertices[mesh.Indices[i+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Y(), float32(0), "triangle %d", i/3)
	}
}

func TestMesh_Interleave(t *testing.T) {
	data := BuildPlane(2, 3, 1).Interleave()

	require.Len(t, data, 4*VertexStride)
	assert.Equal(t, []float32{2, 1, 3, 1, 0}, data[2*VertexStride:3*VertexStride])
}

func TestClippingPlane(t *testing.T) {
	refraction := ClippingPlane(20, false)
	reflection := ClippingPlane(20, true)

	assert.InDelta(t, 0, refraction.X(), 1e-6)
	assert.InDelta(t, -1, refraction.Y(), 1e-6)
	assert.InDelta(t, 0, refraction.Z(), 1e-6)
	assert.InDelta(t, 20.1, refraction.W(), 1e-5)

	assert.InDelta(t, 1, reflection.Y(), 1e-6)
	assert.InDelta(t, -20.1, reflection.W(), 1e-5)
}

func TestClippingPlane_Negation(t *testing.T) {
	for _, h := range []float32{-5, 0, 0.5, 20, 49.9} {
		below := ClippingPlane(h, false)
		above := ClippingPlane(h, true)
		for i := range 4 {
			assert.Equal(t, -below[i], above[i], "h=%v component %d", h, i)
		}
	}
}

func TestClipPlanesAt_Culling(t *testing.T) {
	planes := ClipPlanesAt(20)

	under := mgl32.Vec3{10, 5, 10}
	over := mgl32.Vec3{10, 35, 10}

	// Refraction keeps what is under water.
	assert.True(t, Keeps(planes.Refraction, under))
	assert.False(t, Keeps(planes.Refraction, over))

	// Reflection keeps what is above water.
	assert.False(t, Keeps(planes.Reflection, under))
	assert.True(t, Keeps(planes.Reflection, over))

	// The band just above the surface belongs to the refraction side.
	assert.True(t, Keeps(planes.Refraction, mgl32.Vec3{0, 20.05, 0}))
}
