// Package render sequences the refraction, reflection and main passes that
// composite the terrain and water image. It talks to the graphics backend
// only through the Device interface.
package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout describes the interleaved vertex format of a mesh.
type Layout int

const (
	// LayoutTerrain is position(3) normal(3) texcoord(2).
	LayoutTerrain Layout = iota
	// LayoutWater is position(3) texcoord(2).
	LayoutWater
	// LayoutPosition is position(3) only.
	LayoutPosition
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	switch l {
	case LayoutTerrain:
		return 8
	case LayoutWater:
		return 5
	default:
		return 3
	}
}

// Texture is a sampled image living on the device.
type Texture interface {
	Size() (width, height int)
}

// Target is an off-screen color+depth surface.
type Target interface {
	Name() string
	Size() (width, height int)
	ColorTexture() Texture
}

// Geometry is an uploaded indexed mesh.
type Geometry interface {
	IndexCount() int
}

// Program is a linked shader program.
type Program interface {
	Name() string
	// Uniforms lists the parameters the program actually reads.
	// Every one of them must be bound for a draw.
	Uniforms() []string
}

// Params maps shader parameter names to values. Supported value types are
// bool, int32, float32, mgl32.Vec2, mgl32.Vec3, mgl32.Vec4, mgl32.Mat4 and
// Texture.
type Params map[string]any

// Device is the graphics backend used by the orchestrator.
type Device interface {
	BackBufferSize() (width, height int)
	Clear(color mgl32.Vec4)
	SetFillMode(wireframe bool)
	// SetMirrored swaps the culled winding. A camera placed below the
	// surface sees upward faces from behind.
	SetMirrored(mirrored bool)

	NewRenderTarget(name string, width, height int) (Target, error)
	BindTarget(t Target) error
	UnbindTarget()
	ReleaseTarget(t Target)

	UploadMesh(layout Layout, vertices []float32, indices []uint32) (Geometry, error)
	ReleaseGeometry(g Geometry)
	UploadTexture(img *image.RGBA) (Texture, error)

	Draw(p Program, params Params, g Geometry) error
	DrawOverlay(lines []string) error
	Present()
}
