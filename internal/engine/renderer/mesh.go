package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/waterscape/internal/engine/render"
)

var errEmptyMesh = errors.New("mesh has no vertices or indices")

// attribute is one float vertex attribute at a shader location.
type attribute struct {
	location   uint32
	components int32
	offset     int // in floats
}

// attributes returns the vertex attribute layout matching the shaders.
func attributes(layout render.Layout) []attribute {
	switch layout {
	case render.LayoutTerrain:
		return []attribute{{0, 3, 0}, {1, 3, 3}, {2, 2, 6}}
	case render.LayoutWater:
		return []attribute{{0, 3, 0}, {1, 2, 3}}
	default:
		return []attribute{{0, 3, 0}}
	}
}

// validateMesh checks the vertex stream against the layout and the index
// range.
func validateMesh(layout render.Layout, vertices []float32, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return errEmptyMesh
	}
	stride := layout.Stride()
	if len(vertices)%stride != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(vertices), stride)
	}
	count := uint32(len(vertices) / stride)
	for _, i := range indices {
		if i >= count {
			return fmt.Errorf("index %d out of range for %d vertices", i, count)
		}
	}
	return nil
}

type mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

func newMesh(layout render.Layout, vertices []float32, indices []uint32) (*mesh, error) {
	if err := validateMesh(layout, vertices, indices); err != nil {
		return nil, err
	}

	m := &mesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(layout.Stride() * 4)
	for _, a := range attributes(layout) {
		gl.VertexAttribPointerWithOffset(a.location, a.components, gl.FLOAT, false, stride, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(a.location)
	}

	gl.BindVertexArray(0)
	return m, nil
}

// IndexCount returns the number of indices.
func (m *mesh) IndexCount() int {
	return int(m.count)
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
