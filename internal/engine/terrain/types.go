// Package terrain builds the renderable terrain mesh from a height map.
package terrain

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexStride is the number of floats per interleaved vertex.
const VertexStride = 8

// Mesh holds the complete terrain mesh data ready for GPU upload.
type Mesh struct {
	Width    int
	Height   int
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Interleave flattens the vertices into position, normal, texcoord order.
func (m *Mesh) Interleave() []float32 {
	data := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return data
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
