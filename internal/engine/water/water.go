// Package water provides water plane geometry, clipping planes, the
// planar reflection camera and wave animation.
package water

// Vertex represents a water surface vertex.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// VertexStride is the number of floats per interleaved vertex.
const VertexStride = 5

// Mesh holds water plane geometry ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Level    float32 // Water Y level in world coordinates
}

// BuildPlane creates a horizontal quad at the given level spanning
// [0,width] along X and [0,height] along Z.
// Order: BL, TL, TR, BR, two counter-clockwise triangles seen from above.
func BuildPlane(width, height, level float32) *Mesh {
	vertices := []Vertex{
		{Position: [3]float32{0, level, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{0, level, height}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{width, level, height}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{width, level, 0}, TexCoord: [2]float32{1, 1}},
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  []uint32{0, 1, 2, 2, 3, 0},
		Level:    level,
	}
}

// Interleave flattens the vertices into position, texcoord order.
func (m *Mesh) Interleave() []float32 {
	data := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return data
}

// Default water shading parameters.
const (
	DefaultWaveSpeed        = 0.03
	DefaultWaveTextureScale = 4.0
	DefaultMerge            = 0.5
)
