package terrain

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/waterscape/pkg/formats"
)

// BuildMesh creates a terrain mesh from a height map.
// One vertex is emitted per sample at (x, h(x,y), y) and every grid cell
// becomes two counter-clockwise triangles seen from above.
func BuildMesh(hm *formats.Heightmap) *Mesh {
	width := hm.Width
	height := hm.Height

	vertices := make([]Vertex, 0, width*height)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for y := range height {
		for x := range width {
			pos := [3]float32{float32(x), hm.At(x, y), float32(y)}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   sampleNormal(hm, x, y),
				TexCoord: [2]float32{
					float32(x) / float32(width),
					1 - float32(y)/float32(height),
				},
			})
		}
	}

	var indices []uint32
	if width > 1 && height > 1 {
		indices = make([]uint32, 0, (width-1)*(height-1)*6)
	}
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			lowerLeft := uint32(x + y*width)
			lowerRight := uint32((x + 1) + y*width)
			topLeft := uint32(x + (y+1)*width)
			topRight := uint32((x + 1) + (y+1)*width)

			indices = append(indices,
				topLeft, lowerRight, lowerLeft,
				topLeft, topRight, lowerRight,
			)
		}
	}

	return &Mesh{
		Width:    width,
		Height:   height,
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// sampleNormal computes the vertex normal from neighbouring heights.
// Interior samples use central differences, edges fall back to one-sided
// differences and a single-sample axis contributes no slope.
func sampleNormal(hm *formats.Heightmap, x, y int) [3]float32 {
	dhX := slope(hm.Width, x, func(i int) float32 { return hm.At(i, y) })
	dhY := slope(hm.Height, y, func(i int) float32 { return hm.At(x, i) })

	a := normalize([3]float32{0, 1, dhX})
	b := normalize([3]float32{dhY, 1, 0})
	return normalize([3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]})
}

// slope returns h[i-1]-h[i+1] with edge clamping along one axis of length n.
func slope(n, i int, h func(int) float32) float32 {
	switch {
	case n < 2:
		return 0
	case i == 0:
		return h(i) - h(i+1)
	case i == n-1:
		return h(i-1) - h(i)
	default:
		return h(i-1) - h(i+1)
	}
}

// Helper functions

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
