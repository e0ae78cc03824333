package terrain

import (
	"math"
	"testing"

	"github.com/Faultbox/waterscape/pkg/formats"
)

// createTestHeightmap builds an in-memory height map from raw bytes.
func createTestHeightmap(t *testing.T, width, height int, raw []byte, maxHeight float32) *formats.Heightmap {
	t.Helper()
	data, err := formats.EncodeHeightmap(width, height, raw)
	if err != nil {
		t.Fatalf("EncodeHeightmap failed: %v", err)
	}
	hm, err := formats.ParseHeightmap(data, maxHeight)
	if err != nil {
		t.Fatalf("ParseHeightmap failed: %v", err)
	}
	return hm
}

func bumpyBytes(n int) []byte {
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte((i*37 + i*i*11) % 256)
	}
	return raw
}

func length(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestBuildMesh_Counts(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{2, 2},
		{3, 5},
		{16, 16},
		{1, 4},
		{4, 1},
	}

	for _, tt := range tests {
		hm := createTestHeightmap(t, tt.w, tt.h, bumpyBytes(tt.w*tt.h), 50)
		mesh := BuildMesh(hm)

		if len(mesh.Vertices) != tt.w*tt.h {
			t.Errorf("%dx%d: expected %d vertices, got %d", tt.w, tt.h, tt.w*tt.h, len(mesh.Vertices))
		}
		wantIndices := (tt.w - 1) * (tt.h - 1) * 6
		if len(mesh.Indices) != wantIndices {
			t.Errorf("%dx%d: expected %d indices, got %d", tt.w, tt.h, wantIndices, len(mesh.Indices))
		}
		for i, idx := range mesh.Indices {
			if int(idx) >= len(mesh.Vertices) {
				t.Errorf("%dx%d: index %d out of range: %d", tt.w, tt.h, i, idx)
			}
		}
	}
}

func TestBuildMesh_NormalsAreUnit(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {9, 7}} {
		hm := createTestHeightmap(t, size[0], size[1], bumpyBytes(size[0]*size[1]), 50)
		mesh := BuildMesh(hm)

		for i, v := range mesh.Vertices {
			if l := length(v.Normal); math.Abs(l-1) > 1e-5 {
				t.Errorf("%dx%d: vertex %d normal length = %f, want 1", size[0], size[1], i, l)
			}
			if v.Normal[1] <= 0 {
				t.Errorf("%dx%d: vertex %d normal points down: %v", size[0], size[1], i, v.Normal)
			}
		}
	}
}

func TestBuildMesh_FlatNormals(t *testing.T) {
	raw := make([]byte, 9)
	for i := range raw {
		raw[i] = 100
	}
	mesh := BuildMesh(createTestHeightmap(t, 3, 3, raw, 50))

	for i, v := range mesh.Vertices {
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d: expected up normal, got %v", i, v.Normal)
		}
	}
}

func TestBuildMesh_SingleQuad(t *testing.T) {
	hm := createTestHeightmap(t, 2, 2, []byte{0, 255, 128, 64}, 50)
	mesh := BuildMesh(hm)

	wantIndices := []uint32{2, 1, 0, 2, 3, 1}
	if len(mesh.Indices) != len(wantIndices) {
		t.Fatalf("expected %d indices, got %d", len(wantIndices), len(mesh.Indices))
	}
	for i, want := range wantIndices {
		if mesh.Indices[i] != want {
			t.Errorf("index %d: expected %d, got %d", i, want, mesh.Indices[i])
		}
	}

	wantPos := [][3]float32{
		{0, 0, 0},
		{1, 50, 0},
		{0, 50 * 128 / 255.0, 1},
		{1, 50 * 64 / 255.0, 1},
	}
	for i, want := range wantPos {
		got := mesh.Vertices[i].Position
		for c := range 3 {
			if math.Abs(float64(got[c]-want[c])) > 1e-4 {
				t.Errorf("vertex %d: expected position %v, got %v", i, want, got)
				break
			}
		}
	}

	wantUV := [][2]float32{{0, 1}, {0.5, 1}, {0, 0.5}, {0.5, 0.5}}
	for i, want := range wantUV {
		if mesh.Vertices[i].TexCoord != want {
			t.Errorf("vertex %d: expected uv %v, got %v", i, want, mesh.Vertices[i].TexCoord)
		}
	}
}

func TestBuildMesh_WindingFacesUp(t *testing.T) {
	raw := make([]byte, 16)
	mesh := BuildMesh(createTestHeightmap(t, 4, 4, raw, 50))

	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]].Position
		b := mesh.Vertices[mesh.Indices[i+1]].Position
		c := mesh.Vertices[mesh.Indices[i+2]].Position

		ab := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		ac := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		ny := ab[2]*ac[0] - ab[0]*ac[2]
		if ny <= 0 {
			t.Errorf("triangle %d: expected upward face normal, got y=%f", i/3, ny)
		}
	}
}

func TestBuildMesh_Bounds(t *testing.T) {
	hm := createTestHeightmap(t, 2, 2, []byte{0, 255, 128, 64}, 50)
	mesh := BuildMesh(hm)

	if mesh.Bounds.Min != [3]float32{0, 0, 0} {
		t.Errorf("expected min (0,0,0), got %v", mesh.Bounds.Min)
	}
	if mesh.Bounds.Max != [3]float32{1, 50, 1} {
		t.Errorf("expected max (1,50,1), got %v", mesh.Bounds.Max)
	}
}

func TestMesh_Interleave(t *testing.T) {
	hm := createTestHeightmap(t, 3, 2, bumpyBytes(6), 50)
	mesh := BuildMesh(hm)
	data := mesh.Interleave()

	if len(data) != len(mesh.Vertices)*VertexStride {
		t.Fatalf("expected %d floats, got %d", len(mesh.Vertices)*VertexStride, len(data))
	}
	v := mesh.Vertices[4]
	off := 4 * VertexStride
	if data[off+1] != v.Position[1] || data[off+4] != v.Normal[1] || data[off+7] != v.TexCoord[1] {
		t.Errorf("interleaved vertex 4 does not match source vertex")
	}
}

func TestGetInterpolatedHeight(t *testing.T) {
	hm := createTestHeightmap(t, 2, 2, []byte{0, 100, 200, 50}, 255)

	tests := []struct {
		x, z, want float32
	}{
		{0, 0, 0},
		{1, 0, 100},
		{0, 1, 200},
		{0.5, 0.5, 87.5},
		{-5, -5, 0},
		{9, 9, 50},
	}
	for _, tt := range tests {
		got := GetInterpolatedHeight(hm, tt.x, tt.z)
		if math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("GetInterpolatedHeight(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	if !Contains(hm, 0.5, 0.5) {
		t.Error("expected (0.5, 0.5) to be over the terrain")
	}
	if Contains(hm, 1.5, 0.5) {
		t.Error("expected (1.5, 0.5) to be outside the terrain")
	}
}
