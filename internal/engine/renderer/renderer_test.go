package renderer

import (
	"regexp"
	"sort"
	"testing"

	"github.com/Faultbox/waterscape/internal/engine/render"
	"github.com/Faultbox/waterscape/internal/engine/renderer/shaders"
)

func TestAttributesMatchStride(t *testing.T) {
	for _, layout := range []render.Layout{render.LayoutTerrain, render.LayoutWater, render.LayoutPosition} {
		total := 0
		for i, a := range attributes(layout) {
			if a.location != uint32(i) {
				t.Errorf("layout %d attribute %d at location %d", layout, i, a.location)
			}
			if a.offset != total {
				t.Errorf("layout %d attribute %d offset %d, want %d", layout, i, a.offset, total)
			}
			total += int(a.components)
		}
		if total != layout.Stride() {
			t.Errorf("layout %d attributes cover %d floats, stride is %d", layout, total, layout.Stride())
		}
	}
}

func TestValidateMesh(t *testing.T) {
	quad := []float32{
		0, 0, 0, 0, 1,
		0, 0, 1, 0, 0,
		1, 0, 1, 1, 0,
		1, 0, 0, 1, 1,
	}
	if err := validateMesh(render.LayoutWater, quad, []uint32{0, 1, 2, 2, 3, 0}); err != nil {
		t.Errorf("valid quad rejected: %v", err)
	}
	if err := validateMesh(render.LayoutTerrain, quad, []uint32{0, 1, 2}); err == nil {
		t.Error("expected stride mismatch")
	}
	if err := validateMesh(render.LayoutWater, quad, []uint32{0, 1, 4}); err == nil {
		t.Error("expected index out of range")
	}
	if err := validateMesh(render.LayoutWater, nil, nil); err == nil {
		t.Error("expected empty mesh error")
	}
}

var uniformDecl = regexp.MustCompile(`(?m)^uniform\s+\w+\s+(\w+);`)

func declaredUniforms(sources ...string) []string {
	seen := map[string]bool{}
	var out []string
	for _, src := range sources {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				out = append(out, m[1])
			}
		}
	}
	sort.Strings(out)
	return out
}

func TestShaderUniformContract(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		want    []string
	}{
		{
			name:    "terrain",
			sources: []string{shaders.TerrainVertexShader, shaders.TerrainFragmentShader},
			want: []string{
				"uAmbientColor", "uAmbientIntensity", "uClipPlane", "uLightingEnabled",
				"uProjection", "uSunColor", "uSunDirection", "uSunIntensity",
				"uTexture", "uView", "uWorld",
			},
		},
		{
			name:    "water",
			sources: []string{shaders.WaterVertexShader, shaders.WaterFragmentShader},
			want: []string{
				"uCameraPosition", "uFresnelEnabled", "uMerge", "uProjection",
				"uReflectionEnabled", "uReflectionMap", "uReflectionView",
				"uRefractionEnabled", "uRefractionMap", "uSpecularEnabled",
				"uSpecularFactor", "uSpecularPower", "uSunDirection", "uSunSpecularColor",
				"uView", "uWaterColor", "uWaveMap0", "uWaveMap1", "uWaveOffset0",
				"uWaveOffset1", "uWaveTextureScale", "uWavesEnabled", "uWorld",
			},
		},
		{
			name:    "sky",
			sources: []string{shaders.SkyVertexShader, shaders.SkyFragmentShader},
			want:    []string{"uHorizonColor", "uProjection", "uView", "uZenithColor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := declaredUniforms(tt.sources...)
			if len(got) != len(tt.want) {
				t.Fatalf("uniforms = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("uniforms = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
