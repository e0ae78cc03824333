package texture

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

// Checker returns a size×size checkerboard with cells×cells squares.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/cells, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// WaveMapConfig parameterises a procedural wave normal map.
type WaveMapConfig struct {
	Size     int
	Seed     int64
	Alpha    float64
	Beta     float64
	Octaves  int32
	Scale    float64 // noise frequency per texel
	Strength float32 // slope multiplier before normalisation
}

// DefaultWaveMapConfig returns settings that read as small ripples.
func DefaultWaveMapConfig(seed int64) WaveMapConfig {
	return WaveMapConfig{
		Size:     256,
		Seed:     seed,
		Alpha:    2,
		Beta:     2,
		Octaves:  3,
		Scale:    1.0 / 32,
		Strength: 4,
	}
}

// WaveNormalMap builds a tileable tangent-space normal map from Perlin
// noise. Normals are encoded as rgb = n*0.5+0.5 with +Z pointing out of
// the surface.
func WaveNormalMap(cfg WaveMapConfig) *image.RGBA {
	size := max(cfg.Size, 1)
	heights := tileableNoise(cfg, size)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	at := func(x, y int) float32 {
		x = (x + size) % size
		y = (y + size) % size
		return heights[y*size+x]
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (at(x+1, y) - at(x-1, y)) * cfg.Strength
			dy := (at(x, y+1) - at(x, y-1)) * cfg.Strength
			nx, ny, nz := -dx, -dy, float32(1)
			l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeUnit(nx / l),
				G: encodeUnit(ny / l),
				B: encodeUnit(nz / l),
				A: 255,
			})
		}
	}
	return img
}

// tileableNoise samples noise so that opposite edges match, by blending the
// four shifted copies of the field.
func tileableNoise(cfg WaveMapConfig, size int) []float32 {
	p := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, cfg.Seed)
	s := float64(size)
	noise := func(x, y float64) float64 {
		return p.Noise2D(x*cfg.Scale, y*cfg.Scale)
	}

	out := make([]float32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x), float64(y)
			v := noise(fx, fy)*(s-fx)*(s-fy) +
				noise(fx-s, fy)*fx*(s-fy) +
				noise(fx-s, fy-s)*fx*fy +
				noise(fx, fy-s)*(s-fx)*fy
			out[y*size+x] = float32(v / (s * s))
		}
	}
	return out
}

func encodeUnit(v float32) uint8 {
	v = v*0.5 + 0.5
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
