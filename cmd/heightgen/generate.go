package main

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

// options controls height map generation.
type options struct {
	Width, Height int
	Seed          int64
	Alpha, Beta   float64
	Octaves       int32
	Scale         float64
	Island        bool
}

func defaultOptions() options {
	return options{
		Width:   256,
		Height:  256,
		Seed:    1,
		Alpha:   2,
		Beta:    2,
		Octaves: 4,
		Scale:   1.0 / 64,
	}
}

// generate returns Width*Height bytes, Y outer and X inner, stretched so
// the lowest sample is 0 and the highest 255.
func generate(o options) ([]byte, error) {
	if o.Width <= 0 || o.Height <= 0 || o.Width > 0xFFFF || o.Height > 0xFFFF {
		return nil, fmt.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	if o.Octaves <= 0 {
		return nil, fmt.Errorf("octaves must be positive, got %d", o.Octaves)
	}

	p := perlin.NewPerlin(o.Alpha, o.Beta, o.Octaves, o.Seed)

	field := make([]float32, o.Width*o.Height)
	var lo, hi float32 = math32.MaxFloat32, -math32.MaxFloat32
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			v := float32(p.Noise2D(float64(x)*o.Scale, float64(y)*o.Scale))
			if o.Island {
				v = math32.Max(0, v+1) * islandFalloff(x, y, o.Width, o.Height)
			}
			field[y*o.Width+x] = v
			lo = math32.Min(lo, v)
			hi = math32.Max(hi, v)
		}
	}

	out := make([]byte, len(field))
	span := hi - lo
	if span == 0 {
		return out, nil
	}
	for i, v := range field {
		out[i] = uint8((v-lo)/span*255 + 0.5)
	}
	return out, nil
}

// islandFalloff is 1 in the middle of the map and 0 on its border.
func islandFalloff(x, y, width, height int) float32 {
	nx := distanceFromCentre(x, width)
	ny := distanceFromCentre(y, height)
	d := math32.Sqrt(nx*nx + ny*ny)
	return math32.Max(0, 1-d)
}

// distanceFromCentre maps i in [0, n) to [0, 1] from the centre outwards.
func distanceFromCentre(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return math32.Abs(2*float32(i)/float32(n-1) - 1)
}
