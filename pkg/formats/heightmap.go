// Package formats provides parsers for the demo's binary asset formats.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Heightmap format errors.
var (
	ErrTruncatedHeightmap         = errors.New("truncated heightmap data")
	ErrHeightmapSizeMismatch      = errors.New("heightmap size does not match header")
	ErrInvalidHeightmapDimensions = errors.New("invalid heightmap dimensions")
)

// heightmapHeaderSize is the size of the width/height header in bytes.
const heightmapHeaderSize = 4

// Heightmap is a decoded raw height map.
// Samples are stored row-major: Samples[y*Width+x].
type Heightmap struct {
	Width     int
	Height    int
	MaxHeight float32
	Samples   []float32
}

// At returns the elevation at grid coordinates (x, y).
// Coordinates outside the grid are clamped to the nearest edge.
func (h *Heightmap) At(x, y int) float32 {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= h.Width {
		x = h.Width - 1
	}
	if y >= h.Height {
		y = h.Height - 1
	}
	return h.Samples[y*h.Width+x]
}

// Range returns the minimum and maximum sample.
func (h *Heightmap) Range() (min, max float32) {
	if len(h.Samples) == 0 {
		return 0, 0
	}
	min, max = h.Samples[0], h.Samples[0]
	for _, s := range h.Samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// ParseHeightmap decodes a raw height map.
//
// Layout: uint16 width, uint16 height (little-endian), followed by
// width*height unsigned bytes, Y outer and X inner. Each byte b becomes
// maxHeight*b/255. The data must contain exactly the declared sample count.
func ParseHeightmap(data []byte, maxHeight float32) (*Heightmap, error) {
	r := bytes.NewReader(data)

	var width, height uint16
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedHeightmap)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedHeightmap)
	}

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidHeightmapDimensions, width, height)
	}

	count := int(width) * int(height)
	raw := make([]byte, count)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrTruncatedHeightmap, count, n)
	}
	if extra := r.Len(); extra > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %dx%d samples", ErrHeightmapSizeMismatch, extra, width, height)
	}

	hm := &Heightmap{
		Width:     int(width),
		Height:    int(height),
		MaxHeight: maxHeight,
		Samples:   make([]float32, count),
	}

	i := 0
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			hm.Samples[i] = maxHeight * float32(raw[i]) / 255.0
			i++
		}
	}

	return hm, nil
}

// ParseHeightmapFile decodes a raw height map from disk.
func ParseHeightmapFile(path string, maxHeight float32) (*Heightmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap file: %w", err)
	}
	return ParseHeightmap(data, maxHeight)
}

// EncodeHeightmap writes samples in the raw height map layout.
func EncodeHeightmap(width, height int, samples []byte) ([]byte, error) {
	if width <= 0 || height <= 0 || width > 0xFFFF || height > 0xFFFF {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidHeightmapDimensions, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrHeightmapSizeMismatch, len(samples), width, height)
	}

	buf := bytes.NewBuffer(make([]byte, 0, heightmapHeaderSize+len(samples)))
	binary.Write(buf, binary.LittleEndian, uint16(width))
	binary.Write(buf, binary.LittleEndian, uint16(height))
	buf.Write(samples)
	return buf.Bytes(), nil
}

// IsAssetError reports whether err means an asset could not be used:
// a missing file or a malformed height map.
func IsAssetError(err error) bool {
	return errors.Is(err, ErrTruncatedHeightmap) ||
		errors.Is(err, ErrHeightmapSizeMismatch) ||
		errors.Is(err, ErrInvalidHeightmapDimensions) ||
		errors.Is(err, os.ErrNotExist)
}
