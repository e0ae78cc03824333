package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/engine/texture"
	"github.com/Faultbox/waterscape/internal/logger"
	"github.com/Faultbox/waterscape/pkg/formats"
)

// LoadHeightmap reads a height map. An existing file path is read
// directly; otherwise name is looked up in the data directories.
func (m *Manager) LoadHeightmap(name string, maxHeight float32) (*formats.Heightmap, error) {
	if _, err := os.Stat(name); err == nil {
		return formats.ParseHeightmapFile(name, maxHeight)
	}

	data, err := m.Load(name)
	if errors.Is(err, ErrNotFound) {
		// Reports the missing file the same way as a direct read.
		return formats.ParseHeightmapFile(name, maxHeight)
	}
	if err != nil {
		return nil, err
	}

	hm, err := formats.ParseHeightmap(data, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return hm, nil
}

// LoadImage decodes the first image named base plus a known extension.
// When none exists or it cannot be decoded, fallback is generated and a
// warning logged.
func (m *Manager) LoadImage(base string, fallback func() *image.RGBA) *image.RGBA {
	img, err := m.decodeImage(base)
	if err == nil {
		return img
	}
	logger.Warn("using generated texture", zap.String("name", base), zap.Error(err))
	return fallback()
}

func (m *Manager) decodeImage(base string) (*image.RGBA, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: no name", ErrNotFound)
	}
	name, err := m.Find(base, texture.Extensions)
	if err != nil {
		return nil, err
	}
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(data, filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	logger.Debug("texture loaded", zap.String("name", name), zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
	return img, nil
}
