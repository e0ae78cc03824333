package render

import "fmt"

// TargetPair holds the refraction and reflection surfaces, both sized to
// the back buffer.
type TargetPair struct {
	Refraction Target
	Reflection Target
	Width      int
	Height     int
}

// NewTargetPair allocates both surfaces on the device.
func NewTargetPair(device Device, width, height int) (*TargetPair, error) {
	refraction, err := device.NewRenderTarget("refraction", width, height)
	if err != nil {
		return nil, fmt.Errorf("creating refraction target: %w", err)
	}

	reflection, err := device.NewRenderTarget("reflection", width, height)
	if err != nil {
		device.ReleaseTarget(refraction)
		return nil, fmt.Errorf("creating reflection target: %w", err)
	}

	return &TargetPair{
		Refraction: refraction,
		Reflection: reflection,
		Width:      width,
		Height:     height,
	}, nil
}

// Matches reports whether the pair was allocated for the given size.
func (p *TargetPair) Matches(width, height int) bool {
	return p != nil && p.Width == width && p.Height == height
}

// Release frees both surfaces.
func (p *TargetPair) Release(device Device) {
	if p == nil {
		return
	}
	if p.Refraction != nil {
		device.ReleaseTarget(p.Refraction)
		p.Refraction = nil
	}
	if p.Reflection != nil {
		device.ReleaseTarget(p.Reflection)
		p.Reflection = nil
	}
}
