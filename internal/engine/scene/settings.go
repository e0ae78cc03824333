package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/waterscape/internal/engine/lighting"
	"github.com/Faultbox/waterscape/internal/engine/water"
	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// Limits for the live-adjustable parameters.
const (
	MinWaveSpeed        = 0.0
	MaxWaveSpeed        = 1.0
	MinWaveTextureScale = 0.1
	MaxWaveTextureScale = 10.0
	MinMerge            = 0.0
	MaxMerge            = 1.0
)

// Toggle identifies one on/off switch of the settings.
type Toggle int

const (
	ToggleWireframe Toggle = iota
	ToggleLighting
	ToggleWater
	ToggleSkybox
	ToggleRefraction
	ToggleReflection
	ToggleFresnel
	ToggleSpecular
	ToggleWaves
	ToggleInfo
)

var toggleNames = [...]string{
	ToggleWireframe:  "wireframe",
	ToggleLighting:   "lighting",
	ToggleWater:      "water",
	ToggleSkybox:     "skybox",
	ToggleRefraction: "refraction",
	ToggleReflection: "reflection",
	ToggleFresnel:    "fresnel",
	ToggleSpecular:   "specular",
	ToggleWaves:      "waves",
	ToggleInfo:       "info",
}

// String returns the lower-case name of the toggle.
func (t Toggle) String() string {
	if t < 0 || int(t) >= len(toggleNames) {
		return "unknown"
	}
	return toggleNames[t]
}

// Settings contains the live rendering options read by every frame.
// Use the setters so values stay within their limits.
type Settings struct {
	Wireframe  bool
	Lighting   bool
	Water      bool
	Skybox     bool
	Refraction bool
	Reflection bool
	Fresnel    bool
	Specular   bool
	Waves      bool
	ShowInfo   bool

	Ambient lighting.Ambient
	Sun     lighting.Sun

	WaterColor       mgl32.Vec4 // rgb tint, a is tint strength
	WaveSpeed        float32
	WaveTextureScale float32
	Merge            float32 // refraction/reflection blend without Fresnel

	ZenithColor  mgl32.Vec3
	HorizonColor mgl32.Vec3
}

// DefaultSettings returns settings with every effect enabled.
func DefaultSettings() Settings {
	return Settings{
		Lighting:   true,
		Water:      true,
		Skybox:     true,
		Refraction: true,
		Reflection: true,
		Fresnel:    true,
		Specular:   true,
		Waves:      true,
		ShowInfo:   true,

		Ambient: lighting.DefaultAmbient(),
		Sun:     lighting.DefaultSun(),

		WaterColor:       mgl32.Vec4{0.1, 0.3, 0.4, 0.2},
		WaveSpeed:        water.DefaultWaveSpeed,
		WaveTextureScale: water.DefaultWaveTextureScale,
		Merge:            water.DefaultMerge,

		ZenithColor:  mgl32.Vec3{0.18, 0.36, 0.72},
		HorizonColor: mgl32.Vec3{0.72, 0.82, 0.95},
	}
}

func (s *Settings) flag(t Toggle) *bool {
	switch t {
	case ToggleWireframe:
		return &s.Wireframe
	case ToggleLighting:
		return &s.Lighting
	case ToggleWater:
		return &s.Water
	case ToggleSkybox:
		return &s.Skybox
	case ToggleRefraction:
		return &s.Refraction
	case ToggleReflection:
		return &s.Reflection
	case ToggleFresnel:
		return &s.Fresnel
	case ToggleSpecular:
		return &s.Specular
	case ToggleWaves:
		return &s.Waves
	case ToggleInfo:
		return &s.ShowInfo
	}
	return nil
}

// Toggle flips a switch and returns its new state.
func (s *Settings) Toggle(t Toggle) bool {
	f := s.flag(t)
	if f == nil {
		return false
	}
	*f = !*f
	return *f
}

// Enabled reports the state of a switch.
func (s *Settings) Enabled(t Toggle) bool {
	f := s.flag(t)
	return f != nil && *f
}

// SetEnabled sets a switch.
func (s *Settings) SetEnabled(t Toggle, on bool) {
	if f := s.flag(t); f != nil {
		*f = on
	}
}

// SetWaveSpeed clamps and stores the wave scroll speed.
// It reports whether v was out of range.
func (s *Settings) SetWaveSpeed(v float32) bool {
	s.WaveSpeed = wmath.Clamp(v, MinWaveSpeed, MaxWaveSpeed)
	return s.WaveSpeed != v
}

// SetWaveTextureScale clamps and stores the wave normal map tiling.
func (s *Settings) SetWaveTextureScale(v float32) bool {
	s.WaveTextureScale = wmath.Clamp(v, MinWaveTextureScale, MaxWaveTextureScale)
	return s.WaveTextureScale != v
}

// SetMerge clamps and stores the refraction/reflection blend factor.
func (s *Settings) SetMerge(v float32) bool {
	s.Merge = wmath.Clamp(v, MinMerge, MaxMerge)
	return s.Merge != v
}

// SetAmbientIntensity clamps and stores the ambient intensity.
func (s *Settings) SetAmbientIntensity(v float32) bool {
	s.Ambient.SetIntensity(v)
	return s.Ambient.Intensity != v
}

// SetSunIntensity clamps and stores the sun intensity.
func (s *Settings) SetSunIntensity(v float32) bool {
	s.Sun.SetIntensity(v)
	return s.Sun.Intensity != v
}

// NudgeSun moves one sun direction component, clamped to [-1, 1].
func (s *Settings) NudgeSun(axis int, delta float32) bool {
	if axis < 0 || axis > 2 {
		return false
	}
	want := s.Sun.Direction[axis] + delta
	s.Sun.Nudge(axis, delta)
	return s.Sun.Direction[axis] != want
}
