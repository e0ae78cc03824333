package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/engine/input"
	"github.com/Faultbox/waterscape/internal/engine/scene"
	"github.com/Faultbox/waterscape/internal/logger"
)

// toggleKeys maps F1-F10 to the settings switches.
var toggleKeys = []struct {
	key    input.Key
	toggle scene.Toggle
}{
	{input.KeyF1, scene.ToggleWireframe},
	{input.KeyF2, scene.ToggleLighting},
	{input.KeyF3, scene.ToggleWater},
	{input.KeyF4, scene.ToggleSkybox},
	{input.KeyF5, scene.ToggleRefraction},
	{input.KeyF6, scene.ToggleReflection},
	{input.KeyF7, scene.ToggleFresnel},
	{input.KeyF8, scene.ToggleSpecular},
	{input.KeyF9, scene.ToggleWaves},
	{input.KeyF10, scene.ToggleInfo},
}

// Adjustment rates per second.
const (
	AmbientRate      = 0.5
	SunIntensityRate = 0.5
	SunDirectionRate = 0.5
	WaterHeightRate  = 5.0
	WaveScaleRate    = 2.0
	MergeRate        = 0.5
	WaveSpeedRate    = 0.05
)

// adjustment is a continuous control: while dec or inc is held, apply is
// called with rate*dt signed by the key. apply reports clamping.
type adjustment struct {
	name     string
	dec, inc input.Key
	rate     float32
	apply    func(w *World, delta float32) bool
}

var adjustments = []adjustment{
	{"ambient_intensity", input.Key1, input.Key2, AmbientRate, func(w *World, d float32) bool {
		return w.Settings.SetAmbientIntensity(w.Settings.Ambient.Intensity + d)
	}},
	{"sun_intensity", input.Key3, input.Key4, SunIntensityRate, func(w *World, d float32) bool {
		return w.Settings.SetSunIntensity(w.Settings.Sun.Intensity + d)
	}},
	{"sun_x", input.KeyJ, input.KeyU, SunDirectionRate, func(w *World, d float32) bool {
		return w.Settings.NudgeSun(0, d)
	}},
	{"sun_y", input.KeyK, input.KeyI, SunDirectionRate, func(w *World, d float32) bool {
		return w.Settings.NudgeSun(1, d)
	}},
	{"sun_z", input.KeyL, input.KeyO, SunDirectionRate, func(w *World, d float32) bool {
		return w.Settings.NudgeSun(2, d)
	}},
	{"water_height", input.KeyPageDown, input.KeyPageUp, WaterHeightRate, func(w *World, d float32) bool {
		return w.Scene.SetWaterHeight(w.Scene.WaterHeight() + d)
	}},
	{"wave_texture_scale", input.KeyG, input.KeyT, WaveScaleRate, func(w *World, d float32) bool {
		return w.Settings.SetWaveTextureScale(w.Settings.WaveTextureScale + d)
	}},
	{"merge", input.KeyH, input.KeyY, MergeRate, func(w *World, d float32) bool {
		return w.Settings.SetMerge(w.Settings.Merge + d)
	}},
	{"wave_speed", input.KeyN, input.KeyM, WaveSpeedRate, func(w *World, d float32) bool {
		return w.Settings.SetWaveSpeed(w.Settings.WaveSpeed + d)
	}},
}

func (w *World) applyToggles(in *input.State) {
	for _, tk := range toggleKeys {
		if !in.Pressed(tk.key) {
			continue
		}
		on := w.Settings.Toggle(tk.toggle)
		logger.Debug("toggle", zap.Stringer("switch", tk.toggle), zap.Bool("on", on))
	}
}

func (w *World) applyAdjustments(dt float32, in *input.State) {
	if dt <= 0 {
		return
	}
	for _, a := range adjustments {
		dir := in.Axis(a.dec, a.inc)
		if dir == 0 {
			continue
		}
		if a.apply(w, dir*a.rate*dt) {
			logger.Debug("adjustment clamped", zap.String("control", a.name))
		}
	}
}
