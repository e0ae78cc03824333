// Package world owns the simulated state of the demo: the fly camera, the
// terrain and water scene, the live settings and the wave animation.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/config"
	"github.com/Faultbox/waterscape/internal/engine/camera"
	"github.com/Faultbox/waterscape/internal/engine/input"
	"github.com/Faultbox/waterscape/internal/engine/render"
	"github.com/Faultbox/waterscape/internal/engine/scene"
	"github.com/Faultbox/waterscape/internal/engine/water"
	"github.com/Faultbox/waterscape/internal/game/ui"
	"github.com/Faultbox/waterscape/internal/logger"
	"github.com/Faultbox/waterscape/pkg/formats"
	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// World is advanced once per frame by Update and read by FrameInput.
type World struct {
	Camera   *camera.FlyCamera
	Scene    *scene.Scene
	Settings scene.Settings
	Waves    *water.Waves
	Overlay  *ui.DebugOverlay
}

// New builds the scene for hm and places the camera.
func New(hm *formats.Heightmap, cam config.CameraConfig, sc config.SceneConfig) *World {
	w := &World{
		Camera:   camera.NewFlyCamera(),
		Scene:    scene.New(hm, sc.WaterHeight),
		Settings: scene.DefaultSettings(),
		Waves:    water.NewWaves(),
		Overlay:  ui.NewDebugOverlay(),
	}

	if cam.Speed > 0 {
		w.Camera.Speed = cam.Speed
	}
	if cam.Sensitivity > 0 {
		w.Camera.Sensitivity = cam.Sensitivity
	}
	w.Camera.SetPosition(mgl32.Vec3(cam.Position))
	w.Camera.SetOrientation(mgl32.DegToRad(cam.Yaw), mgl32.DegToRad(cam.Pitch))

	w.ApplySceneConfig(sc)
	return w
}

// ApplySceneConfig copies a scene config section into the live settings.
// Values go through the clamping setters; out-of-range values are logged.
func (w *World) ApplySceneConfig(sc config.SceneConfig) {
	s := &w.Settings

	toggles := map[scene.Toggle]bool{
		scene.ToggleWireframe:  sc.Wireframe,
		scene.ToggleLighting:   sc.Lighting,
		scene.ToggleWater:      sc.Water,
		scene.ToggleSkybox:     sc.Skybox,
		scene.ToggleRefraction: sc.Refraction,
		scene.ToggleReflection: sc.Reflection,
		scene.ToggleFresnel:    sc.Fresnel,
		scene.ToggleSpecular:   sc.Specular,
		scene.ToggleWaves:      sc.Waves,
		scene.ToggleInfo:       sc.ShowInfo,
	}
	for t, on := range toggles {
		s.SetEnabled(t, on)
	}

	clamped := map[string]bool{
		"ambient_intensity":  s.SetAmbientIntensity(sc.AmbientIntensity),
		"sun_intensity":      s.SetSunIntensity(sc.SunIntensity),
		"wave_speed":         s.SetWaveSpeed(sc.WaveSpeed),
		"wave_texture_scale": s.SetWaveTextureScale(sc.WaveTextureScale),
		"merge":              s.SetMerge(sc.Merge),
		"water_height":       w.Scene.SetWaterHeight(sc.WaterHeight),
	}

	dir := mgl32.Vec3(sc.SunDirection)
	s.Sun.Direction = wmath.ClampVec3(dir, -1, 1)
	clamped["sun_direction"] = s.Sun.Direction != dir

	s.WaterColor = wmath.ClampVec4(mgl32.Vec4(sc.WaterColor), 0, 1)
	clamped["water_color"] = s.WaterColor != mgl32.Vec4(sc.WaterColor)

	for key, c := range clamped {
		if c {
			logger.Debug("scene value clamped", zap.String("key", key))
		}
	}
}

// Update advances one frame. It applies the live controls, then the
// camera, then the wave animation, and reports whether the demo should exit.
func (w *World) Update(dt float32, in *input.State) (quit bool) {
	if in.Quit || in.Pressed(input.KeyEscape) {
		return true
	}

	w.applyToggles(in)
	w.applyAdjustments(dt, in)

	w.Camera.Update(dt, in)

	if w.Settings.Waves {
		w.Waves.Advance(dt, w.Settings.WaveSpeed)
	}

	w.Overlay.Update(float64(dt))
	return false
}

// FrameInput assembles everything the render passes need this frame.
func (w *World) FrameInput() render.FrameInput {
	reflView, _ := water.ReflectionView(w.Camera.Position, w.Camera.Target(), w.Camera.Yaw, w.Scene.WaterHeight())

	in := render.FrameInput{
		Scene:          w.Scene,
		Settings:       &w.Settings,
		View:           w.Camera.View(),
		ReflectionView: reflView,
		CameraPosition: w.Camera.Position,
		WaveOffset0:    w.Waves.Offset0,
		WaveOffset1:    w.Waves.Offset1,
	}

	if w.Settings.ShowInfo {
		pos := w.Camera.Position
		ground, over := w.Scene.GroundHeight(pos.X(), pos.Z())
		in.Overlay = w.Overlay.Lines(ui.Snapshot{
			Position:    pos,
			Direction:   w.Camera.Forward(),
			Yaw:         w.Camera.Yaw,
			Pitch:       w.Camera.Pitch,
			WaterHeight: w.Scene.WaterHeight(),
			Settings:    &w.Settings,
			Ground:      ground,
			OverGround:  over,
		})
	}
	return in
}
