package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/engine/camera"
	"github.com/Faultbox/waterscape/internal/engine/scene"
	"github.com/Faultbox/waterscape/internal/logger"
)

// Programs are the shader programs used by the passes.
type Programs struct {
	Terrain map[Variant]Program
	Water   Program
	Sky     Program
}

// Textures are the static textures sampled by the passes.
type Textures struct {
	Terrain  Texture
	WaveMap0 Texture
	WaveMap1 Texture
}

// FrameInput is everything one frame needs from the world.
type FrameInput struct {
	Scene    *scene.Scene
	Settings *scene.Settings

	View           mgl32.Mat4
	ReflectionView mgl32.Mat4
	CameraPosition mgl32.Vec3

	WaveOffset0 mgl32.Vec2
	WaveOffset1 mgl32.Vec2

	Overlay []string
}

// Full-screen triangle in clip space; the sky shader derives view rays.
var (
	skyVertices = []float32{-1, -1, 0, 3, -1, 0, -1, 3, 0}
	skyIndices  = []uint32{0, 1, 2}
)

var errIncompleteFrame = errors.New("frame input has no scene or settings")

// Orchestrator renders one frame as three strictly ordered passes:
// refraction, reflection and main. It owns the render targets and the
// uploaded scene geometry.
type Orchestrator struct {
	device   Device
	programs Programs
	textures Textures

	state      PassState
	targets    *TargetPair
	projection mgl32.Mat4

	terrain  Geometry
	water    Geometry
	sky      Geometry
	revision uint64
}

// NewOrchestrator checks that every shader variant has a program.
func NewOrchestrator(device Device, programs Programs, textures Textures) (*Orchestrator, error) {
	for _, v := range []Variant{VariantLit, VariantRefraction, VariantReflection} {
		if programs.Terrain[v] == nil {
			return nil, fmt.Errorf("%w: terrain %s", ErrMissingProgram, v)
		}
	}
	if programs.Water == nil {
		return nil, fmt.Errorf("%w: water", ErrMissingProgram)
	}
	if programs.Sky == nil {
		return nil, fmt.Errorf("%w: sky", ErrMissingProgram)
	}

	return &Orchestrator{
		device:   device,
		programs: programs,
		textures: textures,
	}, nil
}

// State returns the current pass.
func (o *Orchestrator) State() PassState {
	return o.state
}

// Targets returns the current render targets, or nil before the first frame.
func (o *Orchestrator) Targets() *TargetPair {
	return o.targets
}

// Projection returns the projection used by the last frame.
func (o *Orchestrator) Projection() mgl32.Mat4 {
	return o.projection
}

// RenderFrame runs the three passes in order and presents the result.
func (o *Orchestrator) RenderFrame(in FrameInput) error {
	if err := o.RefractionPass(in); err != nil {
		return err
	}
	if err := o.ReflectionPass(in); err != nil {
		return err
	}
	if err := o.MainPass(in); err != nil {
		return err
	}
	o.device.Present()
	return nil
}

// RefractionPass prepares the frame and renders what lies under the water
// into the refraction target.
func (o *Orchestrator) RefractionPass(in FrameInput) (err error) {
	if err := o.enter(PassRefraction); err != nil {
		return err
	}
	defer o.abortOnError(&err)

	if err := o.prepare(in); err != nil {
		return err
	}
	return o.offscreen(o.target(VariantRefraction), in, in.View, VariantRefraction, in.Scene.Planes.Refraction)
}

// ReflectionPass renders what lies above the water, seen by the mirrored
// camera, into the reflection target.
func (o *Orchestrator) ReflectionPass(in FrameInput) (err error) {
	if err := o.enter(PassReflection); err != nil {
		return err
	}
	defer o.abortOnError(&err)

	if in.Scene == nil || in.Settings == nil {
		return errIncompleteFrame
	}
	return o.offscreen(o.target(VariantReflection), in, in.ReflectionView, VariantReflection, in.Scene.Planes.Reflection)
}

// MainPass composites sky, lit terrain, water and the overlay onto the back
// buffer.
func (o *Orchestrator) MainPass(in FrameInput) (err error) {
	if err := o.enter(PassMain); err != nil {
		return err
	}
	defer o.abortOnError(&err)

	if in.Scene == nil || in.Settings == nil {
		return errIncompleteFrame
	}
	settings := in.Settings

	o.device.Clear(clearColor(settings))

	if settings.Skybox {
		if err := o.drawSky(in, in.View); err != nil {
			return err
		}
	}
	// Wireframe applies to terrain and water only.
	o.device.SetFillMode(settings.Wireframe)
	if err := o.drawTerrain(in, in.View, VariantLit, mgl32.Vec4{}); err != nil {
		return err
	}
	if settings.Water {
		if err := o.drawWater(in); err != nil {
			return err
		}
	}

	o.device.SetFillMode(false)
	if settings.ShowInfo && len(in.Overlay) > 0 {
		if err := o.device.DrawOverlay(in.Overlay); err != nil {
			return fmt.Errorf("drawing overlay: %w", err)
		}
	}

	return o.enter(PassIdle)
}

// Close releases the render targets and uploaded geometry.
func (o *Orchestrator) Close() {
	o.targets.Release(o.device)
	o.targets = nil
	o.releaseGeometry()
	if o.sky != nil {
		o.device.ReleaseGeometry(o.sky)
		o.sky = nil
	}
	o.state = PassIdle
}

func (o *Orchestrator) enter(next PassState) error {
	if next != o.state.next() {
		return fmt.Errorf("%w: %s cannot follow %s", ErrPassOrder, next, o.state)
	}
	o.state = next
	return nil
}

// abortOnError resets the frame when a pass fails so the next frame starts
// from idle with the back buffer bound.
func (o *Orchestrator) abortOnError(err *error) {
	if *err == nil {
		return
	}
	o.device.UnbindTarget()
	o.state = PassIdle
}

func (o *Orchestrator) prepare(in FrameInput) error {
	if in.Scene == nil || in.Settings == nil {
		return errIncompleteFrame
	}

	width, height := o.device.BackBufferSize()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrZeroBackBuffer, width, height)
	}

	if err := o.ensureTargets(width, height); err != nil {
		return err
	}
	if err := o.syncGeometry(in.Scene); err != nil {
		return err
	}

	o.projection = camera.Projection(width, height)
	return nil
}

// ensureTargets reallocates the render targets when the back buffer size
// changes.
func (o *Orchestrator) ensureTargets(width, height int) error {
	if o.targets.Matches(width, height) {
		return nil
	}

	o.targets.Release(o.device)
	o.targets = nil

	pair, err := NewTargetPair(o.device, width, height)
	if err != nil {
		return err
	}
	o.targets = pair

	logger.Debug("render targets allocated",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

// syncGeometry uploads terrain and water whenever the scene revision moves.
func (o *Orchestrator) syncGeometry(s *scene.Scene) error {
	if o.sky == nil {
		sky, err := o.device.UploadMesh(LayoutPosition, skyVertices, skyIndices)
		if err != nil {
			return fmt.Errorf("uploading sky: %w", err)
		}
		o.sky = sky
	}

	if o.terrain != nil && o.revision == s.Revision() {
		return nil
	}

	terrain, err := o.device.UploadMesh(LayoutTerrain, s.Terrain.Interleave(), s.Terrain.Indices)
	if err != nil {
		return fmt.Errorf("uploading terrain: %w", err)
	}
	water, err := o.device.UploadMesh(LayoutWater, s.Water.Interleave(), s.Water.Indices)
	if err != nil {
		o.device.ReleaseGeometry(terrain)
		return fmt.Errorf("uploading water: %w", err)
	}

	o.releaseGeometry()
	o.terrain = terrain
	o.water = water
	o.revision = s.Revision()

	logger.Debug("scene geometry uploaded",
		zap.Uint64("revision", o.revision),
		zap.Int("terrainIndices", terrain.IndexCount()),
		zap.Float32("waterHeight", s.WaterHeight()),
	)
	return nil
}

func (o *Orchestrator) releaseGeometry() {
	if o.terrain != nil {
		o.device.ReleaseGeometry(o.terrain)
		o.terrain = nil
	}
	if o.water != nil {
		o.device.ReleaseGeometry(o.water)
		o.water = nil
	}
}

// target returns the surface a clipped variant renders into.
func (o *Orchestrator) target(v Variant) Target {
	if o.targets == nil {
		return nil
	}
	if v == VariantRefraction {
		return o.targets.Refraction
	}
	return o.targets.Reflection
}

func (o *Orchestrator) offscreen(target Target, in FrameInput, view mgl32.Mat4, variant Variant, plane mgl32.Vec4) error {
	if target == nil {
		return fmt.Errorf("%w: %s pass", ErrNoRenderTarget, o.state)
	}
	if err := o.device.BindTarget(target); err != nil {
		return fmt.Errorf("binding %s target: %w", target.Name(), err)
	}

	o.device.SetFillMode(false)
	o.device.Clear(clearColor(in.Settings))

	if in.Settings.Skybox {
		if err := o.drawSky(in, view); err != nil {
			return err
		}
	}
	mirrored := variant == VariantReflection
	if mirrored {
		o.device.SetMirrored(true)
	}
	err := o.drawTerrain(in, view, variant, plane)
	if mirrored {
		o.device.SetMirrored(false)
	}
	if err != nil {
		return err
	}

	o.device.UnbindTarget()
	return nil
}

func (o *Orchestrator) drawSky(in FrameInput, view mgl32.Mat4) error {
	params := Params{
		"uProjection":   o.projection,
		"uView":         view,
		"uZenithColor":  in.Settings.ZenithColor,
		"uHorizonColor": in.Settings.HorizonColor,
	}
	return o.draw(o.programs.Sky, params, o.sky)
}

func (o *Orchestrator) drawTerrain(in FrameInput, view mgl32.Mat4, variant Variant, plane mgl32.Vec4) error {
	program := o.programs.Terrain[variant]
	if program == nil {
		return fmt.Errorf("%w: terrain %s", ErrMissingProgram, variant)
	}

	s := in.Settings
	params := Params{
		"uProjection":       o.projection,
		"uView":             view,
		"uWorld":            mgl32.Ident4(),
		"uLightingEnabled":  s.Lighting,
		"uAmbientColor":     s.Ambient.Color,
		"uAmbientIntensity": s.Ambient.Intensity,
		"uSunDirection":     s.Sun.NormalizedDirection(),
		"uSunColor":         s.Sun.Color,
		"uSunIntensity":     s.Sun.Intensity,
	}
	setTexture(params, "uTexture", o.textures.Terrain)
	if variant.Clipped() {
		params["uClipPlane"] = plane
	}

	return o.draw(program, params, o.terrain)
}

func (o *Orchestrator) drawWater(in FrameInput) error {
	refraction, reflection := o.target(VariantRefraction), o.target(VariantReflection)
	if refraction == nil || reflection == nil {
		return fmt.Errorf("%w: water needs both pass textures", ErrNoRenderTarget)
	}

	s := in.Settings
	params := Params{
		"uProjection":        o.projection,
		"uView":              in.View,
		"uWorld":             mgl32.Ident4(),
		"uReflectionView":    in.ReflectionView,
		"uCameraPosition":    in.CameraPosition,
		"uWaveOffset0":       in.WaveOffset0,
		"uWaveOffset1":       in.WaveOffset1,
		"uWaveTextureScale":  s.WaveTextureScale,
		"uRefractionEnabled": s.Refraction,
		"uReflectionEnabled": s.Reflection,
		"uFresnelEnabled":    s.Fresnel,
		"uSpecularEnabled":   s.Specular,
		"uWavesEnabled":      s.Waves,
		"uMerge":             s.Merge,
		"uWaterColor":        s.WaterColor,
		"uSunDirection":      s.Sun.NormalizedDirection(),
		"uSunSpecularColor":  s.Sun.SpecularColor,
		"uSpecularFactor":    s.Sun.SpecularFactor,
		"uSpecularPower":     s.Sun.SpecularPower,
	}
	setTexture(params, "uRefractionMap", refraction.ColorTexture())
	setTexture(params, "uReflectionMap", reflection.ColorTexture())
	setTexture(params, "uWaveMap0", o.textures.WaveMap0)
	setTexture(params, "uWaveMap1", o.textures.WaveMap1)

	return o.draw(o.programs.Water, params, o.water)
}

// draw verifies that every parameter the program reads is bound before
// handing the draw to the device.
func (o *Orchestrator) draw(p Program, params Params, g Geometry) error {
	for _, name := range p.Uniforms() {
		if v, ok := params[name]; !ok || v == nil {
			return fmt.Errorf("%w: %s in program %s", ErrUnboundParameter, name, p.Name())
		}
	}
	if err := o.device.Draw(p, params, g); err != nil {
		return fmt.Errorf("drawing %s: %w", p.Name(), err)
	}
	return nil
}

func setTexture(params Params, name string, t Texture) {
	if t != nil {
		params[name] = t
	}
}

func clearColor(s *scene.Settings) mgl32.Vec4 {
	return s.HorizonColor.Vec4(1)
}
