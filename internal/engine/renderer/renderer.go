// Package renderer implements the render device over OpenGL 4.1 core.
package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/engine/framebuffer"
	"github.com/Faultbox/waterscape/internal/engine/render"
	"github.com/Faultbox/waterscape/internal/engine/renderer/shaders"
	"github.com/Faultbox/waterscape/internal/engine/shader"
	"github.com/Faultbox/waterscape/internal/engine/texture"
	"github.com/Faultbox/waterscape/internal/engine/ui2d"
	"github.com/Faultbox/waterscape/internal/logger"
)

// ErrForeignResource is returned when a resource created by another device
// is passed in.
var ErrForeignResource = errors.New("resource does not belong to this device")

// Config holds renderer configuration.
type Config struct {
	// BackBufferSize reports the drawable size in pixels.
	BackBufferSize func() (int, int)
	// Swap presents the back buffer.
	Swap func()
}

// Device is the OpenGL render device.
type Device struct {
	config   Config
	overlay  *ui2d.Renderer
	programs []*shader.Program
}

// New creates the device.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Device, error) {
	if cfg.BackBufferSize == nil || cfg.Swap == nil {
		return nil, errors.New("renderer config needs BackBufferSize and Swap")
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	glsl := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.String("glsl", glsl),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	d := &Device{config: cfg}

	w, h := cfg.BackBufferSize()
	overlay, err := ui2d.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}
	d.overlay = overlay

	return d, nil
}

// CompilePrograms builds every program the orchestrator needs. The clipped
// terrain variants share the lit source with CLIP_PLANE defined.
func (d *Device) CompilePrograms() (render.Programs, error) {
	build := func(name, vs, fs string, defines ...string) (*shader.Program, error) {
		p, err := shader.New(name, vs, fs, defines...)
		if err != nil {
			return nil, err
		}
		d.programs = append(d.programs, p)
		logger.Debug("shader program linked",
			zap.String("name", name),
			zap.Strings("uniforms", p.Uniforms()),
		)
		return p, nil
	}

	var programs render.Programs
	programs.Terrain = make(map[render.Variant]render.Program)

	terrain := []struct {
		variant render.Variant
		defines []string
	}{
		{render.VariantLit, nil},
		{render.VariantRefraction, []string{"CLIP_PLANE"}},
		{render.VariantReflection, []string{"CLIP_PLANE"}},
	}
	for _, t := range terrain {
		p, err := build("terrain-"+t.variant.String(), shaders.TerrainVertexShader, shaders.TerrainFragmentShader, t.defines...)
		if err != nil {
			return render.Programs{}, err
		}
		programs.Terrain[t.variant] = p
	}

	water, err := build("water", shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return render.Programs{}, err
	}
	programs.Water = water

	sky, err := build("sky", shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return render.Programs{}, err
	}
	programs.Sky = sky

	return programs, nil
}

// BackBufferSize returns the drawable size.
func (d *Device) BackBufferSize() (int, int) {
	return d.config.BackBufferSize()
}

// Clear clears color and depth of the bound framebuffer.
func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetFillMode switches between filled and wireframe polygons.
func (d *Device) SetFillMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// SetMirrored swaps the front-face winding.
func (d *Device) SetMirrored(mirrored bool) {
	if mirrored {
		gl.FrontFace(gl.CW)
		return
	}
	gl.FrontFace(gl.CCW)
}

// NewRenderTarget allocates a framebuffer.
func (d *Device) NewRenderTarget(name string, width, height int) (render.Target, error) {
	fb, err := framebuffer.New(name, width, height)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// BindTarget redirects drawing into t.
func (d *Device) BindTarget(t render.Target) error {
	fb, ok := t.(*framebuffer.Framebuffer)
	if !ok {
		return fmt.Errorf("%w: target %T", ErrForeignResource, t)
	}
	fb.Bind()
	return nil
}

// UnbindTarget restores the back buffer and its viewport.
func (d *Device) UnbindTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	w, h := d.BackBufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
}

// ReleaseTarget frees a framebuffer.
func (d *Device) ReleaseTarget(t render.Target) {
	if fb, ok := t.(*framebuffer.Framebuffer); ok {
		fb.Destroy()
	}
}

// UploadMesh creates vertex and index buffers for an interleaved mesh.
func (d *Device) UploadMesh(layout render.Layout, vertices []float32, indices []uint32) (render.Geometry, error) {
	return newMesh(layout, vertices, indices)
}

// ReleaseGeometry frees uploaded buffers.
func (d *Device) ReleaseGeometry(g render.Geometry) {
	if m, ok := g.(*mesh); ok {
		m.delete()
	}
}

// UploadTexture creates a sampled texture.
func (d *Device) UploadTexture(img *image.RGBA) (render.Texture, error) {
	t, err := texture.Upload(img)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Draw binds params to p and draws g as indexed triangles.
func (d *Device) Draw(p render.Program, params render.Params, g render.Geometry) error {
	prog, ok := p.(*shader.Program)
	if !ok {
		return fmt.Errorf("%w: program %T", ErrForeignResource, p)
	}
	m, ok := g.(*mesh)
	if !ok {
		return fmt.Errorf("%w: geometry %T", ErrForeignResource, g)
	}

	prog.Use()
	if err := prog.Apply(params); err != nil {
		return err
	}
	m.draw()
	return nil
}

// DrawOverlay draws text lines over the back buffer.
func (d *Device) DrawOverlay(lines []string) error {
	w, h := d.BackBufferSize()
	d.overlay.Resize(w, h)
	d.overlay.DrawLines(lines)
	return nil
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row
// first.
func (d *Device) ReadPixels() ([]byte, int, int) {
	w, h := d.BackBufferSize()
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Present swaps buffers.
func (d *Device) Present() {
	d.config.Swap()
}

// Close releases programs and the overlay.
func (d *Device) Close() {
	logger.Info("closing renderer")
	for _, p := range d.programs {
		p.Delete()
	}
	d.programs = nil
	if d.overlay != nil {
		d.overlay.Close()
		d.overlay = nil
	}
}
