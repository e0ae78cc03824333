// Package framebuffer provides the off-screen render targets used by the
// refraction and reflection passes.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/waterscape/internal/engine/render"
)

// Framebuffer manages an offscreen render target with color and depth attachments.
type Framebuffer struct {
	name     string
	fbo      uint32
	color    *ColorAttachment
	depthRBO uint32
	width    int32
	height   int32
}

// ColorAttachment is the sampled color texture of a framebuffer.
type ColorAttachment struct {
	id     uint32
	width  int
	height int
}

// TextureID returns the GL texture object.
func (c *ColorAttachment) TextureID() uint32 {
	return c.id
}

// Size returns the texture dimensions.
func (c *ColorAttachment) Size() (int, int) {
	return c.width, c.height
}

// New creates a named framebuffer of the given size.
func New(name string, width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{
		name:   name,
		width:  int32(max(width, 1)),
		height: int32(max(height, 1)),
	}

	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating framebuffer %s: %w", name, err)
	}

	return fb, nil
}

func (fb *Framebuffer) create() error {
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	// Clamp so that distorted lookups near the border do not wrap.
	fb.color = &ColorAttachment{width: int(fb.width), height: int(fb.height)}
	gl.GenTextures(1, &fb.color.id)
	gl.BindTexture(gl.TEXTURE_2D, fb.color.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color.id, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &fb.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

// Name returns the target name.
func (fb *Framebuffer) Name() string {
	return fb.name
}

// Bind makes this framebuffer the current render target.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// ColorTexture returns the color attachment.
func (fb *Framebuffer) ColorTexture() render.Texture {
	return fb.color
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return int(fb.width), int(fb.height)
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != nil && fb.color.id != 0 {
		gl.DeleteTextures(1, &fb.color.id)
		fb.color.id = 0
	}
	if fb.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthRBO)
		fb.depthRBO = 0
	}
}
