package ui2d

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
	// solidSlot is an opaque cell after the printable glyphs, sampled by
	// untextured quads.
	solidSlot = int(lastGlyph-firstGlyph) + 1
)

// Font is a monospaced bitmap font rasterised into a texture atlas.
type Font struct {
	face      *basicfont.Face
	atlas     *image.RGBA
	glyphW    int
	glyphH    int
	textureID uint32
}

// NewFont rasterises basicfont.Face7x13 into an atlas. The GL texture is
// created on first use.
func NewFont() *Font {
	face := basicfont.Face7x13
	f := &Font{
		face:   face,
		glyphW: face.Advance,
		glyphH: face.Height,
	}

	slots := solidSlot + 1
	rows := (slots + atlasColumns - 1) / atlasColumns
	f.atlas = image.NewRGBA(image.Rect(0, 0, atlasColumns*f.glyphW, rows*f.glyphH))

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: f.atlas, Src: image.White, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		x, y := f.cell(int(r - firstGlyph))
		d.Dot = fixed.P(x, y+ascent)
		d.DrawString(string(r))
	}

	x, y := f.cell(solidSlot)
	draw.Draw(f.atlas, image.Rect(x, y, x+f.glyphW, y+f.glyphH), image.White, image.Point{}, draw.Src)

	return f
}

func (f *Font) cell(slot int) (x, y int) {
	return (slot % atlasColumns) * f.glyphW, (slot / atlasColumns) * f.glyphH
}

func (f *Font) slotUV(slot int) (u0, v0, u1, v1 float32) {
	x, y := f.cell(slot)
	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	return float32(x) / w, float32(y) / h, float32(x+f.glyphW) / w, float32(y+f.glyphH) / h
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GetGlyphUV returns the atlas coordinates of a rune. Runes outside the
// printable ASCII range map to '?'.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	return f.slotUV(int(r - firstGlyph))
}

// SolidUV returns the coordinates of the opaque cell.
func (f *Font) SolidUV() (u0, v0, u1, v1 float32) {
	// Sample the cell centre so linear filtering never reaches a glyph.
	u0, v0, u1, v1 = f.slotUV(solidSlot)
	cu, cv := (u0+u1)/2, (v0+v1)/2
	return cu, cv, cu, cv
}

// MeasureText returns the width and height of rendered text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, current := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			current = 0
			continue
		}
		current++
		longest = max(longest, current)
	}
	return float32(longest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}

// TextureID returns the atlas texture, uploading it on first call.
func (f *Font) TextureID() uint32 {
	if f.textureID != 0 {
		return f.textureID
	}

	b := f.atlas.Bounds()
	gl.GenTextures(1, &f.textureID)
	gl.BindTexture(gl.TEXTURE_2D, f.textureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.atlas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f.textureID
}

// Close releases the atlas texture.
func (f *Font) Close() {
	if f.textureID != 0 {
		gl.DeleteTextures(1, &f.textureID)
		f.textureID = 0
	}
}
