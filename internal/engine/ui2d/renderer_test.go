package ui2d

import "testing"

func newTestRenderer() *Renderer {
	return &Renderer{screenWidth: 640, screenHeight: 480, font: NewFont()}
}

func TestFontGlyphSize(t *testing.T) {
	f := NewFont()
	w, h := f.GlyphSize()
	if w != 7 || h != 13 {
		t.Errorf("GlyphSize = %dx%d, want 7x13", w, h)
	}
}

func TestFontAtlasHasGlyphs(t *testing.T) {
	f := NewFont()
	x, y := f.cell(int('A' - firstGlyph))
	lit := 0
	for py := y; py < y+f.glyphH; py++ {
		for px := x; px < x+f.glyphW; px++ {
			if f.atlas.RGBAAt(px, py).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' was not rasterised")
	}
}

func TestFontSolidCellOpaque(t *testing.T) {
	f := NewFont()
	x, y := f.cell(solidSlot)
	for py := y; py < y+f.glyphH; py++ {
		for px := x; px < x+f.glyphW; px++ {
			if a := f.atlas.RGBAAt(px, py).A; a != 255 {
				t.Fatalf("solid cell alpha at (%d,%d) = %d", px, py, a)
			}
		}
	}
}

func TestGetGlyphUVFallback(t *testing.T) {
	f := NewFont()
	u0, v0, u1, v1 := f.GetGlyphUV('é')
	q0, r0, q1, r1 := f.GetGlyphUV('?')
	if u0 != q0 || v0 != r0 || u1 != q1 || v1 != r1 {
		t.Error("non-ASCII rune should map to '?'")
	}
	if u1 <= u0 || v1 <= v0 {
		t.Errorf("degenerate uv (%v,%v)-(%v,%v)", u0, v0, u1, v1)
	}
}

func TestMeasureText(t *testing.T) {
	f := NewFont()
	w, h := f.MeasureText("abc\nde", 2)
	if w != 42 || h != 52 {
		t.Errorf("MeasureText = %vx%v, want 42x52", w, h)
	}
}

func TestDrawTextSkipsSpaces(t *testing.T) {
	r := newTestRenderer()
	r.DrawText(0, 0, "a b", 1, ColorText)
	if got := len(r.vertices) / (6 * vertexFloats); got != 2 {
		t.Errorf("quads = %d, want 2", got)
	}
}

func TestQueueLines(t *testing.T) {
	r := newTestRenderer()
	r.QueueLines([]string{"Yaw: 1", "Pitch: 2"})

	// one panel + 12 printable glyphs
	if got := len(r.vertices) / (6 * vertexFloats); got != 13 {
		t.Errorf("quads = %d, want 13", got)
	}

	// panel first, starting at the margin
	if r.vertices[0] != overlayMargin || r.vertices[1] != overlayMargin {
		t.Errorf("panel origin = (%v,%v)", r.vertices[0], r.vertices[1])
	}
}

func TestQueueLinesEmpty(t *testing.T) {
	r := newTestRenderer()
	r.QueueLines(nil)
	if len(r.vertices) != 0 {
		t.Error("no lines should queue nothing")
	}
}
