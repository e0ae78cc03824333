package ui2d

const (
	overlayMargin  = 8
	overlayPadding = 6
	overlayScale   = 1
)

// QueueLines queues a backed text block in the top-left corner.
func (r *Renderer) QueueLines(lines []string) {
	if len(lines) == 0 {
		return
	}

	_, gh := r.font.GlyphSize()
	lineH := float32(gh) * overlayScale

	var width float32
	for _, l := range lines {
		w, _ := r.font.MeasureText(l, overlayScale)
		width = max(width, w)
	}
	height := lineH * float32(len(lines))

	r.DrawRect(overlayMargin, overlayMargin, width+2*overlayPadding, height+2*overlayPadding, ColorPanelBg)

	y := float32(overlayMargin + overlayPadding)
	for _, l := range lines {
		r.DrawText(overlayMargin+overlayPadding, y, l, overlayScale, ColorText)
		y += lineH
	}
}

// DrawLines draws lines of text over the current framebuffer.
func (r *Renderer) DrawLines(lines []string) {
	r.Begin()
	r.QueueLines(lines)
	r.End()
}
