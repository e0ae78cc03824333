package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay colors.
var (
	ColorText    = Color{0.9, 0.9, 0.9, 1}
	ColorPanelBg = Color{0.05, 0.05, 0.08, 0.6}
)
