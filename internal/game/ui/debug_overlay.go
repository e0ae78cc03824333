// Package ui formats the debug overlay shown over the scene.
package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/waterscape/internal/engine/scene"
)

// memRefresh is how often memory stats are sampled, in seconds.
const memRefresh = 2.0

// Snapshot is the world state the overlay reports.
type Snapshot struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	Yaw         float32 // radians
	Pitch       float32 // radians
	WaterHeight float32
	Settings    *scene.Settings

	// Ground is the terrain height under the camera, valid with OverGround.
	Ground     float32
	OverGround bool
}

// DebugOverlay builds the text lines of the info overlay.
type DebugOverlay struct {
	Counter FrameCounter

	ShowControls bool
	ShowMemory   bool

	memStats      runtime.MemStats
	memUpdateTime float64
}

// NewDebugOverlay creates a new debug overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{ShowControls: true}
}

// Update advances the frame counter and periodically samples memory.
func (d *DebugOverlay) Update(dt float64) {
	d.Counter.Tick(dt)

	if !d.ShowMemory {
		return
	}
	d.memUpdateTime += dt
	if d.memUpdateTime >= memRefresh || d.memStats.Sys == 0 {
		runtime.ReadMemStats(&d.memStats)
		d.memUpdateTime = 0
	}
}

// Lines returns the overlay text for one frame.
func (d *DebugOverlay) Lines(s Snapshot) []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f (%.2f ms)", d.Counter.FPS(), d.Counter.FrameTime()),
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", s.Position.X(), s.Position.Y(), s.Position.Z()),
		fmt.Sprintf("Direction: %.2f, %.2f, %.2f", s.Direction.X(), s.Direction.Y(), s.Direction.Z()),
		fmt.Sprintf("Yaw: %.1f", mgl32.RadToDeg(s.Yaw)),
		fmt.Sprintf("Pitch: %.1f", mgl32.RadToDeg(s.Pitch)),
		fmt.Sprintf("Water height: %.2f", s.WaterHeight),
	}
	if s.OverGround {
		lines = append(lines, fmt.Sprintf("Ground: %.2f  Altitude: %.2f", s.Ground, s.Position.Y()-s.Ground))
	}

	if st := s.Settings; st != nil {
		lines = append(lines,
			fmt.Sprintf("Ambient: %.2f  Sun: %.2f", st.Ambient.Intensity, st.Sun.Intensity),
			fmt.Sprintf("Sun dir: %.2f, %.2f, %.2f", st.Sun.Direction.X(), st.Sun.Direction.Y(), st.Sun.Direction.Z()),
			fmt.Sprintf("Waves: speed %.3f  scale %.2f  merge %.2f", st.WaveSpeed, st.WaveTextureScale, st.Merge),
			toggleLine(st),
		)
	}

	if d.ShowMemory {
		lines = append(lines,
			fmt.Sprintf("Alloc: %s  Sys: %s  GC: %d",
				formatBytes(int64(d.memStats.Alloc)), formatBytes(int64(d.memStats.Sys)), d.memStats.NumGC),
		)
	}

	if d.ShowControls {
		lines = append(lines, controlsHelp...)
	}
	return lines
}

var controlsHelp = []string{
	"WASD/Space/Ctrl move  F1-F10 toggles  Esc quit",
	"1/2 ambient  3/4 sun  U/J I/K O/L sun dir  PgUp/PgDn water",
	"T/G wave scale  Y/H merge  N/M wave speed  F12 screenshot",
}

var toggleOrder = []scene.Toggle{
	scene.ToggleWireframe,
	scene.ToggleLighting,
	scene.ToggleWater,
	scene.ToggleSkybox,
	scene.ToggleRefraction,
	scene.ToggleReflection,
	scene.ToggleFresnel,
	scene.ToggleSpecular,
	scene.ToggleWaves,
}

// toggleLine lists the switches as F-key:name, with a '+' when on.
func toggleLine(s *scene.Settings) string {
	parts := make([]string, 0, len(toggleOrder))
	for i, t := range toggleOrder {
		mark := "-"
		if s.Enabled(t) {
			mark = "+"
		}
		parts = append(parts, fmt.Sprintf("F%d%s%s", i+1, mark, t))
	}
	return strings.Join(parts, " ")
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
