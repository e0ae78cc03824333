package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		lon, lat float32
		want     mgl32.Vec3
	}{
		{0, 90, mgl32.Vec3{0, 1, 0}},
		{0, 0, mgl32.Vec3{0, 0, 1}},
		{90, 0, mgl32.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		got := SunDirection(tt.lon, tt.lat)
		if !got.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
		}
		if l := got.Len(); math.Abs(float64(l-1)) > 1e-5 {
			t.Errorf("SunDirection(%v, %v) length = %v, want 1", tt.lon, tt.lat, l)
		}
	}
}

func TestSun_NudgeClamps(t *testing.T) {
	sun := DefaultSun()
	sun.Direction = mgl32.Vec3{0.9, 0, -0.9}

	sun.Nudge(0, 0.5)
	sun.Nudge(2, -0.5)
	sun.Nudge(7, 1) // ignored

	if sun.Direction != (mgl32.Vec3{1, 0, -1}) {
		t.Errorf("expected clamped direction (1,0,-1), got %v", sun.Direction)
	}
}

func TestSun_NormalizedDirection(t *testing.T) {
	sun := Sun{}
	if got := sun.NormalizedDirection(); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("expected up for zero direction, got %v", got)
	}

	sun.Direction = mgl32.Vec3{0, 3, 4}
	if got := sun.NormalizedDirection(); !got.ApproxEqual(mgl32.Vec3{0, 0.6, 0.8}) {
		t.Errorf("expected (0,0.6,0.8), got %v", got)
	}
}

func TestIntensityClamp(t *testing.T) {
	sun := DefaultSun()
	sun.SetIntensity(5)
	if sun.Intensity != MaxIntensity {
		t.Errorf("expected sun intensity %v, got %v", MaxIntensity, sun.Intensity)
	}

	amb := DefaultAmbient()
	amb.SetIntensity(-1)
	if amb.Intensity != MinIntensity {
		t.Errorf("expected ambient intensity %v, got %v", MinIntensity, amb.Intensity)
	}
}
