package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{3, 0, 2, 2},
		{2, 0, 2, 2},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp() = %v, want 12.5", got)
	}
}

func TestWrap01(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{2, 0},
	}
	for _, tt := range tests {
		if got := Wrap01(tt.v); !ApproxEqual(got, tt.want, 1e-6) {
			t.Errorf("Wrap01(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPlaneDistance(t *testing.T) {
	// Keeps points below y = 20.1
	plane := mgl32.Vec4{0, -1, 0, 20.1}

	if d := PlaneDistance(plane, mgl32.Vec3{5, 10, 5}); d <= 0 {
		t.Errorf("PlaneDistance() below plane = %v, want > 0", d)
	}
	if d := PlaneDistance(plane, mgl32.Vec3{5, 30, 5}); d >= 0 {
		t.Errorf("PlaneDistance() above plane = %v, want < 0", d)
	}
}

func TestClampVec3(t *testing.T) {
	got := ClampVec3(mgl32.Vec3{-2, 0.5, 3}, -1, 1)
	want := mgl32.Vec3{-1, 0.5, 1}
	if got != want {
		t.Errorf("ClampVec3() = %v, want %v", got, want)
	}
}

func TestClampVec4(t *testing.T) {
	got := ClampVec4(mgl32.Vec4{-0.5, 0.25, 1.5, 1}, 0, 1)
	want := mgl32.Vec4{0, 0.25, 1, 1}
	if got != want {
		t.Errorf("ClampVec4() = %v, want %v", got, want)
	}
}
