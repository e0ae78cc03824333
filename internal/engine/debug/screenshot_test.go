package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipPixels(t *testing.T) {
	// Two rows, bottom row first: red at the bottom, blue on top.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipPixels: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipPixelsErrors(t *testing.T) {
	if _, err := FlipPixels(make([]byte, 4), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FlipPixels(nil, 0, 1); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestSaveUniqueNames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "waterscape")
	sc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	first, err := sc.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := sc.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if want := filepath.Join(dir, "waterscape_2024-05-06_07-08-09.png"); first != want {
		t.Errorf("first = %s, want %s", first, want)
	}
	if want := filepath.Join(dir, "waterscape_2024-05-06_07-08-09_1.png"); second != want {
		t.Errorf("second = %s, want %s", second, want)
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
	}
}
