package starfield

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-tap", "after-tap"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(DefaultSceneConfig())
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	got := s.PendingScreenshots()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", got)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene(DefaultSceneConfig())
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestScreenshotPath(t *testing.T) {
	got := screenshotPath("shots", "20260101_120000", "after tap")
	want := filepath.Join("shots", "20260101_120000_after_tap.png")
	if got != want {
		t.Errorf("screenshotPath = %q, want %q", got, want)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // half-ish alpha
		255, 255, 255, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	tests := []struct {
		i    int
		want [4]uint8
	}{
		{0, [4]uint8{127, 63, 0, 200}},
		{1, [4]uint8{255, 255, 255, 255}},
		{2, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		p := img.Pix[tt.i*4 : tt.i*4+4]
		got := [4]uint8{p[0], p[1], p[2], p[3]}
		if got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Pix[3] = 255
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 2 {
		t.Errorf("width = %d, want 2", decoded.Bounds().Dx())
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}
