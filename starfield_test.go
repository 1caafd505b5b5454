package starfield

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint32
	}{
		{"opaque white", Color{1, 1, 1, 1}, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Color{1, 1, 1, 0}, 0, 0, 0, 0},
		{"half red", Color{1, 0, 0, 0.5}, 0x7fff, 0, 0, 0x7fff},
		{"clamped", Color{2, -1, 0, 1.5}, 0xffff, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA = %x %x %x %x, want %x %x %x %x", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
	var _ color.Color = Color{}
}

func TestRGBA8(t *testing.T) {
	c := RGBA8(255, 0, 51, 0.5)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 0.5 {
		t.Errorf("RGBA8 = %+v", c)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{1, 1, 1, 0.8}.WithAlpha(0.5)
	if c.A != 0.4 {
		t.Errorf("A = %v, want 0.4", c.A)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(9.99, 9.99) {
		t.Error("Contains should include the top-left edge")
	}
	if r.Contains(10, 5) || r.Contains(5, 10) {
		t.Error("Contains should exclude the bottom-right edge")
	}
	if !r.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 11, Y: 0, Width: 5, Height: 5}) {
		t.Error("separate rects should not intersect")
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 0.4, Max: 1.6}
	if r.Lerp(0) != 0.4 {
		t.Errorf("Lerp(0) = %v", r.Lerp(0))
	}
	if !approx(r.Lerp(0.5), 1.0) {
		t.Errorf("Lerp(0.5) = %v", r.Lerp(0.5))
	}
}

func TestFPSText(t *testing.T) {
	if got := fpsText(59.94, 60); got != "FPS: 59.9\nTPS: 60.0" {
		t.Errorf("fpsText = %q", got)
	}
}
