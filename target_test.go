package starfield

import "testing"

func TestIsHit_Boundary(t *testing.T) {
	const r = 26.0
	const eps = 1e-9
	tests := []struct {
		name   string
		wx, wy float64
		want   bool
	}{
		{"center", 620, 210, true},
		{"exactly on radius, x axis", 620 + r, 210, false},
		{"exactly on radius, y axis", 620, 210 - r, false},
		{"just inside", 620 + r - eps, 210, true},
		{"just inside, y axis", 620, 210 + r - eps, true},
		{"outside", 620 + r + 1, 210, false},
		{"diagonal inside", 620 + 18, 210 + 18, true},
		{"diagonal outside", 620 + 19, 210 + 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHit(tt.wx, tt.wy, 620, 210, r); got != tt.want {
				t.Errorf("IsHit(%v, %v) = %v, want %v", tt.wx, tt.wy, got, tt.want)
			}
		})
	}
}

func TestHitCircle(t *testing.T) {
	c := HitCircle{CenterX: 10, CenterY: 10, Radius: 5}
	if !c.Contains(14.9, 10) {
		t.Error("expected inside")
	}
	if c.Contains(15, 10) {
		t.Error("boundary should be outside")
	}
}

func TestTargetPlace(t *testing.T) {
	cfg := DefaultTargetConfig()
	tests := []struct {
		name   string
		vw, vh float64
		want   Vec2
	}{
		{"desktop", 800, 600, Vec2{620, 210}},
		{"tall", 800, 1000, Vec2{620, 350}},
		{"short clamps to margin", 800, 200, Vec2{620, 80}},
		{"tiny height centers", 800, 100, Vec2{620, 50}},
		{"narrow clamps x", 100, 600, Vec2{220, 210}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Place(tt.vw, tt.vh); got != tt.want {
				t.Errorf("Place(%v, %v) = %+v, want %+v", tt.vw, tt.vh, got, tt.want)
			}
		})
	}
}

func TestTargetMarker_HitScreen(t *testing.T) {
	m := TargetMarker{Pos: Vec2{620, 210}, ActivationRadius: 26, placed: true}
	const width = 2400
	tests := []struct {
		name   string
		sx, sy float64
		pan    float64
		want   bool
	}{
		{"no pan", 620, 210, 0, true},
		{"panned", 120, 210, 500, true},
		{"panned miss", 620, 210, 500, false},
		{"wrapped tile", 1020, 210, 2000, true},
		{"zero width", 620, 210, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := float64(width)
			if tt.name == "zero width" {
				w = 0
			}
			if got := m.HitScreen(tt.sx, tt.sy, tt.pan, w); got != tt.want {
				t.Errorf("HitScreen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetMarker_Unplaced(t *testing.T) {
	m := TargetMarker{ActivationRadius: 26}
	if m.HitWorld(0, 0) {
		t.Error("unplaced marker should never hit")
	}
	if m.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", m.Scale())
	}
}

func TestActivationRadiusIndependentOfGlow(t *testing.T) {
	cfg := DefaultTargetConfig()
	cfg.ActivationRadius = 10
	s := NewScene(SceneConfig{Stars: DefaultStarConfig(), Target: cfg, Gesture: DefaultGestureConfig(), Palette: DefaultPalette(), Rand: fixedRand(0.5)})
	s.Resize(800, 600, 1)

	if s.Target().HitScreen(620+12, 210, 0, s.PanoramaWidth()) {
		t.Error("point inside glow but outside activation radius should miss")
	}
	if !s.Target().HitScreen(620+9, 210, 0, s.PanoramaWidth()) {
		t.Error("point inside activation radius should hit")
	}
}

func TestTargetSnapshotMethods(t *testing.T) {
	s, _ := newTargetAtScene()
	m := s.Target()
	if !m.Placed() {
		t.Fatal("target should be placed after resize")
	}
	area := m.HitArea()
	if area.CenterX != 100 || area.CenterY != 100 || area.Radius != 26 {
		t.Errorf("HitArea = %+v, want center (100, 100) radius 26", area)
	}
	if !m.HitWorld(100+25.9, 100) || m.HitWorld(100+26, 100) {
		t.Error("HitWorld should follow HitArea containment")
	}
	if m.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", m.Scale())
	}
}
