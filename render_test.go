package starfield

import "testing"

func countByLayer(cmds []RenderCommand) map[Layer]int {
	m := map[Layer]int{}
	for _, c := range cmds {
		m[c.Layer]++
	}
	return m
}

func TestEmitFrame_AllTilesUnculled(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	cmds := s.EmitFrame()

	stars, lines := len(s.Stars()), len(s.Lines())
	want := 3 * (lines + 2*stars + 3)
	if len(cmds) != want {
		t.Fatalf("commands = %d, want %d", len(cmds), want)
	}
	byLayer := countByLayer(cmds)
	if byLayer[LayerConstellations] != 3*lines {
		t.Errorf("line commands = %d, want %d", byLayer[LayerConstellations], 3*lines)
	}
	if byLayer[LayerStars] != 6*stars {
		t.Errorf("star commands = %d, want %d", byLayer[LayerStars], 6*stars)
	}
	if byLayer[LayerTarget] != 9 {
		t.Errorf("target commands = %d, want 9", byLayer[LayerTarget])
	}
}

func TestEmitFrame_Order(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	s.SetPan(100)
	cmds := s.EmitFrame()
	w := s.PanoramaWidth()

	// Tiles are emitted -W, 0, +W; within a tile, lines then stars then target.
	lastTile, lastLayer := 0, Layer(0)
	for i, c := range cmds {
		if c.Tile < lastTile {
			t.Fatalf("command %d: tile %d after tile %d", i, c.Tile, lastTile)
		}
		if c.Tile == lastTile && c.Layer < lastLayer {
			t.Fatalf("command %d: layer %d after layer %d in tile %d", i, c.Layer, lastLayer, c.Tile)
		}
		lastTile, lastLayer = c.Tile, c.Layer
	}

	// Target glow, ring and core come last, translated by -pan + W.
	n := len(cmds)
	glow, ring, core := cmds[n-3], cmds[n-2], cmds[n-1]
	if glow.Type != CommandGlow || ring.Type != CommandRing || core.Type != CommandDisc {
		t.Fatalf("target command types = %v %v %v", glow.Type, ring.Type, core.Type)
	}
	if wantX := 620 - 100 + w; core.X != wantX {
		t.Errorf("target X on last tile = %v, want %v", core.X, wantX)
	}
}

func TestEmitFrame_StarGlowAndCore(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	cmds := s.EmitFrame()

	var glow, core *RenderCommand
	for i := range cmds {
		if cmds[i].Layer == LayerStars && cmds[i].Tile == 1 {
			glow, core = &cmds[i], &cmds[i+1]
			break
		}
	}
	if glow == nil {
		t.Fatal("no star commands on the center tile")
	}
	st := s.Stars()[0]
	if glow.Type != CommandGlow || core.Type != CommandDisc {
		t.Fatalf("types = %v, %v", glow.Type, core.Type)
	}
	if !approx(glow.Radius, 3*st.Radius) || !approx(glow.Gradient, 4*st.Radius) {
		t.Errorf("glow radius/gradient = %v/%v, want %v/%v", glow.Radius, glow.Gradient, 3*st.Radius, 4*st.Radius)
	}
	if core.Radius != st.Radius {
		t.Errorf("core radius = %v, want %v", core.Radius, st.Radius)
	}
	if !approx(core.Color.A, 0.95*st.Opacity) {
		t.Errorf("core alpha = %v, want %v", core.Color.A, 0.95*st.Opacity)
	}
	if !approx(glow.Color.A, 0.8*st.Opacity) {
		t.Errorf("glow alpha = %v, want %v", glow.Color.A, 0.8*st.Opacity)
	}
}

func TestEmitFrame_StarOpacityDisabled(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	s.StarOpacity = false
	for _, c := range s.EmitFrame() {
		if c.Layer == LayerStars && c.Type == CommandDisc && c.Color.A != 0.95 {
			t.Fatalf("core alpha = %v, want 0.95 without opacity", c.Color.A)
		}
	}
}

func TestEmitFrame_TargetStyle(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	cmds := s.EmitFrame()
	n := len(cmds)
	glow, ring, core := cmds[n-3], cmds[n-2], cmds[n-1]

	if glow.Radius != 24 || glow.Gradient != 28 {
		t.Errorf("glow = %v/%v, want 24/28", glow.Radius, glow.Gradient)
	}
	if ring.Radius != 15 || ring.Width != 1.2 {
		t.Errorf("ring = %v width %v, want 15 width 1.2", ring.Radius, ring.Width)
	}
	if core.Radius != 3.8 {
		t.Errorf("core = %v, want 3.8", core.Radius)
	}
	pal := DefaultPalette()
	if glow.Color != pal.TargetGlow || ring.Color != pal.TargetRing || core.Color != pal.TargetCore {
		t.Error("target colors should come from the palette")
	}
}

func TestEmitFrame_HoverScale(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	s.HandlePointer(PointerEvent{Kind: PointerHover, X: 620, Y: 210})
	if !s.Target().Hover {
		t.Fatal("expected hover")
	}

	// The scale applies on the same frame hover starts and holds after it.
	for frame := 0; frame < 2; frame++ {
		cmds := s.EmitFrame()
		n := len(cmds)
		glow, ring, core := cmds[n-3], cmds[n-2], cmds[n-1]
		if !approx(glow.Radius, 24*1.1) || !approx(ring.Radius, 15*1.1) || !approx(core.Radius, 3.8*1.1) {
			t.Errorf("frame %d: hover radii = %v %v %v, want scaled by 1.1", frame, glow.Radius, ring.Radius, core.Radius)
		}
		if !approx(glow.Gradient, 28*1.1) {
			t.Errorf("frame %d: glow gradient = %v, want %v", frame, glow.Gradient, 28*1.1)
		}
		if ring.Width != 1.2 {
			t.Errorf("ring width = %v, should not scale", ring.Width)
		}
		s.Update()
	}

	s.HandlePointer(PointerEvent{Kind: PointerHover, X: 300, Y: 300})
	cmds := s.EmitFrame()
	if ring := cmds[len(cmds)-2]; !approx(ring.Radius, 15) {
		t.Errorf("ring radius after leave = %v, want 15", ring.Radius)
	}
}

func TestEmitFrame_HoverEase(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	s.targetCfg.HoverDuration = 0.12
	s.HandlePointer(PointerEvent{Kind: PointerHover, X: 620, Y: 210})

	cmds := s.EmitFrame()
	if ring := cmds[len(cmds)-2]; !approx(ring.Radius, 15) {
		t.Errorf("eased ring radius at start = %v, want 15", ring.Radius)
	}
	for range 10 {
		s.Update()
	}
	cmds = s.EmitFrame()
	if ring := cmds[len(cmds)-2]; !approx(ring.Radius, 15*1.1) {
		t.Errorf("eased ring radius after 10 frames = %v, want %v", ring.Radius, 15*1.1)
	}
}

func TestEmitFrame_Culling(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = true
	cmds := s.EmitFrame()
	for _, c := range cmds {
		// Glow radii are the cull bounds for stars and the target.
		if c.Type != CommandGlow {
			continue
		}
		if c.X+c.Radius < 0 || c.X-c.Radius > 800 {
			t.Fatalf("off-screen command survived culling: %+v", c)
		}
	}

	s.CullEnabled = false
	if all := len(s.EmitFrame()); all <= len(cmds) {
		t.Errorf("culling kept %d of %d commands", len(cmds), all)
	}
}

func TestEmitFrame_EmptyField(t *testing.T) {
	s := NewScene(DefaultSceneConfig())
	if cmds := s.EmitFrame(); len(cmds) != 0 {
		t.Errorf("unmeasured scene emitted %d commands", len(cmds))
	}
}

func TestEmitFrame_NoStarsStillDrawsTarget(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.Stars.NarrowCount = 0
	cfg.Stars.WideCount = 0
	cfg.Rand = fixedRand(0.5)
	s := NewScene(cfg)
	s.CullEnabled = false
	s.Resize(800, 600, 1)

	cmds := s.EmitFrame()
	byLayer := countByLayer(cmds)
	if byLayer[LayerStars] != 0 || byLayer[LayerConstellations] != 0 {
		t.Errorf("empty star list should draw no stars: %v", byLayer)
	}
	if byLayer[LayerTarget] != 9 {
		t.Errorf("target commands = %d, want 9", byLayer[LayerTarget])
	}
}

func TestEmitFrame_LinePoints(t *testing.T) {
	s := newTestScene()
	s.CullEnabled = false
	for _, c := range s.EmitFrame() {
		if c.Type != CommandLine {
			continue
		}
		if len(c.Points) < 3 {
			t.Fatalf("line with %d points", len(c.Points))
		}
		if c.Width != 0.6 || c.Color != DefaultPalette().Line {
			t.Fatalf("line style = %v %+v", c.Width, c.Color)
		}
	}
}

func TestCountCommands(t *testing.T) {
	cmds := []RenderCommand{{Type: CommandLine}, {Type: CommandGlow}, {Type: CommandGlow}, {Type: CommandRing}}
	got := countCommands(cmds)
	if got[CommandLine] != 1 || got[CommandGlow] != 2 || got[CommandRing] != 1 || got[CommandDisc] != 0 {
		t.Errorf("countCommands = %v", got)
	}
}
