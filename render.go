package starfield

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandLine CommandType = iota // constellation polyline stroke
	CommandGlow                    // radial-gradient disc
	CommandDisc                    // solid filled circle
	CommandRing                    // stroked circle outline
)

// Layer identifies which part of the scene a command belongs to.
type Layer uint8

const (
	LayerConstellations Layer = iota
	LayerStars
	LayerTarget
)

// RenderCommand is a single draw instruction in logical (CSS-pixel) screen
// coordinates. The submitter scales by the device factor.
type RenderCommand struct {
	Type  CommandType
	Layer Layer
	Color Color

	// X, Y is the circle center for glow, disc and ring commands.
	X, Y float64
	// Radius is the drawn radius; for glows it is the clip radius.
	Radius float64
	// Gradient is the radius at which a glow fades to zero.
	Gradient float64
	// Width is the stroke width for lines and rings.
	Width float64

	// Points and OffsetX describe a polyline: each point is drawn at
	// (P.X + OffsetX, P.Y). Points aliases the field's star slice.
	Points  []Star
	OffsetX float64

	Tile int // index into TileOffsets
}

// Palette holds the scene colors. Alpha values are the peak opacity.
type Palette struct {
	Background Color
	Line       Color
	LineWidth  float64
	StarGlow   Color
	StarCore   Color
	TargetGlow Color
	TargetRing Color
	TargetCore Color
}

// DefaultPalette returns the pale-blue night sky colors.
func DefaultPalette() Palette {
	return Palette{
		Background: RGBA8(5, 8, 20, 1),
		Line:       RGBA8(200, 220, 255, 0.16),
		LineWidth:  0.6,
		StarGlow:   RGBA8(223, 231, 255, 0.8),
		StarCore:   RGBA8(223, 231, 255, 0.95),
		TargetGlow: RGBA8(143, 212, 255, 0.45),
		TargetRing: RGBA8(143, 212, 255, 0.35),
		TargetCore: RGBA8(223, 240, 255, 0.95),
	}
}

const (
	starGlowClip     = 3 // glow disc radius, in star radii
	starGlowGradient = 4 // glow fade-out radius, in star radii
)

// emitFrame rebuilds s.commands for the current state. A zero-width
// viewport produces no commands.
func (s *Scene) emitFrame() {
	s.commands = s.commands[:0]
	width := s.PanoramaWidth()
	if width <= 0 || s.viewport.Height <= 0 {
		return
	}
	pan := s.pan.Offset(width)
	view := Rect{Width: s.viewport.Width, Height: s.viewport.Height}

	for tile, off := range TileOffsets(width) {
		tx := -pan + off
		if s.CullEnabled && !view.Intersects(Rect{X: tx, Width: width, Height: s.viewport.Height}) {
			continue
		}
		s.emitConstellations(tile, tx, view)
		s.emitStars(tile, tx, view)
		s.emitTarget(tile, tx, view)
	}
}

func (s *Scene) emitConstellations(tile int, tx float64, view Rect) {
	for _, line := range s.field.Lines {
		if len(line.Stars) < 2 {
			continue
		}
		if s.CullEnabled && !view.Intersects(polylineBounds(line.Stars, tx)) {
			continue
		}
		s.commands = append(s.commands, RenderCommand{
			Type:    CommandLine,
			Layer:   LayerConstellations,
			Color:   s.palette.Line,
			Width:   s.palette.LineWidth,
			Points:  line.Stars,
			OffsetX: tx,
			Tile:    tile,
		})
	}
}

func (s *Scene) emitStars(tile int, tx float64, view Rect) {
	for i := range s.field.Stars {
		st := &s.field.Stars[i]
		x, y := st.Pos.X+tx, st.Pos.Y
		if s.CullEnabled && !view.Intersects(circleBounds(x, y, st.Radius*starGlowClip)) {
			continue
		}
		glow, core := s.palette.StarGlow, s.palette.StarCore
		if s.StarOpacity {
			glow = glow.WithAlpha(st.Opacity)
			core = core.WithAlpha(st.Opacity)
		}
		s.commands = append(s.commands,
			RenderCommand{
				Type: CommandGlow, Layer: LayerStars, Color: glow,
				X: x, Y: y,
				Radius:   st.Radius * starGlowClip,
				Gradient: st.Radius * starGlowGradient,
				Tile:     tile,
			},
			RenderCommand{
				Type: CommandDisc, Layer: LayerStars, Color: core,
				X: x, Y: y, Radius: st.Radius,
				Tile: tile,
			},
		)
	}
}

func (s *Scene) emitTarget(tile int, tx float64, view Rect) {
	t := &s.target
	if !t.placed {
		return
	}
	k := t.Scale()
	cfg := &s.targetCfg
	x, y := t.Pos.X+tx, t.Pos.Y
	if s.CullEnabled && !view.Intersects(circleBounds(x, y, cfg.GlowRadius*k)) {
		return
	}
	s.commands = append(s.commands,
		RenderCommand{
			Type: CommandGlow, Layer: LayerTarget, Color: s.palette.TargetGlow,
			X: x, Y: y,
			Radius:   cfg.GlowRadius * k,
			Gradient: cfg.GlowGradient * k,
			Tile:     tile,
		},
		RenderCommand{
			Type: CommandRing, Layer: LayerTarget, Color: s.palette.TargetRing,
			X: x, Y: y, Radius: cfg.RingRadius * k, Width: cfg.RingWidth,
			Tile: tile,
		},
		RenderCommand{
			Type: CommandDisc, Layer: LayerTarget, Color: s.palette.TargetCore,
			X: x, Y: y, Radius: cfg.CoreRadius * k,
			Tile: tile,
		},
	)
}

func circleBounds(x, y, r float64) Rect {
	return Rect{X: x - r, Y: y - r, Width: 2 * r, Height: 2 * r}
}

func polylineBounds(pts []Star, tx float64) Rect {
	minX, minY := pts[0].Pos.X, pts[0].Pos.Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.Pos.X)
		maxX = max(maxX, p.Pos.X)
		minY = min(minY, p.Pos.Y)
		maxY = max(maxY, p.Pos.Y)
	}
	return Rect{X: minX + tx, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Commands returns the commands emitted by the last Draw or EmitFrame. The
// returned slice MUST NOT be mutated and is overwritten by the next frame.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// EmitFrame rebuilds the command list without submitting it. Draw calls it
// internally; tests and custom renderers may call it directly.
func (s *Scene) EmitFrame() []RenderCommand {
	s.emitFrame()
	return s.commands
}
