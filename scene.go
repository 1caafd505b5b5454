package starfield

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// LinkOpener opens the target's external link in a new browsing context.
type LinkOpener interface {
	OpenLink(url string) error
}

// LinkOpenerFunc adapts a function to LinkOpener.
type LinkOpenerFunc func(url string) error

// OpenLink calls f(url).
func (f LinkOpenerFunc) OpenLink(url string) error { return f(url) }

// Viewport is the measured drawing surface in logical pixels, plus the
// device scale factor used to size the backing image.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// SceneConfig bundles everything needed to build a Scene.
type SceneConfig struct {
	Stars   StarConfig
	Target  TargetConfig
	Gesture GestureConfig
	Palette Palette

	// StarOpacity multiplies each star's stored opacity into its glow and
	// core alpha.
	StarOpacity bool

	// KeyPanFraction is the share of the viewport width an arrow key glides
	// the pan by, over KeyPanDuration seconds.
	KeyPanFraction float64
	KeyPanDuration float32

	// WheelStep is the pan distance per unit of horizontal wheel travel.
	WheelStep float64

	// Rand is the star placement source. Nil uses the unseeded global source.
	Rand RandSource
}

// DefaultSceneConfig returns the stock scene settings.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Stars:          DefaultStarConfig(),
		Target:         DefaultTargetConfig(),
		Gesture:        DefaultGestureConfig(),
		Palette:        DefaultPalette(),
		StarOpacity:    true,
		KeyPanFraction: 0.25,
		KeyPanDuration: 0.35,
		WheelStep:      40,
	}
}

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Scene owns the starfield state: viewport, stars, target, pan offset and
// gesture. Everything is read and written from the game goroutine only.
type Scene struct {
	// CullEnabled skips primitives that fall entirely outside the viewport.
	CullEnabled bool
	// StarOpacity wires each star's opacity into its alpha.
	StarOpacity bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	viewport  Viewport
	measured  bool
	field     Field
	target    TargetMarker
	pan       Panner
	gestures  *Classifier
	starCfg   StarConfig
	targetCfg TargetConfig
	palette   Palette
	rng       RandSource

	keyPanFraction float64
	keyPanDuration float32
	wheelStep      float64

	// Render state
	commands []RenderCommand
	glows    glowCache

	// Input state
	handlers         handlerRegistry
	store            EntityStore
	opener           LinkOpener
	captured         [maxPointers]bool
	captureSupported bool
	live             bool
	input            liveInput
	injectQueue      []PointerEvent

	testRunner      *TestRunner
	screenshotQueue []string

	debug    bool
	debugOut io.Writer
	frame    uint64
}

// NewScene creates a scene with no viewport. Nothing is drawn until the
// first Resize with a positive size.
func NewScene(cfg SceneConfig) *Scene {
	s := &Scene{
		CullEnabled:      true,
		StarOpacity:      cfg.StarOpacity,
		ScreenshotDir:    "screenshots",
		starCfg:          cfg.Stars,
		targetCfg:        cfg.Target,
		palette:          cfg.Palette,
		rng:              cfg.Rand,
		keyPanFraction:   cfg.KeyPanFraction,
		keyPanDuration:   cfg.KeyPanDuration,
		wheelStep:        cfg.WheelStep,
		commands:         make([]RenderCommand, 0, 2048),
		captureSupported: true,
		debugOut:         os.Stderr,
	}
	s.gestures = NewClassifier(cfg.Gesture, s)
	s.target = TargetMarker{
		Name:             cfg.Target.Name,
		Link:             cfg.Target.Link,
		ActivationRadius: cfg.Target.ActivationRadius,
	}
	return s
}

// Resize records a new viewport size and device scale factor. When the
// logical size changes the star field and target are regenerated. Returns
// true if regeneration happened. The render loop keeps running; the next
// frame reads the new field.
func (s *Scene) Resize(width, height, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.viewport.Scale = scale
	if s.measured && width == s.viewport.Width && height == s.viewport.Height {
		return false
	}
	s.measured = true
	s.viewport.Width = width
	s.viewport.Height = height
	s.Regenerate()
	return true
}

// Regenerate replaces the star field and repositions the target for the
// current viewport.
func (s *Scene) Regenerate() {
	s.field = GenerateField(s.viewport.Width, s.viewport.Height, s.rng, s.starCfg, s.targetCfg)
	if s.field.Width > 0 {
		s.target.Pos = s.field.Target
		s.target.placed = true
	} else {
		s.target.placed = false
	}
	if s.debug {
		_, _ = fmt.Fprintf(s.debugOut, "[starfield] regenerate: viewport %.0fx%.0f@%.2f | stars %d | lines %d | target (%.1f, %.1f)\n",
			s.viewport.Width, s.viewport.Height, s.viewport.Scale,
			len(s.field.Stars), len(s.field.Lines), s.target.Pos.X, s.target.Pos.Y)
	}
}

// Viewport returns the last measured viewport.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// PanoramaWidth returns the panorama width for the current viewport. It is
// derived on every call so a stale width never survives a resize.
func (s *Scene) PanoramaWidth() float64 {
	return PanoramaWidth(s.viewport.Width)
}

// Stars returns the current stars. The returned slice MUST NOT be mutated.
func (s *Scene) Stars() []Star {
	return s.field.Stars
}

// Lines returns the current constellation lines.
func (s *Scene) Lines() []ConstellationLine {
	return s.field.Lines
}

// Target returns a snapshot of the target marker.
func (s *Scene) Target() TargetMarker {
	return s.target
}

// Pan returns the pan offset normalized into [0, PanoramaWidth).
func (s *Scene) Pan() float64 {
	return s.pan.Offset(s.PanoramaWidth())
}

// SetPan moves the panorama to x, wrapped into range.
func (s *Scene) SetPan(x float64) {
	s.pan.Set(x, s.PanoramaWidth())
}

// ScrollBy shifts the pan by dx. It is the entry point for hosts that mirror
// a native scroll position instead of relying on drag math.
func (s *Scene) ScrollBy(dx float64) {
	s.pan.ScrollBy(dx, s.PanoramaWidth())
}

// GlideBy eases the pan by dx over duration seconds.
func (s *Scene) GlideBy(dx float64, duration float32) {
	s.pan.GlideBy(dx, duration, ease.OutCubic)
}

// Gesture returns the current gesture state.
func (s *Scene) Gesture() GestureState {
	return s.gestures.State()
}

// LastIntent returns the intent the most recent gesture resolved to.
func (s *Scene) LastIntent() Intent {
	return s.gestures.LastIntent()
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetLinkOpener sets the side effect used when the target is tapped.
func (s *Scene) SetLinkOpener(o LinkOpener) {
	s.opener = o
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetPointerCaptureSupported tells the scene whether the host can give a
// drag exclusive use of a pointer. When false, drags run uncaptured.
func (s *Scene) SetPointerCaptureSupported(ok bool) {
	s.captureSupported = ok
}

// SetLiveInput enables polling of real mouse, touch, wheel and keyboard
// input each Update. Run enables it; tests leave it off and inject events.
func (s *Scene) SetLiveInput(enabled bool) {
	s.live = enabled
}

// SetDebugMode enables or disables debug mode. When enabled, regeneration,
// gesture transitions and per-frame timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// CapturePointer implements PointerCapturer. While captured, the live input
// poller keeps routing the pointer to the gesture after it leaves the window.
func (s *Scene) CapturePointer(pointerID int) bool {
	if !s.captureSupported || pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	s.captured[pointerID] = true
	return true
}

// ReleasePointer implements PointerCapturer.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = false
	}
}

// PointerCaptured reports whether pointerID is captured.
func (s *Scene) PointerCaptured(pointerID int) bool {
	return pointerID >= 0 && pointerID < maxPointers && s.captured[pointerID]
}

// Update processes one frame of input and advances animations.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.pan.update(dt, s.PanoramaWidth())
	s.target.hover.update(dt)
	s.frame++
}

// Draw clears target and renders the scene at the current pan offset.
func (s *Scene) Draw(target *ebiten.Image) {
	target.Fill(s.palette.Background)

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.emitFrame()

	if s.debug {
		stats.emitTime = time.Since(t0)
		t0 = time.Now()
	}

	s.submit(target)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		stats.starCount = len(s.field.Stars)
		stats.lineCount = len(s.field.Lines)
		stats.byType = countCommands(s.commands)
		s.debugLog(stats)
	}

	s.flushScreenshots(target)
}

// processInput feeds at most one injected event per frame, falling back to
// live input when the queue is empty.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.live {
		s.input.poll(s)
	}
}

// HandlePointer runs one pointer event through hover tracking and the
// gesture classifier. Hosts that deliver their own events call it directly.
func (s *Scene) HandlePointer(ev PointerEvent) {
	width := s.PanoramaWidth()
	pan := s.pan.Offset(width)

	if ev.Kind == PointerHover {
		s.updateHover(ev.X, ev.Y)
		return
	}
	if ev.Kind == PointerDown && !s.gestures.Active() {
		s.pan.Stop()
		s.updateHover(ev.X, ev.Y)
		s.emitInteractionEvent(EventPointerDown, ev, pan, false)
	}

	out := s.gestures.Handle(ev, pan, width)

	if out.IntentChanged() {
		s.onIntentChange(ev, out, pan)
	}
	if out.Panned {
		s.pan.Set(out.Pan, width)
		s.firePan(ev, out.Pan)
	}
	if out.Ended {
		s.onGestureEnd(ev, out)
	}
	if out.Tap {
		s.tap(out.X, out.Y, ev.PointerID)
	}
}

func (s *Scene) onIntentChange(ev PointerEvent, out GestureOutcome, pan float64) {
	if s.debug {
		_, _ = fmt.Fprintf(s.debugOut, "[starfield] gesture %d: %s -> %s at (%.1f, %.1f)\n",
			ev.PointerID, out.From, out.To, ev.X, ev.Y)
	}
	for _, h := range slices.Clone(s.handlers.intent) {
		h.fn(IntentContext{From: out.From, To: out.To, PointerID: ev.PointerID})
	}
	switch out.To {
	case IntentHorizontal:
		s.emitInteractionEvent(EventPanStart, ev, pan, false)
	case IntentVertical:
		s.emitInteractionEvent(EventScrollYield, ev, pan, false)
	}
}

func (s *Scene) onGestureEnd(ev PointerEvent, out GestureOutcome) {
	pan := s.Pan()
	if out.From == IntentHorizontal {
		s.emitInteractionEvent(EventPanEnd, ev, pan, false)
	}
	switch ev.Kind {
	case PointerUp:
		s.emitInteractionEvent(EventPointerUp, ev, pan, false)
		if ev.PointerID == 0 {
			s.updateHover(ev.X, ev.Y)
		} else {
			s.setHover(false)
		}
	case PointerCancel:
		s.emitInteractionEvent(EventPointerCancel, ev, pan, false)
		s.setHover(false)
	case PointerLeave:
		s.emitInteractionEvent(EventPointerLeave, ev, pan, false)
		s.setHover(false)
	}
}

func (s *Scene) firePan(ev PointerEvent, pan float64) {
	ctx := PanContext{Pan: pan, DeltaX: ev.X - s.gestures.state.StartX, PointerID: ev.PointerID}
	for _, h := range slices.Clone(s.handlers.pan) {
		h.fn(ctx)
	}
	s.emitInteractionEvent(EventPan, ev, pan, false)
}

// tap resolves a qualifying release against the target and opens the link
// on a hit.
func (s *Scene) tap(x, y float64, pointerID int) {
	width := s.PanoramaWidth()
	pan := s.pan.Offset(width)
	hit := s.target.HitScreen(x, y, pan, width)
	wx, wy := ScreenToWorld(x, y, pan, width)

	ctx := TapContext{X: x, Y: y, WorldX: wx, WorldY: wy, Hit: hit, PointerID: pointerID}
	for _, h := range slices.Clone(s.handlers.tap) {
		h.fn(ctx)
	}
	ev := PointerEvent{Kind: PointerUp, X: x, Y: y, PointerID: pointerID}
	s.emitInteractionEvent(EventTap, ev, pan, hit)
	if hit {
		s.openLink(ev, pan)
	}
}

func (s *Scene) openLink(ev PointerEvent, pan float64) {
	link := s.target.Link
	if s.debug {
		_, _ = fmt.Fprintf(s.debugOut, "[starfield] open link %q\n", link)
	}
	if s.opener != nil && link != "" {
		if err := s.opener.OpenLink(link); err != nil {
			_, _ = fmt.Fprintf(s.debugOut, "[starfield] open link %q: %v\n", link, err)
		}
	}
	s.emitInteractionEvent(EventLinkOpen, ev, pan, true)
}

// updateHover sets the target hover state from a screen position.
func (s *Scene) updateHover(x, y float64) {
	width := s.PanoramaWidth()
	s.setHover(s.target.HitScreen(x, y, s.pan.Offset(width), width))
}

func (s *Scene) setHover(hover bool) {
	if hover == s.target.Hover {
		return
	}
	s.target.Hover = hover
	goal := 1.0
	if hover {
		goal = s.targetCfg.HoverScale
	}
	s.target.hover.retarget(goal, s.targetCfg.HoverDuration)

	for _, h := range slices.Clone(s.handlers.hover) {
		h.fn(HoverContext{Hover: hover})
	}
	typ := EventTargetLeave
	if hover {
		typ = EventTargetEnter
	}
	s.emitInteractionEvent(typ, PointerEvent{X: s.target.Pos.X, Y: s.target.Pos.Y}, s.Pan(), hover)
}

// keyPan glides the panorama by a fraction of the viewport in direction dir.
func (s *Scene) keyPan(dir float64) {
	if s.viewport.Width <= 0 || s.gestures.Active() {
		return
	}
	s.GlideBy(dir*s.viewport.Width*s.keyPanFraction, s.keyPanDuration)
}
