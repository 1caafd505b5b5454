package starfield

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	PointerID int
	// X and Y are screen coordinates.
	X, Y float64
	// WorldX and WorldY are the same point in panorama space.
	WorldX, WorldY float64
	// Pan is the normalized pan offset when the event fired.
	Pan float64
	// Hit is true for taps on the target, link opens, and target-enter.
	Hit bool
}

// TapContext describes a release that qualified as a tap.
type TapContext struct {
	X, Y           float64
	WorldX, WorldY float64
	Hit            bool
	PointerID      int
}

// PanContext describes a pan offset change during a horizontal drag.
type PanContext struct {
	Pan       float64
	DeltaX    float64 // horizontal displacement since pointer down
	PointerID int
}

// HoverContext describes a change in target hover state.
type HoverContext struct {
	Hover bool
}

// IntentContext describes a gesture state transition.
type IntentContext struct {
	From, To  Intent
	PointerID int
}

// --- Handler registry ---

type tapHandler struct {
	id uint32
	fn func(TapContext)
}

type panHandler struct {
	id uint32
	fn func(PanContext)
}

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type intentHandler struct {
	id uint32
	fn func(IntentContext)
}

type handlerRegistry struct {
	tap    []tapHandler
	pan    []panHandler
	hover  []hoverHandler
	intent []intentHandler
	nextID uint32
}

// callbackKind selects the registry slice a CallbackHandle removes from.
type callbackKind uint8

const (
	callbackTap callbackKind = iota
	callbackPan
	callbackHover
	callbackIntent
)

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackTap:
		h.reg.tap = removeHandler(h.reg.tap, func(x tapHandler) bool { return x.id == h.id })
	case callbackPan:
		h.reg.pan = removeHandler(h.reg.pan, func(x panHandler) bool { return x.id == h.id })
	case callbackHover:
		h.reg.hover = removeHandler(h.reg.hover, func(x hoverHandler) bool { return x.id == h.id })
	case callbackIntent:
		h.reg.intent = removeHandler(h.reg.intent, func(x intentHandler) bool { return x.id == h.id })
	}
}

func removeHandler[T any](s []T, match func(T) bool) []T {
	for i := range s {
		if match(s[i]) {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnTap registers a callback for every qualifying tap, hit or miss.
func (s *Scene) OnTap(fn func(TapContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.tap = append(s.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackTap}
}

// OnPan registers a callback for pan offset changes during drags.
func (s *Scene) OnPan(fn func(PanContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pan = append(s.handlers.pan, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackPan}
}

// OnHover registers a callback for target hover changes.
func (s *Scene) OnHover(fn func(HoverContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.hover = append(s.handlers.hover, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackHover}
}

// OnIntent registers a callback for gesture state transitions.
func (s *Scene) OnIntent(fn func(IntentContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.intent = append(s.handlers.intent, intentHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackIntent}
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(typ EventType, ev PointerEvent, pan float64, hit bool) {
	if s.store == nil {
		return
	}
	wx, wy := ScreenToWorld(ev.X, ev.Y, pan, s.PanoramaWidth())
	if typ == EventTargetEnter || typ == EventTargetLeave {
		// Hover events carry the target position, already in panorama space.
		wx, wy = ev.X, ev.Y
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      typ,
		PointerID: ev.PointerID,
		X:         ev.X,
		Y:         ev.Y,
		WorldX:    wx,
		WorldY:    wy,
		Pan:       pan,
		Hit:       hit,
	})
}
