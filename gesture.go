package starfield

import "math"

// Intent is the classifier's interpretation of the gesture in progress.
type Intent uint8

const (
	IntentIdle         Intent = iota // no pointer down
	IntentUndetermined               // pointer down, direction not yet known
	IntentHorizontal                 // panning the panorama
	IntentVertical                   // yielded to native vertical scroll
)

func (i Intent) String() string {
	switch i {
	case IntentIdle:
		return "idle"
	case IntentUndetermined:
		return "undetermined"
	case IntentHorizontal:
		return "horizontal"
	case IntentVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// GestureConfig holds the thresholds used to classify a gesture.
type GestureConfig struct {
	// HorizontalThreshold is the |dx| that must be exceeded before a gesture
	// can become a pan, and DominanceMargin how much |dx| must exceed |dy|.
	HorizontalThreshold float64
	DominanceMargin     float64

	// VerticalThreshold is the |dy| that must be exceeded, with |dy| > |dx|,
	// before the gesture yields to vertical scrolling.
	VerticalThreshold float64

	// TapSlop is the displacement beyond which a release is no longer a tap.
	TapSlop float64
}

// DefaultGestureConfig returns thresholds tuned for mouse and touch.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		HorizontalThreshold: 6,
		DominanceMargin:     4,
		VerticalThreshold:   10,
		TapSlop:             4,
	}
}

// PointerCapturer gives a horizontal drag exclusive use of a pointer.
// CapturePointer returns false when the host cannot capture; the gesture
// then continues uncaptured.
type PointerCapturer interface {
	CapturePointer(pointerID int) bool
	ReleasePointer(pointerID int)
}

// GestureState is the transient per-gesture record.
type GestureState struct {
	Dragging  bool
	Intent    Intent
	PointerID int
	StartX    float64
	StartY    float64
	StartPan  float64
	HasMoved  bool

	captured bool
}

// GestureOutcome reports what a single pointer event did.
type GestureOutcome struct {
	// Pan is the new normalized pan offset; valid when Panned is true.
	Pan    float64
	Panned bool

	// Tap is true when a release qualified as a tap at (X, Y).
	Tap  bool
	X, Y float64

	// From and To are the intents before and after the event.
	From, To Intent

	// Ended is true when the event finished the gesture (up, cancel, leave).
	Ended bool
}

// IntentChanged reports whether the event moved the state machine.
func (o GestureOutcome) IntentChanged() bool {
	return o.From != o.To
}

// Classifier turns raw pointer events into pan updates and taps. It tracks a
// single pointer at a time; events from other pointers are ignored while a
// gesture is active.
type Classifier struct {
	cfg     GestureConfig
	capture PointerCapturer
	state   GestureState
	last    Intent
}

// NewClassifier creates an idle classifier. capture may be nil.
func NewClassifier(cfg GestureConfig, capture PointerCapturer) *Classifier {
	return &Classifier{cfg: cfg, capture: capture}
}

// State returns a copy of the current gesture state.
func (c *Classifier) State() GestureState {
	return c.state
}

// LastIntent returns the most advanced intent the previous (or current)
// gesture reached, retained after the gesture resets.
func (c *Classifier) LastIntent() Intent {
	return c.last
}

// Captured reports whether the active gesture holds pointer capture.
func (c *Classifier) Captured() bool {
	return c.state.captured
}

// Active reports whether a gesture is in progress.
func (c *Classifier) Active() bool {
	return c.state.Intent != IntentIdle
}

// Handle feeds one pointer event through the state machine. pan is the
// current pan offset and width the panorama width.
func (c *Classifier) Handle(ev PointerEvent, pan, width float64) GestureOutcome {
	out := GestureOutcome{From: c.state.Intent}
	switch ev.Kind {
	case PointerDown:
		c.down(ev, pan)
	case PointerMove:
		if c.owns(ev) {
			c.move(ev, width, &out)
		}
	case PointerUp:
		if c.owns(ev) {
			c.up(ev, &out)
		}
	case PointerCancel, PointerLeave:
		if c.owns(ev) {
			c.abort()
			out.Ended = true
		}
	}
	out.To = c.state.Intent
	return out
}

func (c *Classifier) owns(ev PointerEvent) bool {
	return c.state.Intent != IntentIdle && ev.PointerID == c.state.PointerID
}

func (c *Classifier) down(ev PointerEvent, pan float64) {
	if c.state.Intent != IntentIdle {
		// A second pointer does not restart the gesture.
		return
	}
	c.state = GestureState{
		Dragging:  true,
		Intent:    IntentUndetermined,
		PointerID: ev.PointerID,
		StartX:    ev.X,
		StartY:    ev.Y,
		StartPan:  pan,
	}
	c.last = IntentUndetermined
}

func (c *Classifier) move(ev PointerEvent, width float64, out *GestureOutcome) {
	st := &c.state
	if !st.Dragging {
		// Vertical gestures are abandoned; keep ignoring moves until release.
		return
	}

	dx := ev.X - st.StartX
	dy := ev.Y - st.StartY
	if math.Hypot(dx, dy) > c.cfg.TapSlop {
		st.HasMoved = true
	}

	if st.Intent == IntentUndetermined {
		ax, ay := math.Abs(dx), math.Abs(dy)
		switch {
		case ax > c.cfg.HorizontalThreshold && ax > ay+c.cfg.DominanceMargin:
			st.Intent = IntentHorizontal
			c.last = IntentHorizontal
			if c.capture != nil {
				st.captured = c.capture.CapturePointer(st.PointerID)
			}
		case ay > c.cfg.VerticalThreshold && ay > ax:
			st.Intent = IntentVertical
			st.Dragging = false
			c.last = IntentVertical
			return
		default:
			return
		}
	}

	if st.Intent == IntentHorizontal && width > 0 {
		out.Pan = Normalize(st.StartPan-dx, width)
		out.Panned = true
	}
}

func (c *Classifier) up(ev PointerEvent, out *GestureOutcome) {
	st := c.state
	c.abort()
	out.Ended = true
	if st.HasMoved || st.Intent == IntentVertical {
		return
	}
	out.Tap = true
	out.X, out.Y = ev.X, ev.Y
}

// abort releases any capture and returns to idle.
func (c *Classifier) abort() {
	if c.state.captured && c.capture != nil {
		c.capture.ReleasePointer(c.state.PointerID)
	}
	c.state = GestureState{}
}

// Reset abandons any gesture in progress, releasing capture.
func (c *Classifier) Reset() {
	c.abort()
}
