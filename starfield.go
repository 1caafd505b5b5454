package starfield

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs in RGBA, which makes Color usable anywhere a
// color.Color is accepted.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color, returning premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	a = uint32(ca * 0xffff)
	r = uint32(clamp01(c.R) * ca * 0xffff)
	g = uint32(clamp01(c.G) * ca * 0xffff)
	b = uint32(clamp01(c.B) * ca * 0xffff)
	return
}

// WithAlpha returns c with its alpha multiplied by k.
func (c Color) WithAlpha(k float64) Color {
	c.A *= k
	return c
}

// RGBA8 builds a Color from 8-bit channels and a [0, 1] alpha, mirroring the
// CSS rgba() notation the palette defaults are written in.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the half-open
// rectangle [X, X+Width) x [Y, Y+Height).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Range is a half-open [Min, Max) interval used for random star attributes.
type Range struct {
	Min, Max float64
}

// Lerp maps t in [0, 1) onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventPointerDown   EventType = iota // a gesture began
	EventPointerUp                      // the gesture pointer was released
	EventPointerCancel                  // the platform cancelled the pointer
	EventPointerLeave                   // the pointer left the surface mid-gesture
	EventPanStart                       // intent resolved to horizontal
	EventPan                            // pan offset changed during a drag
	EventPanEnd                         // a horizontal drag finished
	EventScrollYield                    // intent resolved to vertical; gesture abandoned
	EventTap                            // a release qualified as a tap
	EventTargetEnter                    // the pointer started hovering the target
	EventTargetLeave                    // the pointer stopped hovering the target
	EventLinkOpen                       // the target link was opened
)

var eventNames = [...]string{
	"pointer-down", "pointer-up", "pointer-cancel", "pointer-leave",
	"pan-start", "pan", "pan-end", "scroll-yield",
	"tap", "target-enter", "target-leave", "link-open",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// PointerKind identifies a raw pointer event fed to the gesture classifier.
type PointerKind uint8

const (
	PointerDown   PointerKind = iota // button pressed or touch began
	PointerMove                      // moved with the button held
	PointerUp                        // button released or touch ended
	PointerCancel                    // platform cancelled the pointer (focus lost)
	PointerLeave                     // left the surface without capture
	PointerHover                     // moved with no button held
)

// PointerEvent is a single pointer sample in screen (client) coordinates.
type PointerEvent struct {
	Kind      PointerKind
	X, Y      float64
	PointerID int
}
