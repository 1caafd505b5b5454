package starfield

import "math"

// HitCircle is a circular hit area. Unlike a render bound, a point exactly on
// the circumference is outside.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c HitCircle) Contains(x, y float64) bool {
	return IsHit(x, y, c.CenterX, c.CenterY, c.Radius)
}

// IsHit reports whether (wx, wy) is strictly closer than radius to
// (tx, ty) by straight-line distance.
func IsHit(wx, wy, tx, ty, radius float64) bool {
	return math.Hypot(wx-tx, wy-ty) < radius
}

// TargetConfig describes the special clickable star. Placement values are in
// panorama space; the visual radii are independent of ActivationRadius.
type TargetConfig struct {
	Name string
	Link string

	// X is the preferred horizontal position and YRatio the vertical position
	// as a fraction of viewport height. Both are clamped by Margin.
	X      float64
	YRatio float64
	Margin float64

	ActivationRadius float64

	GlowRadius    float64 // radius of the filled glow disc
	GlowGradient  float64 // radius at which the glow gradient reaches zero
	RingRadius    float64
	RingWidth     float64
	CoreRadius    float64
	HoverScale    float64 // multiplier applied to all three radii on hover
	HoverDuration float32 // seconds to ease into or out of HoverScale; 0 snaps
}

// DefaultTargetConfig returns the stock birthday-star placement and sizes.
func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		Name:             "December 7, 2008 · Birthday Star",
		Link:             "https://mybirthdaystar.pages.dev",
		X:                620,
		YRatio:           0.35,
		Margin:           80,
		ActivationRadius: 26,
		GlowRadius:       24,
		GlowGradient:     28,
		RingRadius:       15,
		RingWidth:        1.2,
		CoreRadius:       3.8,
		HoverScale:       1.1,
	}
}

// Place returns the target position for a viewport of vw x vh, clamped so it
// stays at least Margin from every panorama edge. When the space is narrower
// than two margins the position collapses to the center of that axis.
func (c TargetConfig) Place(vw, vh float64) Vec2 {
	pw := PanoramaWidth(vw)
	return Vec2{
		X: clampMargin(c.X, c.Margin, pw),
		Y: clampMargin(vh*c.YRatio, c.Margin, vh),
	}
}

func clampMargin(v, margin, extent float64) float64 {
	lo, hi := margin, extent-margin
	if lo > hi {
		return extent / 2
	}
	return math.Max(lo, math.Min(v, hi))
}

// TargetMarker is the live state of the special star.
type TargetMarker struct {
	Name             string
	Link             string
	Pos              Vec2
	ActivationRadius float64

	// Hover is true while a pointer rests over the activation area.
	Hover bool

	// placed is false until the first non-empty field positions the marker.
	placed bool
	hover  hoverAnim
}

// Placed reports whether the marker has a valid position.
func (t TargetMarker) Placed() bool {
	return t.placed
}

// HitWorld reports whether a panorama-space point activates the marker.
func (t TargetMarker) HitWorld(wx, wy float64) bool {
	if !t.placed {
		return false
	}
	return t.HitArea().Contains(wx, wy)
}

// HitArea returns the activation circle in panorama space.
func (t TargetMarker) HitArea() HitCircle {
	return HitCircle{CenterX: t.Pos.X, CenterY: t.Pos.Y, Radius: t.ActivationRadius}
}

// HitScreen reports whether a screen-space point activates the marker at the
// given pan offset and panorama width.
func (t TargetMarker) HitScreen(sx, sy, pan, width float64) bool {
	if width <= 0 {
		return false
	}
	wx, wy := ScreenToWorld(sx, sy, pan, width)
	return t.HitWorld(wx, wy)
}

// Scale returns the current radius multiplier. With a zero HoverDuration it
// is the hover scale whenever Hover is set; otherwise it eases toward it.
func (t TargetMarker) Scale() float64 {
	return t.hover.value()
}
