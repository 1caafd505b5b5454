package starfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PanoramaTiles is how many viewport widths the panorama spans.
const PanoramaTiles = 3

// PanoramaWidth returns the width of panorama space for a viewport width.
func PanoramaWidth(viewportW float64) float64 {
	return PanoramaTiles * viewportW
}

// Normalize wraps pan into [0, width). A non-positive width (viewport not yet
// measured) returns 0 instead of dividing by zero.
func Normalize(pan, width float64) float64 {
	if width <= 0 || math.IsNaN(pan) || math.IsInf(pan, 0) {
		return 0
	}
	v := math.Mod(math.Mod(pan, width)+width, width)
	// Mod can round a tiny negative input up to exactly width.
	if v >= width {
		v = 0
	}
	return v
}

// ScreenToWorld converts a screen point to panorama space for the given pan
// offset, re-wrapping X into [0, width).
func ScreenToWorld(sx, sy, pan, width float64) (wx, wy float64) {
	return Normalize(sx+Normalize(pan, width), width), sy
}

// WorldToScreen converts a panorama point to screen space using the tile
// copy nearest the left edge of the viewport. The returned X may be negative
// or beyond the viewport when the point is not visible.
func WorldToScreen(wx, wy, pan, width float64) (sx, sy float64) {
	if width <= 0 {
		return wx, wy
	}
	sx = Normalize(wx-Normalize(pan, width), width)
	return sx, wy
}

// TileOffsets returns the three horizontal copy offsets rendered each frame
// so that panning never exposes an empty edge.
func TileOffsets(width float64) [3]float64 {
	return [3]float64{-width, 0, width}
}

// Panner owns the horizontal pan offset. X is stored unwrapped between
// writes but every reader goes through Offset, which normalizes it.
type Panner struct {
	X float64

	glide *gween.Tween
}

// Offset returns the pan normalized into [0, width).
func (p *Panner) Offset(width float64) float64 {
	return Normalize(p.X, width)
}

// Set assigns a new pan offset, wrapped into [0, width), and stops any glide.
func (p *Panner) Set(x, width float64) {
	p.glide = nil
	p.X = Normalize(x, width)
}

// ScrollBy moves the pan by dx, the way a passive scroll-position sync would,
// and stops any glide.
func (p *Panner) ScrollBy(dx, width float64) {
	p.Set(p.X+dx, width)
}

// GlideBy animates the pan by dx over duration seconds using easeFn.
// A glide already in progress is replaced, starting from the current X.
func (p *Panner) GlideBy(dx float64, duration float32, easeFn ease.TweenFunc) {
	p.glide = gween.New(float32(p.X), float32(p.X+dx), duration, easeFn)
}

// Gliding reports whether a glide animation is in progress.
func (p *Panner) Gliding() bool {
	return p.glide != nil
}

// Stop cancels any glide in progress, leaving X where it is.
func (p *Panner) Stop() {
	p.glide = nil
}

// update advances the glide tween. Called from Scene.Update.
func (p *Panner) update(dt float32, width float64) {
	if p.glide == nil {
		return
	}
	val, done := p.glide.Update(dt)
	p.X = float64(val)
	if done {
		p.glide = nil
		p.X = Normalize(p.X, width)
	}
}
