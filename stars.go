package starfield

import "math/rand/v2"

// RandSource supplies uniform values in [0, 1). *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded generator or a fixed sequence.
type RandSource interface {
	Float64() float64
}

// globalRand draws from the unseeded math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Star is a single background point in panorama space. Stars are immutable;
// a resize replaces the whole set.
type Star struct {
	Pos     Vec2
	Radius  float64
	Opacity float64
}

// ConstellationLine is a polyline through 3 or 4 stars that were generated
// consecutively. Grouping is by index, not proximity.
type ConstellationLine struct {
	Stars []Star
}

// StarConfig controls star density and appearance ranges.
type StarConfig struct {
	// NarrowThreshold is the viewport width below which NarrowCount stars are
	// generated instead of WideCount.
	NarrowThreshold float64
	NarrowCount     int
	WideCount       int

	// GroupStride is the index distance between constellation anchors and
	// GroupSize the maximum number of stars per constellation.
	GroupStride int
	GroupSize   int

	Radius  Range
	Opacity Range
}

// DefaultStarConfig returns the stock density: 170 stars on narrow
// viewports, 250 otherwise, a constellation every 12 stars.
func DefaultStarConfig() StarConfig {
	return StarConfig{
		NarrowThreshold: 520,
		NarrowCount:     170,
		WideCount:       250,
		GroupStride:     12,
		GroupSize:       4,
		Radius:          Range{0.4, 1.6},
		Opacity:         Range{0.35, 0.9},
	}
}

// StarCount returns how many stars a viewport of the given width gets.
func (c StarConfig) StarCount(viewportW float64) int {
	if viewportW < c.NarrowThreshold {
		return c.NarrowCount
	}
	return c.WideCount
}

// minConstellationLen is the smallest group that is drawn. Two-star groups
// are dropped.
const minConstellationLen = 3

// Field is one generation of the scene's static content.
type Field struct {
	Stars  []Star
	Lines  []ConstellationLine
	Target Vec2

	// Width and Height are the panorama dimensions the field was generated for.
	Width, Height float64
}

// Empty reports whether the field has no stars (not yet measured, or a
// zero-sized viewport).
func (f *Field) Empty() bool {
	return len(f.Stars) == 0
}

// GenerateField builds a new star set for a viewport of vw x vh, spread over
// a panorama three viewports wide, plus the clamped target position. A
// non-positive viewport yields an empty field. If rng is nil the unseeded
// global source is used.
func GenerateField(vw, vh float64, rng RandSource, stars StarConfig, target TargetConfig) Field {
	if vw <= 0 || vh <= 0 {
		return Field{}
	}
	if rng == nil {
		rng = globalRand{}
	}

	pw := PanoramaWidth(vw)
	n := stars.StarCount(vw)
	f := Field{
		Stars:  make([]Star, 0, n),
		Width:  pw,
		Height: vh,
	}
	for i := 0; i < n; i++ {
		x := rng.Float64() * pw
		y := rng.Float64() * vh
		f.Stars = append(f.Stars, Star{
			Pos:     Vec2{x, y},
			Radius:  stars.Radius.Lerp(rng.Float64()),
			Opacity: stars.Opacity.Lerp(rng.Float64()),
		})
	}
	f.Lines = groupConstellations(f.Stars, stars.GroupStride, stars.GroupSize)
	f.Target = target.Place(vw, vh)
	return f
}

// groupConstellations anchors a group at every stride-th star and appends up
// to size-1 following stars. Groups shorter than minConstellationLen are
// dropped.
func groupConstellations(stars []Star, stride, size int) []ConstellationLine {
	if stride <= 0 || size < minConstellationLen {
		return nil
	}
	lines := make([]ConstellationLine, 0, len(stars)/stride+1)
	for i := 0; i < len(stars); i += stride {
		end := min(i+size, len(stars))
		if end-i < minConstellationLen {
			continue
		}
		lines = append(lines, ConstellationLine{Stars: stars[i:end:end]})
	}
	return lines
}
