package starfield

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowTextureSize is the edge length of the cached radial-gradient texture.
const glowTextureSize = 128

// glowCache holds one gradient texture per clip ratio (clip radius divided
// by gradient radius). The scene only uses two ratios.
type glowCache struct {
	textures map[float32]*ebiten.Image
}

// texture returns a white radial gradient whose alpha falls linearly from 1
// at the center to 0 at the texture edge, cut off at clip (0, 1].
func (g *glowCache) texture(clip float32) *ebiten.Image {
	if img, ok := g.textures[clip]; ok {
		return img
	}
	if g.textures == nil {
		g.textures = make(map[float32]*ebiten.Image)
	}
	img := ebiten.NewImageFromImage(radialGradient(glowTextureSize, float64(clip)))
	g.textures[clip] = img
	return img
}

// radialGradient renders the gradient into a CPU image. Pixels are
// premultiplied white.
func radialGradient(size int, clip float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := (float64(px) + 0.5 - half) / half
			dy := (float64(py) + 0.5 - half) / half
			d := math.Hypot(dx, dy)
			if d >= clip || d >= 1 {
				continue
			}
			a := uint8((1 - d) * 255)
			img.SetRGBA(px, py, color.RGBA{a, a, a, a})
		}
	}
	return img
}

// submit draws the emitted commands onto target, scaling logical
// coordinates by the device scale factor.
func (s *Scene) submit(target *ebiten.Image) {
	k := s.viewport.Scale
	if k <= 0 {
		k = 1
	}
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandLine:
			s.submitLine(target, cmd, k)
		case CommandGlow:
			s.submitGlow(target, cmd, k)
		case CommandDisc:
			vector.FillCircle(target,
				float32(cmd.X*k), float32(cmd.Y*k), float32(cmd.Radius*k),
				cmd.Color, true)
		case CommandRing:
			vector.StrokeCircle(target,
				float32(cmd.X*k), float32(cmd.Y*k), float32(cmd.Radius*k),
				float32(cmd.Width*k), cmd.Color, true)
		}
	}
}

func (s *Scene) submitLine(target *ebiten.Image, cmd *RenderCommand, k float64) {
	pts := cmd.Points
	w := float32(cmd.Width * k)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1].Pos, pts[i].Pos
		vector.StrokeLine(target,
			float32((a.X+cmd.OffsetX)*k), float32(a.Y*k),
			float32((b.X+cmd.OffsetX)*k), float32(b.Y*k),
			w, cmd.Color, true)
	}
}

func (s *Scene) submitGlow(target *ebiten.Image, cmd *RenderCommand, k float64) {
	if cmd.Gradient <= 0 || cmd.Radius <= 0 {
		return
	}
	clip := float32(math.Min(1, cmd.Radius/cmd.Gradient))
	tex := s.glows.texture(clip)

	var op ebiten.DrawImageOptions
	scale := 2 * cmd.Gradient * k / glowTextureSize
	op.GeoM.Translate(-glowTextureSize/2, -glowTextureSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cmd.X*k, cmd.Y*k)
	c := cmd.Color
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.Filter = ebiten.FilterLinear
	target.DrawImage(tex, &op)
}
