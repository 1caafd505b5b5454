package starfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is rebuilt.
const fpsRefresh = 0.5

// FPSOverlay draws the current FPS and TPS in the top-left corner. The text
// is refreshed about twice a second.
type FPSOverlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

// NewFPSOverlay creates an overlay. The backing image is allocated on first
// Draw so the overlay can be built before the game loop starts.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{since: fpsRefresh}
}

// Update advances the refresh timer by dt seconds.
func (o *FPSOverlay) Update(dt float64) {
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.text = fpsText(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw renders the overlay onto dst.
func (o *FPSOverlay) Draw(dst *ebiten.Image) {
	if o.text == "" {
		return
	}
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	dst.DrawImage(o.img, nil)
}

func fpsText(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
