package starfield

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool

	// OnUpdate runs once per frame after the scene updates.
	OnUpdate func() error
	// OnDraw runs after the scene has drawn, for overlays.
	OnDraw func(screen *ebiten.Image)
}

// Run opens a window and drives scene until the window is closed. It is
// RunContext with a background context.
func Run(scene *Scene, cfg RunConfig) error {
	return RunContext(context.Background(), scene, cfg)
}

// RunContext opens a window and drives scene until the window is closed or
// ctx is done. Live input polling is enabled on the scene.
func RunContext(ctx context.Context, scene *Scene, cfg RunConfig) error {
	loop := NewLoop(ctx, scene)
	loop.OnUpdate = cfg.OnUpdate
	return loop.Run(cfg)
}

// Run opens a window for the loop's scene. It returns nil when the window
// closes or the loop's context is cancelled.
func (l *Loop) Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	l.scene.SetLiveInput(true)
	g := &game{loop: l, onDraw: cfg.OnDraw}
	if cfg.ShowFPS {
		g.fps = NewFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// game adapts a Loop to ebiten.Game.
type game struct {
	loop   *Loop
	onDraw func(*ebiten.Image)
	fps    *FPSOverlay
}

func (g *game) Update() error {
	if err := g.loop.Step(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.Update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.loop.scene.Draw(screen)
	if g.onDraw != nil {
		g.onDraw(screen)
	}
	if g.fps != nil {
		g.fps.Draw(screen)
	}
}

// Layout is unused: Ebitengine prefers LayoutF when it is implemented.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF sizes the backing image in device pixels and hands the logical
// size to the scene, which regenerates when it changed.
func (g *game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := deviceScale()
	g.loop.scene.Resize(outsideWidth, outsideHeight, scale)
	return outsideWidth * scale, outsideHeight * scale
}

func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	if k := m.DeviceScaleFactor(); k > 0 {
		return k
	}
	return 1
}
