// Package starfield is an interactive, horizontally panning night sky for
// [Ebitengine].
//
// A [Scene] owns a procedurally generated star field three viewports wide,
// the constellation lines linking groups of stars, and a single target star
// that opens an external link when tapped. The panorama wraps seamlessly:
// it is drawn at tile offsets -W, 0 and +W around the current pan offset.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := starfield.NewScene(starfield.DefaultSceneConfig())
//	scene.SetLinkOpener(starfield.LinkOpenerFunc(openBrowser))
//	starfield.Run(scene, starfield.RunConfig{
//		Title: "Starfield", Width: 960, Height: 600,
//	})
//
// For full control, drive a [Loop] from your own [ebiten.Game]:
//
//	loop := starfield.NewLoop(ctx, scene)
//
//	func (g *Game) Update() error        { return g.loop.Step() }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//
// and call [Scene.Resize] from Layout with the logical size and device
// scale factor.
//
// # Gestures
//
// Pointer input is classified per gesture. A drag becomes horizontal once it
// travels more than 6 px sideways and clearly dominates the vertical, at
// which point the pointer is captured and the pan follows the finger. A drag
// that goes vertical first is abandoned so the host page can scroll. A
// release that never moved more than 4 px is a tap; a tap within 26 px of
// the target opens its link exactly once.
//
// Hosts that deliver their own events call [Scene.HandlePointer]. Tests
// inject them with [Scene.InjectPress], [Scene.InjectDrag] and friends, or
// run a JSON script through [LoadTestScript].
//
// # Rendering
//
// Each Draw emits [RenderCommand] values (lines, glows, discs and rings) in
// layer order and then submits them with ebiten/v2/vector and a cached
// radial-gradient texture. [Scene.EmitFrame] exposes the emitted commands
// without an Ebitengine context.
//
// # ECS
//
// Interaction events can be forwarded to a [Donburi] world with the
// adapter in starfield/ecs via [Scene.SetEntityStore].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package starfield
