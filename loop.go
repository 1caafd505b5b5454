package starfield

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
)

// Loop drives a Scene one frame at a time until its context is done. The
// window host calls Step from ebiten.Game.Update; tests call it directly.
type Loop struct {
	ctx    context.Context
	scene  *Scene
	frames uint64

	// OnUpdate runs after the scene has advanced each frame. A non-nil
	// error stops the loop and is returned from Step.
	OnUpdate func() error
}

// NewLoop creates a loop for scene. A nil ctx never cancels.
func NewLoop(ctx context.Context, scene *Scene) *Loop {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Loop{ctx: ctx, scene: scene}
}

// Scene returns the scene this loop drives.
func (l *Loop) Scene() *Scene {
	return l.scene
}

// Step advances the scene by one frame. Once the context is done it
// releases any active gesture and returns ebiten.Termination without
// touching the scene again.
func (l *Loop) Step() error {
	if l.ctx.Err() != nil {
		l.stop()
		return ebiten.Termination
	}
	l.scene.Update()
	l.frames++
	if l.OnUpdate != nil {
		if err := l.OnUpdate(); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns the number of frames Step has advanced.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Done reports whether the loop's context has been cancelled.
func (l *Loop) Done() bool {
	return l.ctx.Err() != nil
}

// stop cancels an in-flight gesture so capture is released on shutdown.
func (l *Loop) stop() {
	st := l.scene.Gesture()
	if st.Intent == IntentIdle {
		return
	}
	l.scene.HandlePointer(PointerEvent{Kind: PointerCancel, X: st.StartX, Y: st.StartY, PointerID: st.PointerID})
}
