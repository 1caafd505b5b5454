package starfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// touchPointerID is the pointer slot used for the tracked touch. The mouse
// is always pointer 0.
const touchPointerID = 1

// liveInput translates polled Ebitengine input into PointerEvents. Only one
// touch is tracked; additional fingers are ignored until it lifts.
type liveInput struct {
	mouseDown   bool
	mouseX      float64
	mouseY      float64
	mouseSeen   bool
	touchActive bool
	touchID     ebiten.TouchID
	touchX      float64
	touchY      float64
	touchBuf    []ebiten.TouchID
	wasFocused  bool
}

// poll reads one frame of real input and feeds it to the scene.
func (in *liveInput) poll(s *Scene) {
	focused := ebiten.IsFocused()
	if !focused {
		if in.wasFocused {
			in.cancel(s)
		}
		in.wasFocused = false
		return
	}
	in.wasFocused = true

	k := s.viewport.Scale
	if k <= 0 {
		k = 1
	}

	if in.pollTouch(s, k) {
		return
	}
	in.pollMouse(s, k)
	in.pollWheel(s)
	in.pollKeys(s)
}

// cancel aborts whatever the tracked pointers were doing. Losing focus is the
// desktop equivalent of a platform pointer cancel.
func (in *liveInput) cancel(s *Scene) {
	if in.mouseDown {
		s.HandlePointer(PointerEvent{Kind: PointerCancel, X: in.mouseX, Y: in.mouseY, PointerID: 0})
		in.mouseDown = false
	}
	if in.touchActive {
		s.HandlePointer(PointerEvent{Kind: PointerCancel, X: in.touchX, Y: in.touchY, PointerID: touchPointerID})
		in.touchActive = false
	}
}

// pollTouch handles the tracked touch. Returns true while a touch is active
// so the mouse emulation some platforms add is skipped.
func (in *liveInput) pollTouch(s *Scene, k float64) bool {
	if !in.touchActive {
		in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
		if len(in.touchBuf) == 0 {
			return false
		}
		in.touchID = in.touchBuf[0]
		in.touchActive = true
		tx, ty := ebiten.TouchPosition(in.touchID)
		in.touchX, in.touchY = float64(tx)/k, float64(ty)/k
		s.HandlePointer(PointerEvent{Kind: PointerDown, X: in.touchX, Y: in.touchY, PointerID: touchPointerID})
		return true
	}

	if inpututil.IsTouchJustReleased(in.touchID) {
		tx, ty := inpututil.TouchPositionInPreviousTick(in.touchID)
		in.touchX, in.touchY = float64(tx)/k, float64(ty)/k
		in.touchActive = false
		s.HandlePointer(PointerEvent{Kind: PointerUp, X: in.touchX, Y: in.touchY, PointerID: touchPointerID})
		return true
	}

	tx, ty := ebiten.TouchPosition(in.touchID)
	x, y := float64(tx)/k, float64(ty)/k
	if x != in.touchX || y != in.touchY {
		in.touchX, in.touchY = x, y
		s.HandlePointer(PointerEvent{Kind: PointerMove, X: x, Y: y, PointerID: touchPointerID})
	}
	return true
}

func (in *liveInput) pollMouse(s *Scene, k float64) {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/k, float64(cy)/k
	moved := !in.mouseSeen || x != in.mouseX || y != in.mouseY
	in.mouseSeen = true
	in.mouseX, in.mouseY = x, y
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !in.mouseDown:
		in.mouseDown = true
		s.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y, PointerID: 0})
	case !pressed && in.mouseDown:
		in.mouseDown = false
		s.HandlePointer(PointerEvent{Kind: PointerUp, X: x, Y: y, PointerID: 0})
	case pressed && moved:
		if !s.viewportContains(x, y) && !s.PointerCaptured(0) {
			s.HandlePointer(PointerEvent{Kind: PointerLeave, X: x, Y: y, PointerID: 0})
			return
		}
		s.HandlePointer(PointerEvent{Kind: PointerMove, X: x, Y: y, PointerID: 0})
	case !pressed && moved:
		s.HandlePointer(PointerEvent{Kind: PointerHover, X: x, Y: y, PointerID: 0})
	}
}

// pollWheel mirrors horizontal wheel travel (or shift + vertical wheel) into
// the pan offset.
func (in *liveInput) pollWheel(s *Scene) {
	xoff, yoff := ebiten.Wheel()
	dx := xoff
	if dx == 0 && ebiten.IsKeyPressed(ebiten.KeyShift) {
		dx = yoff
	}
	if dx != 0 && !s.gestures.Active() {
		s.ScrollBy(-dx * s.wheelStep)
	}
}

func (in *liveInput) pollKeys(s *Scene) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.keyPan(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.keyPan(1)
	}
}

// viewportContains reports whether a logical screen point is on the surface.
func (s *Scene) viewportContains(x, y float64) bool {
	return Rect{Width: s.viewport.Width, Height: s.viewport.Height}.Contains(x, y)
}
