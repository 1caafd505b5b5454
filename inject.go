package starfield

// Injected events use screen coordinates, exactly like live input, and are
// consumed one per frame by Update. While the queue is non-empty live input
// is skipped.

func (s *Scene) inject(kind PointerKind, x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerEvent{Kind: kind, X: x, Y: y})
}

// InjectPress queues a pointer-down at the given screen coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(PointerDown, x, y)
}

// InjectMove queues a pointer-move with the button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(PointerMove, x, y)
}

// InjectRelease queues a pointer-up.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(PointerUp, x, y)
}

// InjectCancel queues a platform pointer cancel.
func (s *Scene) InjectCancel(x, y float64) {
	s.inject(PointerCancel, x, y)
}

// InjectLeave queues the pointer leaving the surface.
func (s *Scene) InjectLeave(x, y float64) {
	s.inject(PointerLeave, x, y)
}

// InjectHover queues a move with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(PointerHover, x, y)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through HandlePointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.HandlePointer(evt)
	return true
}
