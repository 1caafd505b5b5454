package starfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// hoverAnim eases the target marker's radius multiplier between 1 and the
// configured hover scale. The zero value rests at 1.
type hoverAnim struct {
	tween   *gween.Tween
	current float64
	goal    float64
}

func (h *hoverAnim) value() float64 {
	if h.current == 0 {
		return 1
	}
	return h.current
}

// retarget starts easing toward goal over duration seconds. A non-positive
// duration snaps immediately.
func (h *hoverAnim) retarget(goal float64, duration float32) {
	if goal == h.value() && h.tween == nil {
		h.goal = goal
		return
	}
	if goal == h.goal && h.tween != nil {
		return
	}
	h.goal = goal
	if duration <= 0 {
		h.tween = nil
		h.current = goal
		return
	}
	h.tween = gween.New(float32(h.value()), float32(goal), duration, ease.OutQuad)
}

// update advances the tween by dt seconds.
func (h *hoverAnim) update(dt float32) {
	if h.tween == nil {
		return
	}
	val, done := h.tween.Update(dt)
	h.current = float64(val)
	if done {
		h.current = h.goal
		h.tween = nil
	}
}
