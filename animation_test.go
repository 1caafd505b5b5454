package starfield

import "testing"

func TestHoverAnim_ZeroValue(t *testing.T) {
	var h hoverAnim
	if h.value() != 1 {
		t.Errorf("value = %v, want 1", h.value())
	}
	h.update(1)
	if h.value() != 1 {
		t.Errorf("value after idle update = %v, want 1", h.value())
	}
}

func TestHoverAnim_EasesToGoal(t *testing.T) {
	var h hoverAnim
	h.retarget(1.1, 0.12)

	prev := h.value()
	for i := 0; i < 3; i++ {
		h.update(1.0 / 60)
		if h.value() < prev {
			t.Fatalf("step %d: value went down %v -> %v", i, prev, h.value())
		}
		prev = h.value()
	}
	if h.value() <= 1 || h.value() >= 1.1 {
		t.Errorf("mid-tween value = %v, want in (1, 1.1)", h.value())
	}
	for i := 0; i < 30; i++ {
		h.update(1.0 / 60)
	}
	if h.value() != 1.1 {
		t.Errorf("value = %v, want 1.1", h.value())
	}
	if h.tween != nil {
		t.Error("tween should be cleared when done")
	}
}

func TestHoverAnim_Reverse(t *testing.T) {
	var h hoverAnim
	h.retarget(1.1, 0)
	if h.value() != 1.1 {
		t.Fatalf("snap value = %v, want 1.1", h.value())
	}
	h.retarget(1, 0.12)
	for i := 0; i < 30; i++ {
		h.update(1.0 / 60)
	}
	if h.value() != 1 {
		t.Errorf("value = %v, want 1", h.value())
	}
}

func TestHoverAnim_SameGoalKeepsTween(t *testing.T) {
	var h hoverAnim
	h.retarget(1.1, 0.12)
	tw := h.tween
	h.update(1.0 / 60)
	h.retarget(1.1, 0.12)
	if h.tween != tw {
		t.Error("retargeting to the same goal should not restart the tween")
	}
}

func TestHoverAnim_AlreadyAtGoal(t *testing.T) {
	var h hoverAnim
	h.retarget(1, 0.12)
	if h.tween != nil {
		t.Error("no tween needed when already at the goal")
	}
}
