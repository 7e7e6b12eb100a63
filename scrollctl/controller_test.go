package scrollctl

import (
	"testing"
	"time"

	"github.com/vlist-engine/vlist/sizecache"
)

func newTestCache(t *testing.T, height float32, n int) sizecache.Cache {
	t.Helper()
	c, err := sizecache.NewUniform(height, n)
	if err != nil {
		t.Fatalf("NewUniform: %v", err)
	}
	return c
}

// scrollToIndex(50, "center") on a 100-item list of height-40 rows with a
// 600px... actually a 400px? No: scrollToIndex target = offset(50) -
// (containerSize - size(50))/2 = 2000 - (600-40)/2 = 2000 - 280 = 1720.
func TestScrollToIndexCenterAlignment(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	target := c.TargetForIndex(50, AlignCenter)
	want := float32(1720)
	if target != want {
		t.Errorf("TargetForIndex(50, center) = %v, want %v", target, want)
	}
}

func TestScrollToIndexStartAlignment(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	target := c.TargetForIndex(10, AlignStart)
	if want := cache.Offset(10); target != want {
		t.Errorf("TargetForIndex(10, start) = %v, want %v", target, want)
	}
}

func TestScrollToIndexEndAlignment(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	target := c.TargetForIndex(60, AlignEnd)
	want := cache.Offset(60) - 600 + cache.Size(60)
	if target != want {
		t.Errorf("TargetForIndex(60, end) = %v, want %v", target, want)
	}
}

func TestTargetClampsToValidRange(t *testing.T) {
	cache := newTestCache(t, 40, 10) // total 400px
	c := NewController(cache, 600, 0)
	target := c.TargetForIndex(9, AlignEnd)
	if target != 0 {
		t.Errorf("target = %v, want 0 (container larger than content)", target)
	}
}

func TestScrollToIndexJumpIsImmediate(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	at := time.Unix(0, 0)
	c.ScrollToIndex(50, AlignCenter, 0, at)
	if c.Position() != 1720 {
		t.Errorf("Position() = %v, want 1720", c.Position())
	}
	if c.Animating() {
		t.Error("jump scroll should not leave an animation in flight")
	}
}

func TestScrollToIndexSmoothAnimatesThenSettles(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	start := time.Unix(0, 0)
	c.ScrollToIndex(50, AlignCenter, 300*time.Millisecond, start)
	if !c.Animating() {
		t.Fatal("expected an in-flight animation")
	}
	c.Tick(start.Add(150 * time.Millisecond))
	mid := c.Position()
	if mid <= 0 || mid >= 1720 {
		t.Errorf("mid-animation position = %v, want strictly between 0 and 1720", mid)
	}
	c.Tick(start.Add(301 * time.Millisecond))
	if c.Animating() {
		t.Error("animation should be cleared once complete")
	}
	if c.Position() != 1720 {
		t.Errorf("final position = %v, want exact target 1720", c.Position())
	}
}

func TestConcurrentSetPositionCancelsAnimation(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	start := time.Unix(0, 0)
	c.ScrollToIndex(50, AlignCenter, 300*time.Millisecond, start)
	c.SetPosition(100, start.Add(50*time.Millisecond))
	if c.Animating() {
		t.Error("a user-driven SetPosition should cancel the in-flight animation")
	}
	if c.Position() != 100 {
		t.Errorf("Position() = %v, want 100", c.Position())
	}
	// Ticking after cancellation must be a no-op.
	if advanced := c.Tick(start.Add(400 * time.Millisecond)); advanced {
		t.Error("Tick should report no active animation after cancellation")
	}
}

func TestWrapModeWrapsIndex(t *testing.T) {
	cache := newTestCache(t, 40, 10) // total 400px
	c := NewController(cache, 200, 0)
	c.Wrap = true
	target := c.TargetForIndex(12, AlignStart) // wraps to 2
	want := c.clamp(cache.Offset(2))
	if target != want {
		t.Errorf("wrapped target = %v, want %v", target, want)
	}
	targetNeg := c.TargetForIndex(-1, AlignStart) // wraps to 9
	wantNeg := c.clamp(cache.Offset(9))
	if targetNeg != wantNeg {
		t.Errorf("wrapped negative target = %v, want %v", targetNeg, wantNeg)
	}
}

func TestDirectionTracking(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 0)
	at := time.Unix(0, 0)
	c.SetPosition(100, at)
	if c.Direction() != DirectionDown {
		t.Errorf("Direction() = %v, want down", c.Direction())
	}
	c.SetPosition(50, at.Add(10*time.Millisecond))
	if c.Direction() != DirectionUp {
		t.Errorf("Direction() = %v, want up", c.Direction())
	}
}

func TestAtTopAndAtBottom(t *testing.T) {
	cache := newTestCache(t, 40, 10) // total 400
	c := NewController(cache, 600, 0)
	if !c.AtTop() {
		t.Error("expected AtTop at position 0")
	}
	if !c.AtBottom(0) {
		t.Error("expected AtBottom when container exceeds content")
	}
}

func TestIdleTimeoutClearsScrollingAndVelocity(t *testing.T) {
	cache := newTestCache(t, 40, 100)
	c := NewController(cache, 600, 50*time.Millisecond)
	at := time.Unix(0, 0)
	c.SetPosition(10, at)
	if !c.IsScrolling(at) {
		t.Error("expected IsScrolling immediately after a move")
	}
	later := at.Add(100 * time.Millisecond)
	c.CheckIdle(later)
	if c.IsScrolling(later) {
		t.Error("expected scrolling cleared after idle timeout")
	}
	if v, reliable := c.Velocity(); reliable || v != 0 {
		t.Errorf("Velocity() = (%v, %v), want (0, false) after idle reset", v, reliable)
	}
}

func TestDefaultIdleTimeoutApplied(t *testing.T) {
	cache := newTestCache(t, 40, 10)
	c := NewController(cache, 600, 0)
	if c.IdleTimeout != DefaultIdleTimeout {
		t.Errorf("IdleTimeout = %v, want %v", c.IdleTimeout, DefaultIdleTimeout)
	}
}
