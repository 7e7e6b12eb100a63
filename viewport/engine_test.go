package viewport

import (
	"testing"

	"github.com/vlist-engine/vlist/sizecache"
)

// A 600px main-axis container over 100 items of height 40 with overscan 3,
// scrolled to position 0: the leading edge has nothing to overscan into
// (clamped to 0) while the trailing edge extends past the last fully
// visible row by the partial-row allowance plus the overscan count.
func TestComputeBasicRenderScenario(t *testing.T) {
	cache, err := sizecache.NewUniform(40, 100)
	if err != nil {
		t.Fatalf("NewUniform: %v", err)
	}
	e := NewEngine(cache, 3)
	visible, render := e.Compute(0, 600)
	if visible.Start != 0 {
		t.Errorf("visible.Start = %d, want 0", visible.Start)
	}
	if visible.End != 16 {
		t.Errorf("visible.End = %d, want 16 (15 full rows + 1 partial-row allowance)", visible.End)
	}
	if render.Start != 0 {
		t.Errorf("render.Start = %d, want 0 (leading overscan clamped)", render.Start)
	}
	if render.End != 19 {
		t.Errorf("render.End = %d, want 19 (visible.End + overscan 3)", render.End)
	}
}

func TestComputeEmptyCache(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 0)
	e := NewEngine(cache, 3)
	visible, render := e.Compute(0, 400)
	if !visible.Empty() || !render.Empty() {
		t.Errorf("expected empty ranges for empty cache, got visible=%v render=%v", visible, render)
	}
}

func TestComputeClampsAtEnd(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 10)
	e := NewEngine(cache, 3)
	// Scroll near the very end: visible/render must clamp within [0, 9].
	visible, render := e.Compute(300, 400)
	if visible.End != 9 {
		t.Errorf("visible.End = %d, want 9", visible.End)
	}
	if render.End != 9 || render.Start < 0 {
		t.Errorf("render = %v, want End=9 Start>=0", render)
	}
}

func TestReconcileFirstPassAllEnter(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 100)
	e := NewEngine(cache, 3)
	e.Compute(0, 400)
	diff := e.Reconcile()
	if diff.Unchanged {
		t.Fatal("first reconcile should never be Unchanged")
	}
	if len(diff.Release) != 0 {
		t.Errorf("Release = %v, want empty on first pass", diff.Release)
	}
	wantCount := diff.Range.End - diff.Range.Start + 1
	if len(diff.Enter) != wantCount {
		t.Errorf("Enter has %d entries, want %d", len(diff.Enter), wantCount)
	}
}

func TestReconcileUnchangedOnRepeatedRange(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 100)
	e := NewEngine(cache, 3)
	e.Compute(0, 400)
	e.Reconcile()
	e.Compute(0, 400)
	diff := e.Reconcile()
	if !diff.Unchanged {
		t.Error("expected Unchanged on repeated identical range")
	}
}

func TestReconcileDiffsOnScroll(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 100)
	e := NewEngine(cache, 3)
	e.Compute(0, 400)
	first := e.Reconcile()

	e.Compute(400, 400) // scroll down by 10 rows
	second := e.Reconcile()

	if second.Unchanged {
		t.Fatal("expected a change after scrolling")
	}
	if len(second.Release) == 0 {
		t.Error("expected some indices released after scrolling away")
	}
	if len(second.Enter) == 0 {
		t.Error("expected some indices entering after scrolling forward")
	}
	if len(second.Retained) == 0 {
		t.Error("expected overlap retained between adjacent render ranges")
	}
	_ = first
}

// setItems(20 items) after a render pass of 10 items must report a
// set-size change without resetting the reconciliation identity.
func TestReconcileDetectsTotalChange(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 10)
	e := NewEngine(cache, 3)
	e.Compute(0, 400)
	e.Reconcile()

	if err := cache.Rebuild(20); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	e.Compute(0, 400)
	diff := e.Reconcile()
	if !diff.SetSizeChanged {
		t.Error("expected SetSizeChanged after total grew")
	}
}

func TestResetForcesFreshEnter(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 100)
	e := NewEngine(cache, 3)
	e.Compute(0, 400)
	e.Reconcile()
	e.Reset()
	e.Compute(0, 400)
	diff := e.Reconcile()
	if len(diff.Release) != 0 {
		t.Errorf("Release = %v, want empty after Reset", diff.Release)
	}
	if len(diff.Enter) == 0 {
		t.Error("expected all indices to re-enter after Reset")
	}
}

func TestDefaultOverscanAppliedForNegative(t *testing.T) {
	cache, _ := sizecache.NewUniform(40, 10)
	e := NewEngine(cache, -1)
	if e.Overscan != DefaultOverscan {
		t.Errorf("Overscan = %d, want %d", e.Overscan, DefaultOverscan)
	}
}
