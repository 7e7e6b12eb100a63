package viewport

import "github.com/vlist-engine/vlist/sizecache"

// DefaultOverscan is the number of extra items materialized beyond the
// visible range on each side, absorbing small scrolls without a
// reconciliation pass.
const DefaultOverscan = 3

// Engine computes visible/render ranges against a size cache and
// reconciles a new render range against the previously materialized one.
// It is stateless apart from the three reused Range buffers noted in its
// fields, avoiding a per-frame allocation.
type Engine struct {
	Cache    sizecache.Cache
	Overscan int

	visible     Range
	render      Range
	lastRender  Range
	lastTotal   int
	hasRendered bool
}

// NewEngine constructs an Engine over cache with the given overscan. A
// negative overscan falls back to DefaultOverscan; zero is honored as
// "no overscan".
func NewEngine(cache sizecache.Cache, overscan int) *Engine {
	if overscan < 0 {
		overscan = DefaultOverscan
	}
	return &Engine{Cache: cache, Overscan: overscan}
}

// Compute derives the visible range (items intersecting the viewport) and
// the render range (visible extended by overscan) for the given scroll
// position and container size. Both ranges are clamped to the cache's
// current item count.
func (e *Engine) Compute(scrollPosition, containerSize float32) (visible, render Range) {
	total := e.Cache.Total()
	if total <= 0 {
		e.visible = Range{0, 0}
		e.render = Range{0, 0}
		return e.visible, e.render
	}

	start := e.Cache.IndexAt(scrollPosition)
	end := e.Cache.IndexAt(scrollPosition + containerSize)
	if end < total-1 {
		end++
	}
	e.visible = clampRange(start, end, total)

	e.render = clampRange(e.visible.Start-e.Overscan, e.visible.End+e.Overscan, total)
	return e.visible, e.render
}

// VisibleRange returns the range computed by the most recent Compute call.
func (e *Engine) VisibleRange() Range { return e.visible }

// RenderRange returns the render range computed by the most recent
// Compute call.
func (e *Engine) RenderRange() Range { return e.render }

// Diff describes how a reconciliation pass should update materialized
// elements: which indices must be released (no longer in range), which
// are newly entering range and need a fresh element, and whether the
// previously rendered range is unchanged.
type Diff struct {
	// Unchanged is true when the new render range exactly matches the
	// last one and the total hasn't changed; callers should return
	// without touching any materialized element (unless repositioning
	// for compression, which this package does not model).
	Unchanged bool
	// Release lists indices that were materialized under the previous
	// render range but fall outside the new one.
	Release []int
	// Enter lists indices newly covered by the new render range that
	// were not covered by the previous one.
	Enter []int
	// Retained lists indices covered by both ranges; these need
	// repositioning only, not a fresh element.
	Retained []int
	// SetSizeChanged reports whether Total() changed since the last
	// reconciliation, meaning aria-setsize-equivalent metadata on every
	// retained element must be rewritten in place.
	SetSizeChanged bool
	Range          Range
}

// Reconcile compares the current render range (from the most recent
// Compute) against the last range passed to a prior Reconcile call and
// returns the index-level diff. The new range becomes "last" for the
// next call.
func (e *Engine) Reconcile() Diff {
	total := e.Cache.Total()
	setSizeChanged := e.hasRendered && total != e.lastTotal

	if e.hasRendered && e.render.Equal(e.lastRender) && !setSizeChanged {
		return Diff{Unchanged: true, Range: e.render, SetSizeChanged: false}
	}

	var release, enter, retained []int
	if e.hasRendered {
		for i := e.lastRender.Start; i <= e.lastRender.End; i++ {
			if !e.render.Contains(i) {
				release = append(release, i)
			}
		}
		for i := e.render.Start; i <= e.render.End; i++ {
			if e.lastRender.Contains(i) {
				retained = append(retained, i)
			} else {
				enter = append(enter, i)
			}
		}
	} else if total > 0 {
		for i := e.render.Start; i <= e.render.End; i++ {
			enter = append(enter, i)
		}
	}

	e.lastRender = e.render
	e.lastTotal = total
	e.hasRendered = true

	return Diff{
		Release:        release,
		Enter:          enter,
		Retained:       retained,
		SetSizeChanged: setSizeChanged,
		Range:          e.render,
	}
}

// LastRenderRange returns the render range recorded by the most recent
// Reconcile call.
func (e *Engine) LastRenderRange() Range { return e.lastRender }

// Reset clears reconciliation state, forcing the next Reconcile to treat
// every index in the current render range as newly entering. Used on
// setItems/reset where no element identities survive.
func (e *Engine) Reset() {
	e.lastRender = Range{}
	e.lastTotal = 0
	e.hasRendered = false
}
