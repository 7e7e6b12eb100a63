// Package asyncdata is the thin glue between data.Async and a built
// list's render loop: it keeps the async manager's loaded window synced
// to the current render range (EnsureRange on every Reconcile, EvictDistant
// on every range that moves far enough away) and classifies a rendered
// row as placeholder/replaced for renderers that need to toggle a CSS-
// class-equivalent style.
package asyncdata

import (
	"context"

	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/viewport"
)

// RowClass mirrors the two rendering classes spec.md's data model calls
// out for async-backed rows: a row is Placeholder while its data hasn't
// arrived yet, and Replaced for exactly one render pass after a
// placeholder's backing data lands (so a renderer can play a brief
// transition instead of silently swapping content).
type RowClass int

const (
	// RowNormal is a row whose data has been available since it last
	// entered the render range.
	RowNormal RowClass = iota
	RowPlaceholder
	RowReplaced
)

// Glue wires a data.Async manager into a viewport.Engine's render loop.
type Glue struct {
	Manager *data.Async

	// PrefetchMargin extends EnsureRange/EvictDistant windows beyond the
	// immediate render range, the async equivalent of overscan: it keeps
	// adjacent chunks warm so a fast scroll doesn't show a placeholder for
	// free before the prefetch can land.
	PrefetchMargin int

	wasPlaceholder map[int]bool
}

// NewGlue constructs a Glue over manager with the given prefetch margin.
// A negative margin is treated as 0.
func NewGlue(manager *data.Async, prefetchMargin int) *Glue {
	if prefetchMargin < 0 {
		prefetchMargin = 0
	}
	return &Glue{Manager: manager, PrefetchMargin: prefetchMargin, wasPlaceholder: make(map[int]bool)}
}

// Sync is called once per reconciliation pass with the render range just
// computed: it ensures that range (plus the prefetch margin) is loaded
// and evicts chunks far outside the visible range.
func (g *Glue) Sync(ctx context.Context, visible, render viewport.Range) {
	start := render.Start - g.PrefetchMargin
	end := render.End + 1 + g.PrefetchMargin // EnsureRange is half-open; Range.End is inclusive.
	if start < 0 {
		start = 0
	}
	g.Manager.EnsureRange(ctx, start, end)
	g.Manager.EvictDistant(visible.Start, visible.End)
}

// ClassFor returns the rendering class for the item currently at index,
// consulting and updating the glue's placeholder memory: a row that was
// a placeholder on the previous call and no longer is reports
// RowReplaced exactly once, then settles to RowNormal on the call after
// that.
func (g *Glue) ClassFor(index int) RowClass {
	item := g.Manager.Item(index)
	isPlaceholder := data.IsPlaceholder(item.ID)

	wasPlaceholder := g.wasPlaceholder[index]
	switch {
	case isPlaceholder:
		g.wasPlaceholder[index] = true
		return RowPlaceholder
	case wasPlaceholder:
		g.wasPlaceholder[index] = false
		return RowReplaced
	default:
		delete(g.wasPlaceholder, index)
		return RowNormal
	}
}

// Forget drops any remembered placeholder state for index, e.g. when the
// row is released from the pool and a future re-entry at the same index
// should not be reported as RowReplaced from stale memory.
func (g *Glue) Forget(index int) {
	delete(g.wasPlaceholder, index)
}
