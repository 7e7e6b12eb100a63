package gio

import (
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/vlist-engine/vlist/compress"
	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/pool"
	"github.com/vlist-engine/vlist/scrollctl"
	"github.com/vlist-engine/vlist/viewport"
)

// Renderer is the concrete Gio adapter over the renderer-agnostic core:
// it consumes the viewport.Diff a *vlist.List already produced for this
// frame, acquires and releases *Node values through a pool.Pool, asks the
// template to render newly-entered rows, and positions every retained row
// by offset(i) - scrollPosition (or the compressed logical equivalent
// when compress.Engine reports IsCompressed()).
//
// Layout deliberately does not call Viewport.Compute/Reconcile itself:
// *vlist.List already runs that pass once per state-changing event
// (Resize, Tick, a data mutation) against the very same *viewport.Engine,
// and a second independent Compute/Reconcile here would see its own
// Compute call reproduce the identical range and so report everything
// Unchanged, never materializing a row. The host drives both: call
// list.Resize/list.Tick first, then Renderer.Layout(gtx, axis,
// list.LastDiff()).
type Renderer struct {
	Viewport *viewport.Engine
	Scroll   *scrollctl.Controller
	Compress *compress.Engine // nil when compression is not configured
	Data     data.Manager
	// Items, when set, resolves an index to its data.Item through
	// whatever feature currently owns the Items method (e.g.
	// feature/grouping's header-interleaved sequence) instead of the raw
	// Data manager. Set this to the built list's Items method
	// (list.Items) to keep rendered rows in sync with an active feature;
	// leave nil to read Data directly.
	Items func() []data.Item
	Template      Template
	Scaffold      Scaffold
	Accessibility func(index int) RowState

	pool  *pool.Pool[*Node]
	nodes map[int]*Node
}

// NewRenderer wires the given subsystems into a Renderer with a fresh
// node pool.
func NewRenderer(vp *viewport.Engine, sc *scrollctl.Controller, ce *compress.Engine, dm data.Manager, tmpl Template) *Renderer {
	return &Renderer{
		Viewport: vp,
		Scroll:   sc,
		Compress: ce,
		Data:     dm,
		Template: tmpl,
		pool:     pool.NewPool(pool.DefaultBound, NewNode),
		nodes:    make(map[int]*Node),
	}
}

// Layout applies diff (the render-range delta a *vlist.List computed this
// frame via Resize/Tick/a data mutation) by acquiring/releasing pooled
// nodes, then lays out every row in the current render range inside an
// items region sized and clipped by Scaffold.
func (r *Renderer) Layout(gtx C, axis layout.Axis, diff viewport.Diff) D {
	scrollPos := r.logicalPosition()

	for _, i := range diff.Release {
		if n, ok := r.nodes[i]; ok {
			r.pool.Release(n)
			delete(r.nodes, i)
		}
	}
	items := r.currentItems()
	for _, i := range diff.Enter {
		n := r.pool.Acquire()
		n.Index = i
		item := r.itemAt(items, i)
		n.ItemID = string(item.ID)
		state := RowState{Placeholder: data.IsPlaceholder(item.ID)}
		if r.Accessibility != nil {
			state = r.Accessibility(i)
			state.Placeholder = state.Placeholder || data.IsPlaceholder(item.ID)
		}
		n.State = state
		n.Widget = r.Template(i, state)
		r.nodes[i] = n
	}

	content := func(gtx C) D {
		return r.layoutRange(gtx, axis, scrollPos)
	}
	return r.Scaffold.Viewport(gtx, content)
}

// currentItems returns the feature-aware item sequence (Items, if set)
// once per Layout call, so the Enter loop does one lookup instead of one
// per entering index.
func (r *Renderer) currentItems() []data.Item {
	if r.Items == nil {
		return nil
	}
	return r.Items()
}

// itemAt resolves index i against items (if non-nil and in range),
// falling back to Data.Item(i) for the no-feature-override case.
func (r *Renderer) itemAt(items []data.Item, i int) data.Item {
	if items != nil && i >= 0 && i < len(items) {
		return items[i]
	}
	if r.Data != nil {
		return r.Data.Item(i)
	}
	return data.Item{}
}

// layoutRange paints every node in the current render range at its
// translated position, recording an op.TransformStack per row so
// overlapping rows (Gio has no native absolute positioning) each land at
// offset(i) - scrollPosition along the main axis.
func (r *Renderer) layoutRange(gtx C, axis layout.Axis, scrollPos float32) D {
	rng := r.Viewport.LastRenderRange()
	var max D
	for i := rng.Start; i <= rng.End; i++ {
		n, ok := r.nodes[i]
		if !ok || n.Widget == nil {
			continue
		}
		translate := r.translateFor(i, scrollPos)
		stack := op.Offset(axisPoint(axis, translate)).Push(gtx.Ops)
		d := n.Widget(gtx)
		stack.Pop()
		if d.Size.Y > max.Size.Y {
			max = d
		}
	}
	return max
}

// translateFor is the item-transform formula from the compression
// engine: offset(i) - scrollPosition, using the compressed logical
// position when compression is active so rows never need to know their
// physical (post-compression) coordinate.
func (r *Renderer) translateFor(i int, scrollPos float32) float32 {
	return r.Viewport.Cache.Offset(i) - scrollPos
}

// logicalPosition returns the position driving this frame's layout.
// scrollctl.Controller always holds the logical position: wheel/touch
// input under compression mutates it through compress.Engine's
// ApplyWheelDelta/Move before ever calling Controller.SetPosition, so the
// renderer never needs to distinguish the compressed case here.
func (r *Renderer) logicalPosition() float32 {
	return r.Scroll.Position()
}

// Destroy releases every pooled node, e.g. when the owning List is torn
// down.
func (r *Renderer) Destroy() {
	for i, n := range r.nodes {
		r.pool.Release(n)
		delete(r.nodes, i)
	}
	r.pool.Clear()
}
