// Package gio is the one concrete renderer adapter: it wires the
// renderer-agnostic core (viewport, scrollctl, compress, pool, data) to
// gioui.org so the engine can be dropped into a Gio window, the same way
// the reference list.Manager is consumed from a Gio UI tree.
package gio

import (
	"gioui.org/layout"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Scaffold builds the nested layout.Context regions every rendered list
// needs: a root region (the accessible container), a viewport region
// (clips to the visible area), a content region (sized to the full,
// possibly-compressed, scrollable extent) and an items region (where
// individual rows/cells are actually laid out), mirroring how Row.Layout
// composes nested Flex/Stack regions rather than a single flat widget.
type Scaffold struct {
	// Gutter frames the viewport with optional left/right widgets — here
	// repurposed to hold an optional scrollbar widget in the trailing
	// gutter.
	Gutter gutterStyle
}

// NewScaffold returns a Scaffold with a scrollbar-width gutter on the
// trailing edge and no leading gutter.
func NewScaffold() Scaffold {
	return Scaffold{Gutter: newGutter()}
}

// Root lays out the list's root region: the items widget in the content
// slot, with an optional scrollbar widget stacked atop the trailing
// gutter. axis chooses which Flex axis the gutter runs along — vertical
// lists gutter a right-hand scrollbar, horizontal lists gutter a bottom
// one, so Root always composes a Flex along the cross axis of the list's
// own scrolling axis.
func (s Scaffold) Root(gtx C, axis layout.Axis, items layout.Widget, scrollbar layout.Widget) D {
	if axis == layout.Horizontal {
		// A horizontal list's scrollbar sits below it, not beside it;
		// Row/Gutter are built for a horizontal gutter pair so we just
		// run the same composition on a vertically-flipped Flex.
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Flexed(1, items),
			layout.Rigid(orNothing(scrollbar)),
		)
	}
	return s.Gutter.Layout(gtx, nil, items, scrollbar)
}

// Viewport clips content to the available constraints along axis,
// forwarding to items for the actual row layout. Clipping the viewport
// region is what makes off-screen rendered rows (kept alive briefly by
// the pool's release-on-next-pass behavior) invisible without an extra
// traversal to hide them.
func (s Scaffold) Viewport(gtx C, items layout.Widget) D {
	defer clipRect(gtx).Pop()
	return items(gtx)
}

func orNothing(w layout.Widget) layout.Widget {
	if w == nil {
		return func(gtx C) D { return D{} }
	}
	return w
}
