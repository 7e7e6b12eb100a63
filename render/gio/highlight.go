package gio

import (
	"image/color"

	"gioui.org/layout"
)

// WithSelectionHighlight wraps tmpl so a row painted with RowState.Selected
// true gets a colored background behind its content, the same
// record-then-composite-over-a-Stack technique background already
// implements for arbitrary widgets.
func WithSelectionHighlight(highlight color.NRGBA, tmpl Template) Template {
	bg := background(highlight)
	return func(index int, state RowState) layout.Widget {
		w := tmpl(index, state)
		if !state.Selected {
			return w
		}
		return func(gtx C) D {
			return bg.Layout(gtx, w)
		}
	}
}
