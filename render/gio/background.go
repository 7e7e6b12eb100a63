package gio

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
)

// background lays out a widget over a solid-colored backdrop, used by
// WithSelectionHighlight to paint a row's selected state without the
// template itself knowing about selection.
type background color.NRGBA

func (bg background) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(component.Rect{
			Size:  dims.Size,
			Color: color.NRGBA(bg),
		}.Layout),
		layout.Stacked(func(gtx C) D {
			call.Add(gtx.Ops)
			return dims
		}),
	)
}
