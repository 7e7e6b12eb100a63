package gio

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// gutterStyle frames the Scaffold's items region with an optional widget
// on either side, the trailing side sized to hold a scrollbar.
type gutterStyle struct {
	LeftWidth  unit.Value
	RightWidth unit.Value
	layout.Alignment
}

// newGutter returns a gutterStyle with no leading gutter and a
// scrollbar-width trailing one.
func newGutter() gutterStyle {
	return gutterStyle{
		RightWidth: unit.Dp(16),
		Alignment:  layout.Middle,
	}
}

// Layout lays out left and right atop their gutter spacers with center
// filling the remaining space in between. Either side may be nil.
func (g gutterStyle) Layout(gtx C, left, center, right layout.Widget) D {
	return layout.Flex{
		Alignment: g.Alignment,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layoutGutterSide(gtx, g.LeftWidth, left)
		}),
		layout.Flexed(1, center),
		layout.Rigid(func(gtx C) D {
			return layoutGutterSide(gtx, g.RightWidth, right)
		}),
	)
}

func layoutGutterSide(gtx C, width unit.Value, widget layout.Widget) D {
	spacer := layout.Spacer{Width: width}
	if widget == nil {
		return spacer.Layout(gtx)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx C) D {
			return layout.Spacer{Width: width}.Layout(gtx)
		}),
		layout.Expanded(widget),
	)
}
