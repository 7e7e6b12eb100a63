package gio

import (
	"image"

	"gioui.org/layout"
)

// axisPoint builds an image.Point with main translated along axis,
// zero on the cross axis, rounding to the nearest pixel the way Gio's
// integer-pixel op.Offset requires.
func axisPoint(axis layout.Axis, main float32) image.Point {
	v := int(main + sign(main)*0.5)
	if axis == layout.Horizontal {
		return image.Point{X: v}
	}
	return image.Point{Y: v}
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
