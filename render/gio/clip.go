package gio

import (
	"image"

	"gioui.org/op/clip"
)

// clipRect returns a clip area covering the full constraint rectangle of
// gtx, used to clip the viewport region to its available space so rows
// that extend past it (briefly retained by the pool between reconcile
// passes) never paint outside the list's bounds.
func clipRect(gtx C) clip.Stack {
	return clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
}
