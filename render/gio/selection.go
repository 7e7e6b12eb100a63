package gio

import "github.com/vlist-engine/vlist/feature/selection"

// SelectionAccessibility builds a Renderer.Accessibility function backed
// by sel: selected rows carry RowState.Selected, and the single row at
// sel.Focused() (-1 when nothing is focused) carries RowState.Focused.
// itemID resolves a render index to the id selection tracks, typically
// the built list's Items()[index].ID.
func SelectionAccessibility(sel *selection.Selection, itemID func(index int) string) func(index int) RowState {
	return func(index int) RowState {
		return RowState{
			Selected: sel.IsSelected(itemID(index)),
			Focused:  index == sel.Focused(),
		}
	}
}
