// Package vlist is the builder and public API: it wires the renderer-
// agnostic subsystems (sizecache, viewport, scrollctl, compress, data,
// eventbus) together into one constructed List, and owns the types every
// renderer adapter needs to reproduce the list's accessibility contract.
package vlist

// Orientation is the list's main scrolling axis.
type Orientation int

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// Accessibility mirrors the aria-* attributes a DOM renderer would set on
// each rendered row, renderer-agnostically: a Gio adapter populates
// gioui.org/io/semantic description nodes from these fields instead of
// setting DOM attributes, but the fields themselves are identical either
// way so a non-Gio renderer can reproduce the same contract.
type Accessibility struct {
	// Role is the container's accessibility role, e.g. "listbox"/"grid".
	Role string
	// TabIndex mirrors the DOM tabindex attribute for keyboard focus.
	TabIndex int
	// Label is the accessible name of the list container. Build and List
	// do not fill it in; Config.AriaLabel is not copied into it.
	Label string
	// Orientation is surfaced separately from Config so a renderer can
	// set aria-orientation without reaching back into the builder config.
	Orientation Orientation
	// SetSize is aria-setsize: the total number of items in the set.
	// Rewritten only when total changes between reconcile passes.
	SetSize int
	// PosInSet is aria-posinset for one rendered row (1-based).
	PosInSet int
	// Selected mirrors aria-selected for one rendered row.
	Selected bool
}

// ForItem returns the per-row Accessibility derived from the container's
// accessibility contract, a 0-based item index, and whether that item is
// currently selected.
func (a Accessibility) ForItem(index int, selected bool) Accessibility {
	row := a
	row.PosInSet = index + 1
	row.Selected = selected
	return row
}
