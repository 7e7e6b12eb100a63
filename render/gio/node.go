package gio

import "gioui.org/layout"

// Template renders the item at index into a widget, given its current
// rendered state. It is the Gio analogue of spec.md's
// `(item, index, state) → element` contract.
type Template func(index int, state RowState) layout.Widget

// RowState carries the per-row flags a Template needs to style its
// output: selection, focus, and whether the row is a synthesized
// placeholder waiting on an async load.
type RowState struct {
	Selected    bool
	Focused     bool
	Placeholder bool
}

// Node is one pooled, reusable rendered row. It satisfies pool.Resettable
// so returning a Node to the pool clears everything the next Acquire
// must not see, the Gio equivalent of detaching a recycled DOM node's
// content before reattaching it to a different index.
type Node struct {
	Index   int
	ItemID  string
	Widget  layout.Widget
	State   RowState
	attached bool
}

// Reset clears Node back to its zero rendered state before it re-enters
// the pool's idle stack.
func (n *Node) Reset() {
	n.Index = 0
	n.ItemID = ""
	n.Widget = nil
	n.State = RowState{}
	n.attached = false
}

// NewNode is the pool.New constructor for *Node.
func NewNode() *Node {
	return &Node{}
}
