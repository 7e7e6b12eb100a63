package vlist

import "github.com/vlist-engine/vlist/viewport"

// ScrollEvent is the `scroll` event payload.
type ScrollEvent struct {
	ScrollPosition float32
	Direction      string // "up" | "down" | ""
}

// RangeChangeEvent is the `range:change` event payload.
type RangeChangeEvent struct {
	Range viewport.Range
}

// ItemClickEvent is the `item:click`/`item:dblclick` event payload.
type ItemClickEvent struct {
	Index int
	ID    string
}

// ResizeEvent is the `resize` event payload.
type ResizeEvent struct {
	Width, Height float32
}

// VelocityChangeEvent is the `velocity:change` event payload.
type VelocityChangeEvent struct {
	Velocity float32
	Reliable bool
}
