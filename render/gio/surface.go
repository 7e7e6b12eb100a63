package gio

import "github.com/vlist-engine/vlist/render"

// Surface is this package's render.Surface implementation: a built List
// targeting Gio is constructed with one of these as Config.Container.
// It carries no state of its own today — a real window handle is
// supplied per-frame via the layout.Context passed to Renderer.Layout —
// but exists as a concrete, renderer-tagged value so vlist.Build can
// validate that a container was actually provided without depending on
// this package.
type Surface struct{}

// Renderer identifies this as the Gio adapter.
func (Surface) Renderer() string { return "gio" }

var _ render.Surface = Surface{}
