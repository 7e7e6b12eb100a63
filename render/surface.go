// Package render declares the renderer-facing contract vlist.Build
// depends on without importing any concrete renderer adapter (render/gio
// being the one shipped today). Keeping this boundary as its own package
// is what lets the core (sizecache, viewport, scrollctl, compress, data,
// eventbus) stay renderer-agnostic while still giving Build something
// concrete to validate at construction time.
package render

// Surface is the renderer-specific host a list is built against — for
// render/gio, a window/op.Ops pair; a future web/DOM adapter would wrap
// an element handle instead. The core never calls methods on it beyond
// this contract; everything else happens through the adapter's own
// renderer.Renderer-shaped type (render/gio.Renderer, say), which a
// caller constructs and drives itself once Build succeeds.
type Surface interface {
	// Renderer names which adapter this surface belongs to (e.g. "gio"),
	// used for a sanity assertion at build time rather than importing
	// every adapter package from vlist.
	Renderer() string
}
