// Package feature declares the contract optional subsystems
// (selection, grouping, grid, scrollbar, async-data glue) implement to
// be registered with a built list. It intentionally holds no
// dependency on vlist itself: Context is passed explicitly into Setup
// rather than features holding a back-reference to the list, the same
// cyclic-reference problem the reference Hooks design sidesteps by
// convention and Go avoids structurally here by keeping Setup a pure
// function of its inputs.
package feature

import (
	"fmt"

	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/scrollctl"
	"github.com/vlist-engine/vlist/sizecache"
	"github.com/vlist-engine/vlist/viewport"
)

// MethodCollisionError is returned from Build when two features try to
// override the same overridable method.
type MethodCollisionError struct {
	Method  string
	Feature string
}

func (e *MethodCollisionError) Error() string {
	return fmt.Sprintf("feature: %q tried to override method %q, which is already owned by another feature", e.Feature, e.Method)
}

// DefaultPriority is applied to a Feature whose Priority() returns <= 0.
const DefaultPriority = 50

// Feature is an optional, orthogonal subsystem registered with a list at
// build time. Setup wires the feature into the engine via ctx; Destroy
// (run in reverse priority order across all registered features) tears
// that wiring back down. Name is used only for the build-time
// method-collision check and log messages.
type Feature interface {
	Name() string
	Priority() int
	Setup(ctx *Context) error
	Destroy()
}

// Methods holds the overridable base methods of the built list's public
// API plus which feature currently owns each one. A feature that needs
// to change what `items`/`total` report (the grouping feature inserting
// synthetic headers, for instance) claims the corresponding method
// during Setup via ClaimItems/ClaimTotal; a second feature claiming an
// already-owned method gets a *MethodCollisionError back instead of
// silently overwriting the first.
type Methods struct {
	Items      func() []data.Item
	Total      func() int
	itemsOwner string
	totalOwner string
}

// ClaimItems installs fn as the Items override on behalf of owner,
// failing if another feature already claimed it.
func (m *Methods) ClaimItems(owner string, fn func() []data.Item) error {
	if m.itemsOwner != "" {
		return &MethodCollisionError{Method: "items", Feature: owner}
	}
	m.itemsOwner = owner
	m.Items = fn
	return nil
}

// ClaimTotal installs fn as the Total override on behalf of owner,
// failing if another feature already claimed it.
func (m *Methods) ClaimTotal(owner string, fn func() int) error {
	if m.totalOwner != "" {
		return &MethodCollisionError{Method: "total", Feature: owner}
	}
	m.totalOwner = owner
	m.Total = fn
	return nil
}

// RegistrationPoints are the hook slices a Feature can append callbacks
// to, run at the named point in the core's event-handling sequence.
type RegistrationPoints struct {
	AfterScroll         []func(position float32)
	ClickHandlers       []func(index int)
	DoubleClickHandlers []func(index int)
	KeydownHandlers     []func(key string)
	ResizeHandlers      []func(width, height float32)
	ContentSizeHandlers []func(size float32)
	DestroyHandlers     []func()
}

// Mutators are the wholesale-replacement hooks a Feature can call during
// Setup to swap out a core piece entirely (the async-data-glue feature
// replacing the data manager, a custom renderer replacing the template).
type Mutators struct {
	SetData     func(data.Manager)
	SetScroll   func(*scrollctl.Controller)
	SetTemplate func(any)
}

// Context is the one channel a Feature's Setup gets into the engine's
// internals: the already-constructed core pieces, the registration
// points and method table to extend, and the mutator hooks to replace
// core pieces.
type Context struct {
	Cache    sizecache.Cache
	Viewport *viewport.Engine
	Scroll   *scrollctl.Controller
	Data     data.Manager

	// Orientation/Reverse/ClassPrefix mirror the resolved build config a
	// feature may need to validate against (grid rejecting horizontal
	// orientation, for instance) without importing vlist.
	Horizontal bool
	Reverse    bool
	ClassPrefix string

	// Template is the current render template (initially Config's, then
	// whatever the most recently run feature installed via
	// Mutate.SetTemplate), carried as `any` so this package stays
	// renderer-agnostic. A feature that wraps rendering (a renderer
	// adapter's grouping/grid template decorator, say) reads this to get
	// the prior value before replacing it, so features compose instead of
	// clobbering each other.
	Template any

	Methods *Methods
	Points  *RegistrationPoints
	Mutate  Mutators
}
