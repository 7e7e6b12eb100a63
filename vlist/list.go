package vlist

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vlist-engine/vlist/compress"
	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/eventbus"
	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/scrollctl"
	"github.com/vlist-engine/vlist/sizecache"
	"github.com/vlist-engine/vlist/viewport"
)

// List is a built virtualized list: the wiring of every core subsystem
// plus whatever features were registered at Build time. Every exported
// method first checks state and is a no-op once destroyed, per spec.md
// §4.10's public observable state machine.
type List struct {
	cfg      Config
	state    lifecycleState
	cache    sizecache.Cache
	viewport *viewport.Engine
	scroll   *scrollctl.Controller
	compress *compress.Engine
	data     data.Manager
	logger   *zerolog.Logger

	methods  *feature.Methods
	points   *feature.RegistrationPoints
	features []feature.Feature

	containerMain    float32
	lastTickPosition float32
	lastDiff         viewport.Diff
	template         any

	scrollBus   *eventbus.Bus[ScrollEvent]
	rangeBus    *eventbus.Bus[RangeChangeEvent]
	clickBus    *eventbus.Bus[ItemClickEvent]
	dblClickBus *eventbus.Bus[ItemClickEvent]
	resizeBus   *eventbus.Bus[ResizeEvent]
	velocityBus *eventbus.Bus[VelocityChangeEvent]
}

// Element reports the renderer surface this list was built against.
func (l *List) Element() any { return l.cfg.Container }

// Viewport exposes the underlying range-computation engine, the piece a
// concrete renderer adapter (render/gio.NewRenderer, say) needs to drive
// its own per-frame layout pass against the same cache/overscan state
// this list's event emission also reads.
func (l *List) Viewport() *viewport.Engine { return l.viewport }

// ScrollController exposes the underlying scroll position/animation
// state for the same reason Viewport does.
func (l *List) ScrollController() *scrollctl.Controller { return l.scroll }

// Compress exposes the underlying compression engine. It is never nil;
// IsCompressed reports whether compression is currently active.
func (l *List) Compress() *compress.Engine { return l.compress }

// DataManager exposes the underlying data manager, the piece an
// accessibility layer or custom renderer reads row content from
// directly rather than through Items (which may be feature-overridden
// into a synthesized, non-1:1 sequence).
func (l *List) DataManager() data.Manager { return l.data }

// LastDiff returns the render-range delta computed by the most recent
// Compute+Reconcile pass (run internally by Resize, Tick, or a data
// mutation). A render/gio.Renderer consumes this directly instead of
// calling Viewport.Compute/Reconcile itself, since List is the one owner
// of that pass against the shared *viewport.Engine.
func (l *List) LastDiff() viewport.Diff { return l.lastDiff }

// Template returns the current render template, possibly overridden by a
// feature's Setup via the Mutate.SetTemplate hook (e.g. a
// render/gio.GroupingTemplate wrapping the base template to special-case
// synthesized header rows). Carried as `any`; the chosen renderer adapter
// type-asserts it back to its own concrete Template type.
func (l *List) Template() any { return l.template }

// Items returns the current items, possibly feature-overridden (e.g.
// grouping returning a header-interleaved sequence instead of the raw
// data manager contents).
func (l *List) Items() []data.Item {
	if l.state != stateInitialized {
		return nil
	}
	return l.methods.Items()
}

// Total returns the current logical item count, possibly
// feature-overridden.
func (l *List) Total() int {
	if l.state != stateInitialized {
		return 0
	}
	return l.methods.Total()
}

// SetItems replaces the data manager's contents wholesale, rebuilds the
// size cache, and force-renders.
func (l *List) SetItems(items []data.Item) {
	if l.state != stateInitialized {
		return
	}
	if err := l.data.SetItems(items, 0, len(items)); err != nil {
		l.logger.Warn().Err(err).Msg("vlist: SetItems failed")
		return
	}
	l.afterDataChange()
}

// AppendItems appends items to the end of the data manager's contents.
func (l *List) AppendItems(items []data.Item) {
	if l.state != stateInitialized || len(items) == 0 {
		return
	}
	offset := l.data.Total()
	if err := l.data.SetItems(items, offset, offset+len(items)); err != nil {
		l.logger.Warn().Err(err).Msg("vlist: AppendItems failed")
		return
	}
	l.afterDataChange()
}

// PrependItems inserts items at the start of the data manager's
// contents, shifting everything else forward.
func (l *List) PrependItems(items []data.Item) {
	if l.state != stateInitialized || len(items) == 0 {
		return
	}
	existing := l.methods.Items()
	merged := make([]data.Item, 0, len(items)+len(existing))
	merged = append(merged, items...)
	merged = append(merged, existing...)
	if err := l.data.SetItems(merged, 0, len(merged)); err != nil {
		l.logger.Warn().Err(err).Msg("vlist: PrependItems failed")
		return
	}
	l.afterDataChange()
}

// UpdateItem applies patch to the item at index.
func (l *List) UpdateItem(index int, patch func(data.Item) data.Item) {
	if l.state != stateInitialized {
		return
	}
	if err := l.data.UpdateItem(index, patch); err != nil {
		l.logger.Warn().Err(err).Int("index", index).Msg("vlist: UpdateItem failed")
		return
	}
	l.afterDataChange()
}

// UpdateItemByID applies patch to the item carrying id.
func (l *List) UpdateItemByID(id string, patch func(data.Item) data.Item) {
	if l.state != stateInitialized {
		return
	}
	if err := l.data.UpdateItemByID(data.ID(id), patch); err != nil {
		l.logger.Warn().Err(err).Str("id", id).Msg("vlist: UpdateItemByID failed")
		return
	}
	l.afterDataChange()
}

// RemoveItem deletes the item at index.
func (l *List) RemoveItem(index int) {
	if l.state != stateInitialized {
		return
	}
	if err := l.data.RemoveItem(index); err != nil {
		l.logger.Warn().Err(err).Int("index", index).Msg("vlist: RemoveItem failed")
		return
	}
	l.afterDataChange()
}

// Reload discards the async data manager's loaded window and re-fetches
// the currently rendered range. A no-op for an in-memory data manager
// (there is nothing to reload).
func (l *List) Reload() {
	if l.state != stateInitialized {
		return
	}
	async, ok := l.data.(*data.Async)
	if !ok {
		return
	}
	rng := l.viewport.LastRenderRange()
	async.Reload(context.Background(), rng.Start, rng.End+1)
	l.afterDataChange()
}

// ScrollToIndex scrolls to index i with the given alignment. duration <=
// 0 jumps immediately, running the full afterScrollTick sequence so the
// new position is reflected before this call returns; duration > 0
// starts an animation that Tick drives frame by frame instead.
func (l *List) ScrollToIndex(i int, align scrollctl.Align, duration time.Duration) {
	if l.state != stateInitialized {
		return
	}
	now := time.Now()
	l.scroll.ScrollToIndex(i, align, duration, now)
	if duration <= 0 {
		l.afterScrollTick(now)
	}
}

// CancelScroll cancels any in-flight smooth-scroll animation.
func (l *List) CancelScroll() {
	if l.state != stateInitialized {
		return
	}
	l.scroll.CancelScroll()
}

// GetScrollPosition returns the current logical scroll position.
func (l *List) GetScrollPosition() float32 {
	if l.state != stateInitialized {
		return 0
	}
	return l.scroll.Position()
}

// The On* methods subscribe to one of the built list's typed event
// buses, one method per event (OnScroll, OnRangeChange, ...), each
// returning an unsubscribe function.
func (l *List) OnScroll(h func(ScrollEvent)) eventbus.Unsubscribe { return l.scrollBus.On(h) }
func (l *List) OnRangeChange(h func(RangeChangeEvent)) eventbus.Unsubscribe {
	return l.rangeBus.On(h)
}
func (l *List) OnItemClick(h func(ItemClickEvent)) eventbus.Unsubscribe { return l.clickBus.On(h) }
func (l *List) OnItemDoubleClick(h func(ItemClickEvent)) eventbus.Unsubscribe {
	return l.dblClickBus.On(h)
}
func (l *List) OnResize(h func(ResizeEvent)) eventbus.Unsubscribe { return l.resizeBus.On(h) }
func (l *List) OnVelocityChange(h func(VelocityChangeEvent)) eventbus.Unsubscribe {
	return l.velocityBus.On(h)
}

// Resize updates the container's main-axis size (there being no DOM
// ResizeObserver in a Gio window, the renderer adapter calls this once
// per frame, or whenever its constraints actually change) and runs any
// registered resize hooks, then force-renders.
func (l *List) Resize(width, height float32) {
	if l.state != stateInitialized {
		return
	}
	main := height
	if l.cfg.Horizontal {
		main = width
	}
	l.containerMain = main
	l.scroll.ContainerSize = main
	l.compress.ContainerSize = main
	for _, h := range l.points.ResizeHandlers {
		h(width, height)
	}
	l.resizeBus.Emit(ResizeEvent{Width: width, Height: height})
	l.forceRender()
}

// SetScrollPosition writes position directly, the entry point a renderer
// adapter drives from wheel/drag input (as opposed to the animated path
// driven by ScrollToIndex+Tick): it always runs the full afterScrollTick
// sequence, since an explicit position write has no "unchanged" case to
// skip the way an idle Tick does.
func (l *List) SetScrollPosition(position float32, now time.Time) {
	if l.state != stateInitialized {
		return
	}
	l.scroll.SetPosition(position, now)
	l.afterScrollTick(now)
}

// Tick advances any in-flight smooth-scroll animation, picks up any
// position change written directly onto ScrollController() since the
// last Tick (a scrollbar drag or render/gio.Input's wheel/touch/momentum
// handling, none of which import vlist and so write the shared
// *scrollctl.Controller directly rather than calling SetScrollPosition),
// and runs idle-state tracking for the given timestamp, emitting
// scroll/range:change/velocity:change as appropriate. The renderer
// adapter calls this once per frame.
func (l *List) Tick(now time.Time) {
	if l.state != stateInitialized {
		return
	}
	animated := l.scroll.Tick(now)
	l.scroll.CheckIdle(now)
	if animated || l.scroll.Position() != l.lastTickPosition {
		l.afterScrollTick(now)
	}
}

// afterScrollTick runs the per-scroll-event sequence spec.md §5
// describes: position already updated by the caller (SetPosition,
// ScrollToIndex's Tick, or wheel/touch input), then range recomputation,
// reconciliation, `scroll` emission, and afterScroll hooks, in that
// order.
func (l *List) afterScrollTick(now time.Time) {
	l.render()
	l.scrollBus.Emit(ScrollEvent{ScrollPosition: l.scroll.Position(), Direction: l.scroll.Direction().String()})
	for _, h := range l.points.AfterScroll {
		h(l.scroll.Position())
	}
	if v, ok := l.scroll.Velocity(); ok {
		l.velocityBus.Emit(VelocityChangeEvent{Velocity: v, Reliable: ok})
	}
	l.lastTickPosition = l.scroll.Position()
}

// afterDataChange rebuilds the size cache against the new total and
// force-renders, matching spec.md §5's "setItems rebuilds the size cache
// and force-renders" ordering guarantee.
func (l *List) afterDataChange() {
	total := l.methods.Total()
	if err := l.cache.Rebuild(total); err != nil {
		l.logger.Warn().Err(err).Msg("vlist: size cache rebuild failed")
		return
	}
	l.compress.ActualSize = l.cache.TotalSize()
	for _, h := range l.points.ContentSizeHandlers {
		h(l.compress.ActualSize)
	}
	l.forceRender()
}

// forceRender re-runs Compute/Reconcile against the current position
// unconditionally (used after a data change or resize, where the range
// may be unchanged numerically but the underlying items are not).
func (l *List) forceRender() {
	l.viewport.Reset()
	l.render()
}

// render runs the list's one Compute+Reconcile pass for this event,
// records the resulting diff for LastDiff (the only place
// Viewport.Compute/Reconcile are ever called: a render/gio.Renderer
// reads the diff back out rather than re-driving the same engine, or its
// second Reconcile would see its own first call's range and report
// everything Unchanged), and emits range:change iff the range actually
// changed (or Reset forced every index to re-enter).
func (l *List) render() {
	l.viewport.Compute(l.scroll.Position(), l.containerMain)
	diff := l.viewport.Reconcile()
	l.lastDiff = diff
	if diff.Unchanged {
		return
	}
	l.rangeBus.Emit(RangeChangeEvent{Range: diff.Range})
}

// Destroy tears the list down: runs every feature's Destroy in reverse
// priority order (after running any DestroyHandlers registered via
// Points, mirroring the teacher's Hooks.Invalidator "run a callback on
// this lifecycle event" shape), cancels any in-flight animation, clears
// every event bus, and transitions to destroyed. Idempotent; never
// panics.
func (l *List) Destroy() {
	if l.state == stateDestroyed {
		return
	}
	l.scroll.CancelScroll()
	for _, h := range l.points.DestroyHandlers {
		h()
	}
	for i := len(l.features) - 1; i >= 0; i-- {
		l.features[i].Destroy()
	}
	l.scrollBus.Clear()
	l.rangeBus.Clear()
	l.clickBus.Clear()
	l.dblClickBus.Clear()
	l.resizeBus.Clear()
	l.velocityBus.Clear()
	l.state = stateDestroyed
}
