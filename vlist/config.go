package vlist

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vlist-engine/vlist/compress"
	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/render"
	"github.com/vlist-engine/vlist/sizecache"
)

// ItemConfig describes how items are sized and rendered.
type ItemConfig struct {
	// Height (vertical orientation) or Width (horizontal) is the
	// main-axis size source: either a constant via ConstSize, or a
	// per-index function for variable-size lists.
	Size sizecache.SizeFunc
	// Template renders one item; the renderer adapter supplies its own
	// concrete widget/element type, so this is carried as `any` here and
	// type-asserted by the chosen renderer (render/gio expects a
	// gio.Template).
	Template any
}

// ConstSize returns a sizecache.SizeFunc reporting a fixed size for
// every index, for callers whose items are all the same main-axis size.
func ConstSize(size float32) sizecache.SizeFunc {
	return func(int) float32 { return size }
}

// ScrollConfig configures wheel interception, index-wrap behavior, and
// the idle timeout that drops the "scrolling" state.
type ScrollConfig struct {
	// Wheel is carried in the config but not read by Build or List:
	// wheel input is handled by render/gio.Input whether or not it is
	// set. Its zero value is false.
	Wheel bool
	// Wrap makes scrollToIndex wrap indices modulo the total.
	Wrap bool
	// IdleTimeout is how long after the last scroll/animation tick
	// before IsScrolling drops back to false. Default
	// scrollctl.DefaultIdleTimeout (150ms) when zero.
	IdleTimeout time.Duration
}

// Config is a built list's complete build-time configuration.
type Config struct {
	// Container is the renderer-specific host surface (e.g.
	// render/gio.Surface{}). Required.
	Container render.Surface
	// Item describes per-item sizing and the render template. Size and
	// Template are both required.
	Item ItemConfig
	// Items seeds the initial in-memory data. Mutually exclusive with
	// Adapter (if both are set, Adapter wins and Items is ignored).
	Items []data.Item
	// Adapter, if set, builds an adapter-backed data.Async manager
	// instead of data.InMemory.
	Adapter data.Adapter
	// Overscan is the number of extra rows materialized beyond the
	// visible range on each side. Default sizecache/viewport's
	// DefaultOverscan (3) when negative.
	Overscan int
	// Horizontal selects the horizontal main axis. Default false
	// (vertical).
	Horizontal bool
	// Reverse, when true, jumps the initial render to the last item with
	// "end" alignment and is incompatible with Horizontal.
	Reverse bool
	// AriaLabel is the accessible name applied to the root region.
	AriaLabel string
	// ClassPrefix prefixes every class-equivalent style field. Default
	// "vlist".
	ClassPrefix string
	// Scroll configures wheel/wrap/idle behavior.
	Scroll ScrollConfig
	// CompressionCeiling overrides compress.CompressionCeiling; zero
	// uses the default.
	CompressionCeiling float32
	// Features are registered at Build time, sorted by ascending
	// Priority.
	Features []feature.Feature
	// Logger receives structured logs from the event bus and the async
	// data manager. A nil Logger defaults to a disabled logger (no
	// output), never a panic.
	Logger *zerolog.Logger
}

func (c Config) classPrefix() string {
	if c.ClassPrefix == "" {
		return "vlist"
	}
	return c.ClassPrefix
}

func (c Config) compressionCeiling() float32 {
	if c.CompressionCeiling <= 0 {
		return compress.CompressionCeiling
	}
	return c.CompressionCeiling
}
