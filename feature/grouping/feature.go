package grouping

import (
	"fmt"

	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/sizecache"
)

// HeaderItemIDPrefix marks the reserved id namespace for the synthetic
// header items Entries/Items return, mirroring data.PlaceholderPrefix's
// reserved-namespace approach for async placeholder items.
const HeaderItemIDPrefix = "__group-header__:"

// headerItem builds the synthetic data.Item standing in for a header
// entry: its Payload is the group key, so a template can render it like
// any other item without needing grouping.Entry itself.
func headerItem(key string) data.Item {
	return data.Item{ID: HeaderItemIDPrefix + key, Payload: key}
}

// IsHeaderItem reports whether id was synthesized by headerItem.
func IsHeaderItem(id data.ID) bool {
	return len(id) >= len(HeaderItemIDPrefix) && id[:len(HeaderItemIDPrefix)] == HeaderItemIDPrefix
}

// Name identifies this feature for build-time diagnostics.
func (g *Grouping) Name() string { return "grouping" }

// Priority runs grouping at the default priority.
func (g *Grouping) Priority() int { return feature.DefaultPriority }

// Setup claims both Methods.Total and Methods.Items so the two stay
// consistent with each other (header-interleaved count, header-interleaved
// sequence), and installs the header-aware size function into the size
// cache so vlist.List.afterDataChange's cache.Rebuild(methods.Total())
// call never indexes the raw per-item size function out of range. Setup
// requires a *sizecache.Variable (grouping synthesizes a header size per
// entry, which a Uniform cache has no way to express).
func (g *Grouping) Setup(ctx *feature.Context) error {
	vc, ok := ctx.Cache.(*sizecache.Variable)
	if !ok {
		return fmt.Errorf("grouping: requires a variable size cache, got %T", ctx.Cache)
	}
	rawSize := vc.SizeFunc

	sync := func() {
		total := ctx.Data.Total()
		g.entries = g.Synthesize(total, ctx.Data.Item)
		vc.SizeFunc = g.SizeFunc(g.entries, rawSize)
		vc.Rebuild(len(g.entries))
	}
	sync()

	if err := ctx.Methods.ClaimTotal(g.Name(), func() int {
		sync()
		return len(g.entries)
	}); err != nil {
		return err
	}
	if err := ctx.Methods.ClaimItems(g.Name(), func() []data.Item {
		sync()
		items := make([]data.Item, len(g.entries))
		for i, e := range g.entries {
			if e.IsHeader {
				items[i] = headerItem(e.GroupKey)
			} else {
				items[i] = ctx.Data.Item(e.SourceIndex)
			}
		}
		return items
	}); err != nil {
		return err
	}
	g.OnRefresh = sync
	return nil
}

// Destroy clears the cached synthesis.
func (g *Grouping) Destroy() {
	g.entries = nil
}

// Entries returns the most recently synthesized entry sequence.
func (g *Grouping) Entries() []Entry { return g.entries }
