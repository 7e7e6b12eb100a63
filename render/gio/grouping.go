package gio

import (
	"gioui.org/layout"

	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/feature/grouping"
)

// GroupingTemplate is the Gio-specific half of feature/grouping: grouping
// itself only synthesizes the header-interleaved entry sequence (it
// can't build a gio.Template without depending on this package), so
// GroupingTemplate is registered alongside it as a second feature.Feature
// that wraps whatever template came before it with one that renders a
// synthesized header entry via Header instead of the item template.
//
// Register it with a priority higher than the Grouping it wraps
// (feature.DefaultPriority+10, say) so Grouping's own Setup has already
// run and Entries() reflects the final synthesis by the time this
// Setup reads ctx.Template.
type GroupingTemplate struct {
	Grouping *grouping.Grouping
	// Header renders one synthesized header row for groupKey.
	Header func(groupKey string) layout.Widget
}

// Name identifies this feature for build-time diagnostics.
func (g *GroupingTemplate) Name() string { return "render/gio/grouping-template" }

// Priority runs after the default priority so a Grouping registered
// alongside it at the default priority has already claimed
// Methods.Items/Total.
func (g *GroupingTemplate) Priority() int { return feature.DefaultPriority + 10 }

// Setup wraps the current template (ctx.Template, the base per-item
// template or whatever an earlier feature installed) so index i renders
// via Header when Entries()[i] is a synthesized header row, falling back
// to the wrapped template otherwise.
func (g *GroupingTemplate) Setup(ctx *feature.Context) error {
	base, _ := ctx.Template.(Template)
	ctx.Mutate.SetTemplate(Template(func(index int, state RowState) layout.Widget {
		entries := g.Grouping.Entries()
		if index >= 0 && index < len(entries) && entries[index].IsHeader {
			return g.Header(entries[index].GroupKey)
		}
		if base == nil {
			return func(gtx C) D { return D{} }
		}
		return base(index, state)
	}))
	return nil
}

// Destroy is a no-op; present to satisfy feature.Feature.
func (g *GroupingTemplate) Destroy() {}
