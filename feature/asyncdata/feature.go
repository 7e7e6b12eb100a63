package asyncdata

import "github.com/vlist-engine/vlist/feature"

// Name identifies this feature for build-time diagnostics.
func (g *Glue) Name() string { return "asyncdata" }

// Priority runs the async-data glue before most other features (a lower
// number runs earlier): grouping/grid read ctx.Data during their own
// Setup, so the data manager must already be the async-backed one by
// then.
func (g *Glue) Priority() int { return feature.DefaultPriority - 10 }

// Setup installs this glue's Manager as the list's data manager and
// registers a destroy hook clearing its placeholder-replacement memory.
func (g *Glue) Setup(ctx *feature.Context) error {
	if ctx.Mutate.SetData != nil {
		ctx.Mutate.SetData(g.Manager)
	}
	ctx.Points.DestroyHandlers = append(ctx.Points.DestroyHandlers, func() {
		g.wasPlaceholder = nil
	})
	return nil
}

// Destroy is a no-op beyond the DestroyHandlers registration above;
// present to satisfy feature.Feature.
func (g *Glue) Destroy() {}
