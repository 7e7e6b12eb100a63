package grid

import (
	"fmt"

	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/sizecache"
)

// Name identifies this feature for build-time diagnostics.
func (g *Grid) Name() string { return "grid" }

// Priority runs grid at the default priority.
func (g *Grid) Priority() int { return feature.DefaultPriority }

// Setup validates that grid is compatible with the list's resolved
// orientation/reverse settings (spec.md: "Rejects horizontal orientation
// and reverse mode"), claims Methods.Total so the list's logical index
// space becomes rows instead of flat items (RowHeight per row, Columns
// items per row), and registers a resize hook that invalidates the
// cached column width on container width change.
func (g *Grid) Setup(ctx *feature.Context) error {
	if ctx.Horizontal {
		return &ConfigError{Reason: "grid is incompatible with horizontal orientation"}
	}
	if ctx.Reverse {
		return &ConfigError{Reason: "grid is incompatible with reverse mode"}
	}
	if err := g.Config.Validate(); err != nil {
		return err
	}

	vc, ok := ctx.Cache.(*sizecache.Variable)
	if !ok {
		return fmt.Errorf("grid: requires a variable size cache, got %T", ctx.Cache)
	}
	vc.SizeFunc = func(int) float32 { return g.Config.RowHeight }
	vc.Rebuild(g.RowCount(ctx.Data.Total()))

	if err := ctx.Methods.ClaimTotal(g.Name(), func() int {
		n := g.RowCount(ctx.Data.Total())
		vc.Rebuild(n)
		return n
	}); err != nil {
		return err
	}

	ctx.Points.ResizeHandlers = append(ctx.Points.ResizeHandlers, func(width, _ float32) {
		g.lastWidth = width
	})
	return nil
}

// Destroy is a no-op; present to satisfy feature.Feature.
func (g *Grid) Destroy() {}

// ColumnWidthForLastResize returns ColumnWidth evaluated against the
// width observed by the most recent resize hook invocation, 0 before the
// first resize.
func (g *Grid) ColumnWidthForLastResize() float32 {
	return g.ColumnWidth(g.lastWidth)
}
