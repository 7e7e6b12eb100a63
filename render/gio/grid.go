package gio

import (
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/feature/grid"
)

// GridTemplate is the Gio-specific half of feature/grid: grid itself only
// reshapes the list's logical index space into rows (see
// feature/grid.Grid.Setup claiming Methods.Total), so GridTemplate is
// registered alongside it as a second feature.Feature that wraps the
// per-item template into a per-row template laying out Config.Columns
// cells side by side.
//
// Register it with a priority higher than the Grid it wraps
// (feature.DefaultPriority+10) so Grid's own Setup has already run and
// RawTotal/ColumnWidthForLastResize reflect the final row count and the
// most recent resize by the time this Setup reads ctx.Template.
type GridTemplate struct {
	Grid *grid.Grid
	// RawTotal reports the number of flat items being arranged into
	// rows, typically the data manager's own Total (captured before
	// Grid's Setup replaces Methods.Total with a row count).
	RawTotal func() int
}

// Name identifies this feature for build-time diagnostics.
func (g *GridTemplate) Name() string { return "render/gio/grid-template" }

// Priority runs after the default priority so a Grid registered alongside
// it at the default priority has already claimed Methods.Total.
func (g *GridTemplate) Priority() int { return feature.DefaultPriority + 10 }

// Setup wraps the current template so index row renders every item in
// [start, end) = Grid.IndicesInRow(row, RawTotal()) as a horizontal Flex
// of cells, each ColumnWidthForLastResize wide and separated by
// Config.Gap.
func (g *GridTemplate) Setup(ctx *feature.Context) error {
	base, _ := ctx.Template.(Template)
	ctx.Mutate.SetTemplate(Template(func(row int, state RowState) layout.Widget {
		start, end := g.Grid.IndicesInRow(row, g.RawTotal())
		return func(gtx C) D {
			colWidth := unit.Px(g.Grid.ColumnWidthForLastResize())
			var children []layout.FlexChild
			for i := start; i < end; i++ {
				itemIndex := i
				if i > start {
					children = append(children, layout.Rigid(layout.Spacer{Width: unit.Px(g.Grid.Config.Gap)}.Layout))
				}
				children = append(children, layout.Rigid(func(gtx C) D {
					gtx.Constraints.Max.X = gtx.Px(colWidth)
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					if base == nil {
						return D{Size: gtx.Constraints.Min}
					}
					return base(itemIndex, state)(gtx)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
		}
	}))
	return nil
}

// Destroy is a no-op; present to satisfy feature.Feature.
func (g *GridTemplate) Destroy() {}
