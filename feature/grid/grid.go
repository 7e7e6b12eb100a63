// Package grid implements the optional grid layout feature: a row-wise
// arrangement of Columns items per logical row, replacing the default
// one-item-per-row renderer. Grid is incompatible with horizontal
// orientation and reverse mode; Grid.Setup (feature.go) rejects both
// when the grid is registered as a feature, so vlist.Build fails.
package grid

import "fmt"

// Config describes a grid layout.
type Config struct {
	// Columns is the number of items placed per row. Must be >= 1.
	Columns int
	// Gap is the pixel spacing between columns within a row.
	Gap float32
	// RowHeight is the main-axis size of one row, typically derived
	// from the configured item size.
	RowHeight float32
}

// ConfigError reports an invalid grid configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: invalid config: %s", e.Reason)
}

// Validate checks Columns and RowHeight are usable.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return &ConfigError{Reason: "columns must be >= 1"}
	}
	if c.RowHeight <= 0 {
		return &ConfigError{Reason: "rowHeight must be > 0"}
	}
	return nil
}

// Grid maps a flat item index space onto rows of Config.Columns items,
// replacing the size cache's index/offset relationship with one keyed by
// row rather than by item.
type Grid struct {
	Config Config

	// lastWidth is the container width observed by the most recent
	// resize hook invocation, once registered as a feature.Feature.
	lastWidth float32
}

// NewGrid constructs a Grid. Panics are never used for invalid config;
// callers must call Config.Validate() themselves (the builder does this
// at vlist.Build time).
func NewGrid(cfg Config) *Grid {
	return &Grid{Config: cfg}
}

// RowCount returns the number of rows needed to hold totalItems.
func (g *Grid) RowCount(totalItems int) int {
	if totalItems <= 0 {
		return 0
	}
	cols := g.Config.Columns
	return (totalItems + cols - 1) / cols
}

// RowForIndex returns the row containing item index i.
func (g *Grid) RowForIndex(i int) int {
	return i / g.Config.Columns
}

// ColumnForIndex returns the column (0-based, within its row) of item
// index i.
func (g *Grid) ColumnForIndex(i int) int {
	return i % g.Config.Columns
}

// IndicesInRow returns the [start, end) item-index range occupied by
// row r, clamped to totalItems.
func (g *Grid) IndicesInRow(r int, totalItems int) (start, end int) {
	cols := g.Config.Columns
	start = r * cols
	end = start + cols
	if end > totalItems {
		end = totalItems
	}
	if start > end {
		start = end
	}
	return start, end
}

// RowOffset returns the main-axis pixel offset of the start of row r.
func (g *Grid) RowOffset(r int) float32 {
	return float32(r) * g.Config.RowHeight
}

// ColumnOffset returns the cross-axis pixel offset of column c within a
// row, given the available cross-axis width.
func (g *Grid) ColumnOffset(c int, containerWidth float32) float32 {
	colWidth := g.ColumnWidth(containerWidth)
	return float32(c) * (colWidth + g.Config.Gap)
}

// ColumnWidth returns the width of one column given the available
// cross-axis width, accounting for (Columns-1) gaps.
func (g *Grid) ColumnWidth(containerWidth float32) float32 {
	cols := g.Config.Columns
	totalGap := g.Config.Gap * float32(cols-1)
	w := (containerWidth - totalGap) / float32(cols)
	if w < 0 {
		return 0
	}
	return w
}
