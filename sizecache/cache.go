// Package sizecache maps item indices to pixel sizes and prefix offsets.
//
// Two implementations are provided: Uniform, for lists where every item has
// the same size, and Variable, for lists whose item size is a function of
// index. Both answer offset/index/size queries; Uniform does so in O(1),
// Variable in O(log n) using a rebuilt prefix-sum table.
package sizecache

import "fmt"

// Cache answers offset, size, and index queries over a sequence of n items.
type Cache interface {
	// Offset returns the pixel offset of the start of item i.
	Offset(i int) float32
	// Size returns the pixel size of item i.
	Size(i int) float32
	// IndexAt returns the index of the item occupying pixel position y.
	// Negative y clamps to 0; y >= TotalSize clamps to the last index.
	IndexAt(y float32) int
	// TotalSize returns the sum of all item sizes.
	TotalSize() float32
	// Total returns the number of items the cache was last rebuilt with.
	Total() int
	// Rebuild recomputes the cache for n items. Idempotent: calling Rebuild
	// twice with the same n leaves the cache in the same state.
	Rebuild(n int) error
	// IsVariable reports whether this cache uses a per-index size function.
	IsVariable() bool
}

// InvalidSizeError is returned by Rebuild when a size function yields a
// non-positive or non-finite size for some index.
type InvalidSizeError struct {
	Index int
	Size  float32
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("sizecache: invalid size %v at index %d: size must be a finite number > 0", e.Size, e.Index)
}
