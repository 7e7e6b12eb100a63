package sizecache

import (
	"math"
	"sort"
)

// SizeFunc returns the pixel size of the item at index i. It must yield a
// finite number greater than zero.
type SizeFunc func(i int) float32

// Variable is a Cache backed by a per-index size function. Offset queries
// are O(1) against a rebuilt prefix-sum table; IndexAt is O(log n) via
// binary search over that table.
//
// The binary-search-over-a-rebuilt-prefix-sum shape mirrors the
// VirtualList.ensurePrefix/IndexForOffset pattern used for variable-height
// lists elsewhere in this corpus.
type Variable struct {
	SizeFunc SizeFunc

	n      int
	prefix []float32 // len n+1; prefix[i] = Offset(i)
}

// NewVariable constructs a Variable cache using fn for per-index sizes and
// rebuilds it immediately for n items.
func NewVariable(fn SizeFunc, n int) (*Variable, error) {
	v := &Variable{SizeFunc: fn}
	if err := v.Rebuild(n); err != nil {
		return nil, err
	}
	return v, nil
}

func isValidSize(size float32) bool {
	if math.IsNaN(float64(size)) || math.IsInf(float64(size), 0) {
		return false
	}
	return size > 0
}

// Rebuild fully recomputes the prefix-sum table for n items by evaluating
// SizeFunc for every index in [0, n). Rebuild is idempotent: repeated calls
// with the same n and an unchanged SizeFunc produce the same table.
func (v *Variable) Rebuild(n int) error {
	if n < 0 {
		n = 0
	}
	prefix := make([]float32, n+1)
	for i := 0; i < n; i++ {
		size := v.SizeFunc(i)
		if !isValidSize(size) {
			return &InvalidSizeError{Index: i, Size: size}
		}
		prefix[i+1] = prefix[i] + size
	}
	v.n = n
	v.prefix = prefix
	return nil
}

func (v *Variable) Offset(i int) float32 {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	return v.prefix[i]
}

func (v *Variable) Size(i int) float32 {
	if i < 0 || i >= v.n {
		return 0
	}
	return v.prefix[i+1] - v.prefix[i]
}

func (v *Variable) IndexAt(y float32) int {
	if v.n == 0 {
		return 0
	}
	if y <= 0 {
		return 0
	}
	total := v.TotalSize()
	if y >= total {
		return v.n - 1
	}
	// Find the rightmost prefix entry <= y: sort.Search finds the first
	// index for which prefix[i] > y, then step back one.
	idx := sort.Search(len(v.prefix), func(i int) bool {
		return v.prefix[i] > y
	}) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= v.n {
		idx = v.n - 1
	}
	return idx
}

func (v *Variable) TotalSize() float32 {
	if len(v.prefix) == 0 {
		return 0
	}
	return v.prefix[len(v.prefix)-1]
}

func (v *Variable) Total() int {
	return v.n
}

func (v *Variable) IsVariable() bool { return true }

var _ Cache = (*Variable)(nil)
