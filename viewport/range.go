// Package viewport computes visible and render index ranges from scroll
// position and reconciles them against the previously rendered range, the
// hot path that runs on every scroll tick.
package viewport

// Range is an inclusive index range. Start <= End whenever Total > 0;
// both are 0 when Total == 0. A *Range is reused frame to frame rather
// than reallocated, mirroring the reused layout.Position value the
// reference manager threads through its update path.
type Range struct {
	Start int
	End   int
}

// Empty reports whether r is the zero range {0, 0}, which Compute
// returns for a zero total. A one-item list's range is also {0, 0}, so
// Empty alone does not tell the two apart.
func (r Range) Empty() bool {
	return r.Start == 0 && r.End == 0
}

// Equal reports whether r and other denote the same range.
func (r Range) Equal(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// Contains reports whether index i falls within r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

func clampRange(start, end, total int) Range {
	if total <= 0 {
		return Range{0, 0}
	}
	if start < 0 {
		start = 0
	}
	if end > total-1 {
		end = total - 1
	}
	if start > end {
		start = end
	}
	return Range{Start: start, End: end}
}
