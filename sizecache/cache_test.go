package sizecache

import (
	"math"
	"testing"
)

func TestUniformBasics(t *testing.T) {
	u, err := NewUniform(40, 100)
	if err != nil {
		t.Fatalf("NewUniform: %v", err)
	}
	if got := u.Offset(0); got != 0 {
		t.Errorf("Offset(0) = %v, want 0", got)
	}
	if got := u.Offset(100); got != 4000 {
		t.Errorf("Offset(100) = %v, want 4000", got)
	}
	if got := u.TotalSize(); got != 4000 {
		t.Errorf("TotalSize() = %v, want 4000", got)
	}
	if got := u.IndexAt(0); got != 0 {
		t.Errorf("IndexAt(0) = %v, want 0", got)
	}
	if got := u.IndexAt(3999); got != 99 {
		t.Errorf("IndexAt(3999) = %v, want 99", got)
	}
	if got := u.IndexAt(-5); got != 0 {
		t.Errorf("IndexAt(-5) = %v, want 0 (clamped)", got)
	}
	if got := u.IndexAt(5000); got != 99 {
		t.Errorf("IndexAt(5000) = %v, want 99 (clamped)", got)
	}
}

func TestUniformEmpty(t *testing.T) {
	u, err := NewUniform(40, 0)
	if err != nil {
		t.Fatalf("NewUniform: %v", err)
	}
	if got := u.IndexAt(0); got != 0 {
		t.Errorf("IndexAt(0) on empty cache = %v, want 0", got)
	}
	if got := u.TotalSize(); got != 0 {
		t.Errorf("TotalSize() on empty cache = %v, want 0", got)
	}
}

func TestUniformInvalidSize(t *testing.T) {
	if _, err := NewUniform(0, 5); err == nil {
		t.Fatal("expected error for zero height")
	}
	if _, err := NewUniform(-1, 5); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestUniformRebuildIdempotent(t *testing.T) {
	u, _ := NewUniform(10, 5)
	if err := u.Rebuild(20); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	first := u.TotalSize()
	if err := u.Rebuild(20); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if second := u.TotalSize(); first != second {
		t.Errorf("Rebuild not idempotent: %v != %v", first, second)
	}
}

// Fixed sequence of increasing sizes [10,20,30,40,50] should produce the
// prefix offsets [0,10,30,60,100,150] and the matching index boundaries.
func TestVariableScenarioS3(t *testing.T) {
	sizes := []float32{10, 20, 30, 40, 50}
	fn := func(i int) float32 { return sizes[i] }
	v, err := NewVariable(fn, len(sizes))
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	wantOffsets := []float32{0, 10, 30, 60, 100, 150}
	for i, want := range wantOffsets {
		if got := v.Offset(i); got != want {
			t.Errorf("Offset(%d) = %v, want %v", i, got, want)
		}
	}
	cases := []struct {
		y    float32
		want int
	}{
		{0, 0}, {9, 0}, {10, 1}, {29, 1}, {30, 2}, {149, 4},
	}
	for _, c := range cases {
		if got := v.IndexAt(c.y); got != c.want {
			t.Errorf("IndexAt(%v) = %d, want %d", c.y, got, c.want)
		}
	}
	if got := v.TotalSize(); got != 150 {
		t.Errorf("TotalSize() = %v, want 150", got)
	}
}

// For any size function, IndexAt(Offset(i)) == i for every index, offset is
// non-decreasing, offset(0)=0, and offset(n)=total.
func TestVariableConsistencyProperty(t *testing.T) {
	n := 200
	fn := func(i int) float32 { return float32(10 + (i%7)*3) }
	v, err := NewVariable(fn, n)
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	if got := v.Offset(0); got != 0 {
		t.Errorf("Offset(0) = %v, want 0", got)
	}
	if got := v.Offset(n); got != v.TotalSize() {
		t.Errorf("Offset(n) = %v, want TotalSize() = %v", got, v.TotalSize())
	}
	var prevOffset float32 = -1
	for i := 0; i < n; i++ {
		off := v.Offset(i)
		if off < prevOffset {
			t.Fatalf("offset not non-decreasing at %d: %v < %v", i, off, prevOffset)
		}
		prevOffset = off
		if got := v.IndexAt(off); got != i {
			t.Errorf("IndexAt(Offset(%d)=%v) = %d, want %d", i, off, got, i)
		}
	}
	total := v.TotalSize()
	for y := float32(0); y < total; y += 7 {
		idx := v.IndexAt(y)
		if !(v.Offset(idx) <= y && y < v.Offset(idx+1)) {
			t.Errorf("invariant violated at y=%v: offset(%d)=%v, offset(%d+1)=%v", y, idx, v.Offset(idx), idx, v.Offset(idx+1))
		}
	}
}

func TestVariableInvalidSize(t *testing.T) {
	fn := func(i int) float32 {
		if i == 2 {
			return 0
		}
		return 10
	}
	_, err := NewVariable(fn, 5)
	if err == nil {
		t.Fatal("expected InvalidSizeError")
	}
	ise, ok := err.(*InvalidSizeError)
	if !ok {
		t.Fatalf("expected *InvalidSizeError, got %T", err)
	}
	if ise.Index != 2 {
		t.Errorf("InvalidSizeError.Index = %d, want 2", ise.Index)
	}
}

func TestVariableInvalidSizeNaNInf(t *testing.T) {
	nanFn := func(i int) float32 { return float32(math.NaN()) }
	if _, err := NewVariable(nanFn, 3); err == nil {
		t.Fatal("expected error for NaN size")
	}
	infFn := func(i int) float32 { return float32(math.Inf(1)) }
	if _, err := NewVariable(infFn, 3); err == nil {
		t.Fatal("expected error for +Inf size")
	}
}

func TestVariableRebuildIdempotent(t *testing.T) {
	fn := func(i int) float32 { return float32(5 + i) }
	v, _ := NewVariable(fn, 10)
	first := append([]float32(nil), v.prefix...)
	if err := v.Rebuild(10); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	for i := range first {
		if v.prefix[i] != first[i] {
			t.Fatalf("Rebuild not idempotent at %d: %v != %v", i, v.prefix[i], first[i])
		}
	}
}

func TestVariableEmpty(t *testing.T) {
	v, err := NewVariable(func(i int) float32 { return 1 }, 0)
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	if got := v.IndexAt(0); got != 0 {
		t.Errorf("IndexAt(0) on empty = %d, want 0", got)
	}
	if got := v.TotalSize(); got != 0 {
		t.Errorf("TotalSize() on empty = %v, want 0", got)
	}
}
