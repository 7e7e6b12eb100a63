package asyncdata

import (
	"context"
	"testing"

	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/viewport"
)

func syncScheduler(job func()) { job() }

func fixtureAdapter(total int) data.Adapter {
	return func(ctx context.Context, offset, limit int) (data.Page, error) {
		end := offset + limit
		if end > total {
			end = total
		}
		items := make([]data.Item, 0, end-offset)
		for i := offset; i < end; i++ {
			items = append(items, data.Item{ID: data.NewSerial(), Payload: i})
		}
		return data.Page{Items: items, Total: total}, nil
	}
}

func newTestGlue(total int) *Glue {
	m := data.NewAsync(fixtureAdapter(total))
	m.Scheduler = syncScheduler
	m.ChunkSize = 10
	return NewGlue(m, 0)
}

func TestSyncLoadsRenderRangeAndEvictsDistant(t *testing.T) {
	g := newTestGlue(1000)
	g.Manager.SetItems(nil, 0, 1000)

	g.Sync(context.Background(), viewport.Range{Start: 0, End: 9}, viewport.Range{Start: 0, End: 9})
	item := g.Manager.Item(5)
	if data.IsPlaceholder(item.ID) {
		t.Fatal("expected item 5 loaded after Sync")
	}

	// Move far away; old chunk should be evicted (KeepAround default is
	// large, so push well beyond it).
	g.Manager.KeepAround = 5
	g.Sync(context.Background(), viewport.Range{Start: 900, End: 909}, viewport.Range{Start: 900, End: 909})
	item = g.Manager.Item(5)
	if !data.IsPlaceholder(item.ID) {
		t.Error("expected item 5 evicted after scrolling far away")
	}
}

func TestClassForTracksPlaceholderThenReplacedThenNormal(t *testing.T) {
	g := newTestGlue(100)

	if got := g.ClassFor(3); got != RowPlaceholder {
		t.Fatalf("ClassFor(3) before load = %v, want RowPlaceholder", got)
	}

	g.Manager.EnsureRange(context.Background(), 0, 10)

	if got := g.ClassFor(3); got != RowReplaced {
		t.Fatalf("ClassFor(3) right after load = %v, want RowReplaced", got)
	}
	if got := g.ClassFor(3); got != RowNormal {
		t.Fatalf("ClassFor(3) on the call after that = %v, want RowNormal", got)
	}
}

func TestClassForNeverPlaceholderAlwaysNormal(t *testing.T) {
	g := newTestGlue(100)
	g.Manager.EnsureRange(context.Background(), 0, 100)
	if got := g.ClassFor(50); got != RowNormal {
		t.Errorf("ClassFor(50) = %v, want RowNormal", got)
	}
}

func TestForgetClearsPlaceholderMemory(t *testing.T) {
	g := newTestGlue(100)
	g.ClassFor(3) // placeholder, remembered
	g.Forget(3)
	g.Manager.EnsureRange(context.Background(), 0, 10)
	if got := g.ClassFor(3); got != RowNormal {
		t.Errorf("ClassFor(3) after Forget+load = %v, want RowNormal (no stale RowReplaced)", got)
	}
}

func TestNegativePrefetchMarginClampsToZero(t *testing.T) {
	g := NewGlue(data.NewAsync(fixtureAdapter(10)), -5)
	if g.PrefetchMargin != 0 {
		t.Errorf("PrefetchMargin = %d, want 0", g.PrefetchMargin)
	}
}
