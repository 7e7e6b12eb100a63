package grouping

import (
	"testing"

	"github.com/vlist-engine/vlist/data"
)

func testItems() []data.Item {
	return []data.Item{
		{ID: "a1", Payload: "A"},
		{ID: "a2", Payload: "A"},
		{ID: "b1", Payload: "B"},
		{ID: "b2", Payload: "B"},
		{ID: "b3", Payload: "B"},
		{ID: "c1", Payload: "C"},
	}
}

func groupByPayload(item data.Item, index int) string {
	return item.Payload.(string)
}

func TestSynthesizeInsertsHeaderPerGroup(t *testing.T) {
	items := testItems()
	g := NewGrouping(groupByPayload, 20)
	entries := g.Synthesize(len(items), func(i int) data.Item { return items[i] })

	var gotHeaders []string
	var gotSourceOrder []int
	for _, e := range entries {
		if e.IsHeader {
			gotHeaders = append(gotHeaders, e.GroupKey)
		} else {
			gotSourceOrder = append(gotSourceOrder, e.SourceIndex)
		}
	}
	if len(gotHeaders) != 3 {
		t.Fatalf("headers = %v, want 3 (one per group)", gotHeaders)
	}
	if gotHeaders[0] != "A" || gotHeaders[1] != "B" || gotHeaders[2] != "C" {
		t.Errorf("headers = %v, want [A B C]", gotHeaders)
	}
	for i, want := range []int{0, 1, 2, 3, 4, 5} {
		if gotSourceOrder[i] != want {
			t.Errorf("source order[%d] = %d, want %d", i, gotSourceOrder[i], want)
		}
	}
}

func TestSizeFuncUsesHeaderHeightForHeaders(t *testing.T) {
	items := testItems()
	g := NewGrouping(groupByPayload, 20)
	entries := g.Synthesize(len(items), func(i int) data.Item { return items[i] })
	sizeFn := g.SizeFunc(entries, func(sourceIndex int) float32 { return 40 })

	for i, e := range entries {
		size := sizeFn(i)
		if e.IsHeader {
			if size != 20 {
				t.Errorf("sizeFn(%d) header = %v, want 20", i, size)
			}
		} else {
			if size != 40 {
				t.Errorf("sizeFn(%d) item = %v, want 40", i, size)
			}
		}
	}
}

func TestEmptySourceProducesNoEntries(t *testing.T) {
	g := NewGrouping(groupByPayload, 20)
	entries := g.Synthesize(0, func(i int) data.Item { return data.Item{} })
	if len(entries) != 0 {
		t.Errorf("entries = %v, want empty", entries)
	}
}

func TestCurrentStickyTracksGroupAtScrollPosition(t *testing.T) {
	items := testItems()
	g := NewGrouping(groupByPayload, 20)
	entries := g.Synthesize(len(items), func(i int) data.Item { return items[i] })
	sizeFn := g.SizeFunc(entries, func(sourceIndex int) float32 { return 40 })

	// Layout: header A(20) a1(40) a2(40) header B(20) b1(40) ...
	// offsets: A@0, a1@20, a2@60, B@100, b1@120, b2@160, b3@200, C@240, c1@260
	sticky := g.CurrentSticky(entries, sizeFn, 0)
	if sticky.GroupKey != "A" {
		t.Errorf("GroupKey at position 0 = %q, want A", sticky.GroupKey)
	}

	sticky = g.CurrentSticky(entries, sizeFn, 100)
	if sticky.GroupKey != "B" {
		t.Errorf("GroupKey at position 100 = %q, want B", sticky.GroupKey)
	}

	sticky = g.CurrentSticky(entries, sizeFn, 99)
	if sticky.GroupKey != "A" {
		t.Errorf("GroupKey at position 99 = %q, want A (B header not reached yet)", sticky.GroupKey)
	}
}

func TestCurrentStickyPushOutAsNextHeaderApproaches(t *testing.T) {
	items := testItems()
	g := NewGrouping(groupByPayload, 20)
	entries := g.Synthesize(len(items), func(i int) data.Item { return items[i] })
	sizeFn := g.SizeFunc(entries, func(sourceIndex int) float32 { return 40 })

	// B header is at offset 100. Scrolling to 85 means distance 15 < 20
	// (HeaderHeight), so the A header should be pushed out by 5px.
	sticky := g.CurrentSticky(entries, sizeFn, 85)
	if sticky.GroupKey != "A" {
		t.Fatalf("GroupKey = %q, want A", sticky.GroupKey)
	}
	if sticky.PushOut != 5 {
		t.Errorf("PushOut = %v, want 5", sticky.PushOut)
	}

	// Far from the next header: no push-out.
	sticky = g.CurrentSticky(entries, sizeFn, 20)
	if sticky.PushOut != 0 {
		t.Errorf("PushOut = %v, want 0", sticky.PushOut)
	}
}

func TestCurrentStickyEmptyEntries(t *testing.T) {
	g := NewGrouping(groupByPayload, 20)
	sticky := g.CurrentSticky(nil, func(i int) float32 { return 0 }, 0)
	if sticky.GroupKey != "" {
		t.Errorf("GroupKey = %q, want empty for no entries", sticky.GroupKey)
	}
}

func TestRefreshInvokesCallback(t *testing.T) {
	g := NewGrouping(groupByPayload, 20)
	called := 0
	g.OnRefresh = func() { called++ }
	g.Refresh()
	g.Refresh()
	if called != 2 {
		t.Errorf("OnRefresh calls = %d, want 2", called)
	}
}

func TestRefreshWithoutCallbackIsNoop(t *testing.T) {
	g := NewGrouping(groupByPayload, 20)
	g.Refresh() // must not panic
}
