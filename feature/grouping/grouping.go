// Package grouping implements the optional grouping-with-sticky-headers
// feature: it inserts synthetic header entries between groups of items,
// the same previous/current/next synthesis fan-out the reference list
// package uses to rebuild its rendered element sequence whenever the raw
// backing data changes.
package grouping

import "github.com/vlist-engine/vlist/data"

// GroupFunc returns the group key for the item at source index i.
// Adjacent items sharing a key belong to the same group.
type GroupFunc func(item data.Item, index int) string

// Entry is one synthesized row: either a header (IsHeader, carrying
// GroupKey) or a regular item (SourceIndex pointing back into the
// original data manager).
type Entry struct {
	IsHeader    bool
	GroupKey    string
	SourceIndex int // -1 for headers
}

// Grouping synthesizes a header-interleaved entry sequence from a flat
// source, mirroring how the reference Synthesis type derives
// ToSourceIndicies/SerialToIndex from a previous/current/next element
// triple, generalized here to "insert one synthetic entry per group
// boundary" instead of "carry forward stateful per-element data".
type Grouping struct {
	GroupFunc    GroupFunc
	HeaderHeight float32

	// OnRefresh, when set, is invoked by Refresh. Callers (typically the
	// feature's registration with the engine) wire this to whatever
	// triggers a sticky-header re-render.
	OnRefresh func()

	// entries is the synthesis cache populated by Setup/Refresh once
	// this Grouping is registered as a feature.Feature.
	entries []Entry
}

// NewGrouping constructs a Grouping using fn to key items and
// headerHeight as the main-axis size of every synthetic header entry.
func NewGrouping(fn GroupFunc, headerHeight float32) *Grouping {
	return &Grouping{GroupFunc: fn, HeaderHeight: headerHeight}
}

// Synthesize walks source indices [0, total) via itemAt, inserting a
// header Entry immediately before the first item of every new group.
func (g *Grouping) Synthesize(total int, itemAt func(i int) data.Item) []Entry {
	entries := make([]Entry, 0, total+total/4+1)
	lastKey := ""
	haveKey := false
	for i := 0; i < total; i++ {
		key := g.GroupFunc(itemAt(i), i)
		if !haveKey || key != lastKey {
			entries = append(entries, Entry{IsHeader: true, GroupKey: key, SourceIndex: -1})
			lastKey = key
			haveKey = true
		}
		entries = append(entries, Entry{SourceIndex: i})
	}
	return entries
}

// SizeFunc returns a sizecache.SizeFunc over the synthesized entries:
// HeaderHeight for header rows, itemHeight(sourceIndex) otherwise.
func (g *Grouping) SizeFunc(entries []Entry, itemHeight func(sourceIndex int) float32) func(i int) float32 {
	return func(i int) float32 {
		e := entries[i]
		if e.IsHeader {
			return g.HeaderHeight
		}
		return itemHeight(e.SourceIndex)
	}
}

// StickyHeader is the pinned-header state for one render pass: which
// group's header is current, and how far it has been pushed out by the
// next header approaching the main-axis origin.
type StickyHeader struct {
	GroupKey string
	// PushOut is in [0, HeaderHeight]: 0 when the next header is not yet
	// close enough to push, HeaderHeight once it has fully displaced the
	// sticky header (at which point the next header has itself become
	// sticky).
	PushOut float32
}

// offsetOf returns the pixel offset of synthesized entry index i, given
// a size function over synthesized indices.
func offsetOf(sizeFunc func(i int) float32, i int) float32 {
	var off float32
	for j := 0; j < i; j++ {
		off += sizeFunc(j)
	}
	return off
}

// CurrentSticky computes the sticky header for scrollPosition: the
// header of the group containing the topmost visible entry, and the
// push-out transform if the following header is within HeaderHeight
// pixels of the origin.
func (g *Grouping) CurrentSticky(entries []Entry, sizeFunc func(i int) float32, scrollPosition float32) StickyHeader {
	if len(entries) == 0 {
		return StickyHeader{}
	}
	// Find the last header entry whose offset is <= scrollPosition: a
	// linear scan is sufficient here since this runs once per render
	// pass over a typically short entries slice; callers with very large
	// grouped lists should precompute a header-offset index instead.
	currentHeaderIdx := -1
	offset := float32(0)
	for i, e := range entries {
		if e.IsHeader {
			if offset <= scrollPosition {
				currentHeaderIdx = i
			} else {
				break
			}
		}
		offset += sizeFunc(i)
	}
	if currentHeaderIdx < 0 {
		return StickyHeader{}
	}
	sticky := StickyHeader{GroupKey: entries[currentHeaderIdx].GroupKey}

	// Find the next header after currentHeaderIdx and compute push-out.
	nextOffset := float32(-1)
	walk := offsetOf(sizeFunc, currentHeaderIdx)
	for i := currentHeaderIdx; i < len(entries); i++ {
		if i != currentHeaderIdx && entries[i].IsHeader {
			nextOffset = walk
			break
		}
		walk += sizeFunc(i)
	}
	if nextOffset >= 0 {
		distance := nextOffset - scrollPosition
		if distance < g.HeaderHeight {
			push := g.HeaderHeight - distance
			if push < 0 {
				push = 0
			}
			if push > g.HeaderHeight {
				push = g.HeaderHeight
			}
			sticky.PushOut = push
		}
	}
	return sticky
}

// Refresh forces a sticky-header re-render. Group membership is usually
// derived purely from item data already passed through Synthesize, but
// when GroupFunc closes over external state (a locale, a filter toggle)
// nothing else signals that CurrentSticky's cached answer is stale;
// callers invoke Refresh to push that invalidation out.
func (g *Grouping) Refresh() {
	if g.OnRefresh != nil {
		g.OnRefresh()
	}
}
