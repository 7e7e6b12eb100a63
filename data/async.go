package data

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Page is what an Adapter returns for one read.
type Page struct {
	Items []Item
	// Total is the adapter's current notion of the logical item count.
	// Adapters that don't know the total up front (infinite/unknown-size
	// lists) may report 0 until a later page establishes it; Total()
	// then only grows.
	Total int
}

// Adapter reads items on demand, the read function `({offset, limit}) ->
// {items, total}` in the spec's terms.
type Adapter func(ctx context.Context, offset, limit int) (Page, error)

// Scheduler runs a load job, possibly deferring or parallelizing it. The
// zero value schedules by spawning a goroutine per job, unbounded; pass a
// Scheduler backed by a fixed worker count to cap concurrency.
type Scheduler func(job func())

func goroutinePerJob(job func()) { go job() }

// chunkRange is a half-open [start, end) range of indices, used both for
// the sparse load store and for tracking in-flight requests.
type chunkRange struct{ start, end int }

func (r chunkRange) overlaps(o chunkRange) bool {
	return r.start < o.end && o.start < r.end
}

func (r chunkRange) union(o chunkRange) chunkRange {
	start, end := r.start, r.end
	if o.start < start {
		start = o.start
	}
	if o.end > end {
		end = o.end
	}
	return chunkRange{start, end}
}

// Async is a Manager backed by an Adapter, loading chunks on demand and
// filling unloaded indices with Placeholder items. Grounded in the
// request-channel-plus-background-goroutine shape of the reference
// async loader: ensureRange coalesces overlapping requests the same way
// asyncProcess folds modificationRequest/loadRequest into one in-flight
// pass per direction.
type Async struct {
	Adapter   Adapter
	Scheduler Scheduler
	ChunkSize int
	// KeepAround bounds how many items beyond the visible range are kept
	// loaded before evictDistant reclaims them.
	KeepAround int
	Logger     *zerolog.Logger
	OnUpdate   func() // invoked after any state change that should trigger a render

	mu      sync.Mutex
	loaded  map[int]Item
	pending []chunkRange
	total   int
	err     error
}

// DefaultChunkSize is used when Async.ChunkSize is non-positive.
const DefaultChunkSize = 50

// DefaultKeepAround is used when Async.KeepAround is non-positive.
const DefaultKeepAround = 200

// NewAsync constructs an Async manager over adapter.
func NewAsync(adapter Adapter) *Async {
	return &Async{
		Adapter:    adapter,
		Scheduler:  goroutinePerJob,
		ChunkSize:  DefaultChunkSize,
		KeepAround: DefaultKeepAround,
		loaded:     make(map[int]Item),
	}
}

func (m *Async) logger() *zerolog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (m *Async) Item(i int) Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.loaded[i]; ok {
		return it
	}
	return Placeholder(i)
}

func (m *Async) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

func (m *Async) SetItems(items []Item, offset int, total int) error {
	m.mu.Lock()
	for i, it := range items {
		m.loaded[offset+i] = it
	}
	if total > 0 {
		m.total = total
	}
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Async) UpdateItem(index int, patch func(Item) Item) error {
	m.mu.Lock()
	existing, ok := m.loaded[index]
	if !ok {
		existing = Placeholder(index)
	}
	m.loaded[index] = patch(existing)
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Async) UpdateItemByID(id ID, patch func(Item) Item) error {
	m.mu.Lock()
	var found = -1
	for i, it := range m.loaded {
		if it.ID == id {
			found = i
			break
		}
	}
	m.mu.Unlock()
	if found < 0 {
		return &NotFoundError{ID: id}
	}
	return m.UpdateItem(found, patch)
}

func (m *Async) RemoveItem(index int) error {
	m.mu.Lock()
	shifted := make(map[int]Item, len(m.loaded))
	for i, it := range m.loaded {
		switch {
		case i < index:
			shifted[i] = it
		case i > index:
			shifted[i-1] = it
		}
	}
	m.loaded = shifted
	if m.total > 0 {
		m.total--
	}
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Async) Clear() {
	m.mu.Lock()
	m.loaded = make(map[int]Item)
	m.total = 0
	m.pending = nil
	m.mu.Unlock()
}

// Reload discards all loaded data and re-fetches from the current
// range, keeping Total() at its last known value until the first page
// resolves.
func (m *Async) Reload(ctx context.Context, start, end int) {
	m.mu.Lock()
	m.loaded = make(map[int]Item)
	m.pending = nil
	m.err = nil
	m.mu.Unlock()
	m.EnsureRange(ctx, start, end)
}

func (m *Async) Reset() {
	m.Clear()
	m.mu.Lock()
	m.err = nil
	m.mu.Unlock()
}

func (m *Async) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// EnsureRange requests that every index in [start, end) be loaded,
// coalescing against already-pending requests so overlapping calls
// dispatch at most one adapter call per gap.
func (m *Async) EnsureRange(ctx context.Context, start, end int) {
	if end <= start {
		return
	}
	m.mu.Lock()
	gaps := m.unloadedGaps(start, end)
	m.mu.Unlock()
	for _, g := range gaps {
		m.dispatch(ctx, g)
	}
}

// LoadMore grows the loaded region by ChunkSize in the given direction
// from the current edge. direction > 0 grows forward (higher indices),
// direction < 0 grows backward; it never loads below index 0.
func (m *Async) LoadMore(ctx context.Context, fromIndex int, direction int) {
	chunk := m.chunkSize()
	if direction >= 0 {
		m.EnsureRange(ctx, fromIndex, fromIndex+chunk)
		return
	}
	start := fromIndex - chunk
	if start < 0 {
		start = 0
	}
	m.EnsureRange(ctx, start, fromIndex)
}

// EvictDistant releases every loaded item whose index lies outside
// [visibleStart - KeepAround, visibleEnd + KeepAround], item by item
// rather than by whole chunk, bounding memory for adapters backing very
// large or unbounded lists.
func (m *Async) EvictDistant(visibleStart, visibleEnd int) {
	keep := m.KeepAround
	if keep <= 0 {
		keep = DefaultKeepAround
	}
	lo := visibleStart - keep
	hi := visibleEnd + keep
	m.mu.Lock()
	for i := range m.loaded {
		if i < lo || i > hi {
			delete(m.loaded, i)
		}
	}
	m.mu.Unlock()
}

func (m *Async) chunkSize() int {
	if m.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return m.ChunkSize
}

// unloadedGaps returns the sub-ranges of [start, end) not already loaded
// and not already pending, one range per maximal run of such indices,
// and marks them pending. The ranges are not aligned to or split by
// ChunkSize. Caller must hold m.mu.
func (m *Async) unloadedGaps(start, end int) []chunkRange {
	var gaps []chunkRange
	var gapStart = -1
	for i := start; i < end; i++ {
		_, loaded := m.loaded[i]
		pending := m.isPendingLocked(i)
		if loaded || pending {
			if gapStart >= 0 {
				gaps = append(gaps, chunkRange{gapStart, i})
				gapStart = -1
			}
			continue
		}
		if gapStart < 0 {
			gapStart = i
		}
	}
	if gapStart >= 0 {
		gaps = append(gaps, chunkRange{gapStart, end})
	}
	for _, g := range gaps {
		m.pending = append(m.pending, g)
	}
	return gaps
}

func (m *Async) isPendingLocked(i int) bool {
	for _, p := range m.pending {
		if i >= p.start && i < p.end {
			return true
		}
	}
	return false
}

func (m *Async) dispatch(ctx context.Context, r chunkRange) {
	sched := m.Scheduler
	if sched == nil {
		sched = goroutinePerJob
	}
	sched(func() {
		page, err := m.Adapter(ctx, r.start, r.end-r.start)
		m.mu.Lock()
		m.clearPendingLocked(r)
		if err != nil {
			m.err = err
			m.logger().Error().Err(err).Int("offset", r.start).Int("limit", r.end-r.start).Msg("data: adapter load failed")
			m.mu.Unlock()
			m.notify()
			return
		}
		m.err = nil
		for i, it := range page.Items {
			m.loaded[r.start+i] = it
		}
		if page.Total > m.total {
			m.total = page.Total
		}
		m.mu.Unlock()
		m.notify()
	})
}

func (m *Async) clearPendingLocked(r chunkRange) {
	out := m.pending[:0]
	for _, p := range m.pending {
		if p != r {
			out = append(out, p)
		}
	}
	m.pending = out
}

func (m *Async) notify() {
	if m.OnUpdate != nil {
		m.OnUpdate()
	}
}

var _ Manager = (*Async)(nil)
