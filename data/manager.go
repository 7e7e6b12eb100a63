// Package data owns the backing store for list items: a dense in-memory
// variant and an adapter-backed async variant that loads chunks on
// demand and fills gaps with placeholders, grounded in the reference
// list.Manager/list.asyncProcess/async.Loader pattern of a request
// channel feeding a background goroutine that returns synthesized
// state updates.
package data

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies an item; items come from the caller with an arbitrary id
// (string or int in the browser original), modeled here as a string,
// coercing integer keys via fmt.Sprint at the boundary the caller
// controls.
type ID = string

// PlaceholderPrefix marks the reserved id namespace for synthetic
// placeholder items returned for not-yet-loaded indices under an async
// adapter.
const PlaceholderPrefix = "__placeholder__:"

// Item is a record with a unique id and an arbitrary payload. Items are
// owned by the Manager; renderers hold only short-lived references
// during a render pass.
type Item struct {
	ID      ID
	Payload any
}

// NewSerial generates a fresh unique id for synthetically constructed
// items (e.g. test fixtures, or callers that don't supply their own
// keys).
func NewSerial() ID {
	return uuid.NewString()
}

// IsPlaceholder reports whether id belongs to the reserved placeholder
// namespace.
func IsPlaceholder(id ID) bool {
	return len(id) >= len(PlaceholderPrefix) && id[:len(PlaceholderPrefix)] == PlaceholderPrefix
}

// Placeholder constructs a synthetic stand-in item for index i, used by
// the async manager to fill gaps for indices not yet loaded.
func Placeholder(i int) Item {
	return Item{ID: fmt.Sprintf("%s%d", PlaceholderPrefix, i)}
}

// Manager is the common surface both the in-memory and async data
// managers satisfy.
type Manager interface {
	// Item returns the item at index i, or a Placeholder if unloaded.
	Item(i int) Item
	// Total returns the logical item count. For an async manager whose
	// adapter has not yet reported a total, this may be 0 until the
	// first load resolves.
	Total() int
	// SetItems writes items starting at offset. A positive total sets
	// the total; with a non-positive total, InMemory raises the total to
	// offset+len(items) when that is larger and Async leaves it
	// unchanged.
	SetItems(items []Item, offset int, total int) error
	// UpdateItem replaces the item at index with a patched copy.
	// patch receives the existing item and returns the replacement.
	UpdateItem(index int, patch func(Item) Item) error
	// UpdateItemByID is a convenience wrapper that resolves id to an
	// index via a linear scan before delegating to UpdateItem. Two
	// equally valid keying schemes are observed across comparable
	// systems; this package keys primarily by index and offers id-based
	// lookup as a courtesy, since the Manager has no id index to keep
	// current.
	UpdateItemByID(id ID, patch func(Item) Item) error
	// RemoveItem deletes the item at index, shifting subsequent indices
	// down by one.
	RemoveItem(index int) error
	// Clear empties the manager: Total() becomes 0.
	Clear()
	// Reset discards all state, including any cached error.
	Reset()
	// LastError returns the most recently captured adapter error, or nil.
	LastError() error
}
