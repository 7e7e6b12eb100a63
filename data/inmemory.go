package data

import "fmt"

// IndexOutOfRangeError is returned by UpdateItem/RemoveItem when index
// falls outside [0, Total()).
type IndexOutOfRangeError struct {
	Index int
	Total int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("data: index %d out of range [0, %d)", e.Index, e.Total)
}

// NotFoundError is returned by UpdateItemByID when no item carries id.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("data: no item with id %q", e.ID)
}

// InMemory is a Manager backed by a dense slice, the variant used when no
// adapter is configured.
type InMemory struct {
	items []Item
	total int
}

// NewInMemory constructs an InMemory manager over an initial item slice.
func NewInMemory(items []Item) *InMemory {
	m := &InMemory{}
	m.items = append([]Item(nil), items...)
	m.total = len(m.items)
	return m
}

func (m *InMemory) Item(i int) Item {
	if i < 0 || i >= len(m.items) {
		return Placeholder(i)
	}
	return m.items[i]
}

func (m *InMemory) Total() int { return m.total }

// SetItems writes items starting at offset, growing the backing slice as
// needed. A positive total sets Total(); a non-positive total raises
// Total() to offset+len(items) when that is larger and otherwise leaves
// it unchanged.
func (m *InMemory) SetItems(items []Item, offset int, total int) error {
	if offset < 0 {
		offset = 0
	}
	needed := offset + len(items)
	if total > 0 && total > needed {
		needed = total
	}
	if needed > len(m.items) {
		grown := make([]Item, needed)
		copy(grown, m.items)
		m.items = grown
	}
	copy(m.items[offset:], items)
	if total > 0 {
		m.total = total
	} else if needed > m.total {
		m.total = needed
	}
	if m.total > len(m.items) {
		m.total = len(m.items)
	}
	return nil
}

func (m *InMemory) UpdateItem(index int, patch func(Item) Item) error {
	if index < 0 || index >= m.total {
		return &IndexOutOfRangeError{Index: index, Total: m.total}
	}
	m.items[index] = patch(m.items[index])
	return nil
}

func (m *InMemory) UpdateItemByID(id ID, patch func(Item) Item) error {
	for i := 0; i < m.total; i++ {
		if m.items[i].ID == id {
			return m.UpdateItem(i, patch)
		}
	}
	return &NotFoundError{ID: id}
}

func (m *InMemory) RemoveItem(index int) error {
	if index < 0 || index >= m.total {
		return &IndexOutOfRangeError{Index: index, Total: m.total}
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	m.total--
	return nil
}

func (m *InMemory) Clear() {
	m.items = nil
	m.total = 0
}

func (m *InMemory) Reset() {
	m.Clear()
}

func (m *InMemory) LastError() error { return nil }

var _ Manager = (*InMemory)(nil)
