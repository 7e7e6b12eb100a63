// Package selection implements the optional selection-state feature:
// a set of selected item ids, an optional focused index, and a
// selection:change event, independent of any renderer.
package selection

import (
	"sort"

	"github.com/vlist-engine/vlist/eventbus"
)

// Mode controls how many items may be selected at once.
type Mode int

const (
	// ModeNone disables selection entirely; every mutating call is a
	// no-op.
	ModeNone Mode = iota
	ModeSingle
	ModeMultiple
)

// ChangeEvent is the selection:change event payload.
type ChangeEvent struct {
	Selected []string
}

// Selection tracks selected item ids and an optional focused index for
// one list instance.
type Selection struct {
	Mode Mode
	Bus  eventbus.Bus[ChangeEvent]

	selected map[string]struct{}
	focused  int
}

// NewSelection constructs a Selection in the given mode. Use the zero
// value of Mode (ModeNone) to build a list with selection support wired
// in but inert.
func NewSelection(mode Mode) *Selection {
	return &Selection{
		Mode:     mode,
		selected: make(map[string]struct{}),
		focused:  -1,
	}
}

// IsSelected reports whether id is currently selected.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Select adds id to the selection. In ModeSingle any previously selected
// id is replaced. In ModeNone this is a no-op. Emits selection:change
// whenever the selected set actually changes.
func (s *Selection) Select(id string) {
	switch s.Mode {
	case ModeNone:
		return
	case ModeSingle:
		if s.IsSelected(id) {
			return
		}
		s.selected = map[string]struct{}{id: {}}
	case ModeMultiple:
		if s.IsSelected(id) {
			return
		}
		s.selected[id] = struct{}{}
	}
	s.emit()
}

// Deselect removes id from the selection, if present.
func (s *Selection) Deselect(id string) {
	if s.Mode == ModeNone {
		return
	}
	if !s.IsSelected(id) {
		return
	}
	delete(s.selected, id)
	s.emit()
}

// Toggle selects id if unselected, deselects it otherwise.
func (s *Selection) Toggle(id string) {
	if s.IsSelected(id) {
		s.Deselect(id)
		return
	}
	s.Select(id)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.selected) == 0 {
		return
	}
	s.selected = make(map[string]struct{})
	s.emit()
}

// SelectedIDs returns the current selection as a sorted slice, for
// deterministic event payloads and tests.
func (s *Selection) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Focused returns the focused index, or -1 if none.
func (s *Selection) Focused() int { return s.focused }

// SetFocused sets the focused index. Passing a negative value clears
// focus.
func (s *Selection) SetFocused(i int) {
	if i < 0 {
		i = -1
	}
	s.focused = i
}

func (s *Selection) emit() {
	s.Bus.Emit(ChangeEvent{Selected: s.SelectedIDs()})
}
