package tableview

import "sort"

// SelectionMode is the policy for how many rows may be marked selected.
type SelectionMode int

const (
	// SelectionNone disables row selection.
	SelectionNone SelectionMode = iota
	// SelectionSingle keeps at most one selected row.
	SelectionSingle
	// SelectionMultiple toggles membership per row independently.
	SelectionMultiple
)

// Selection tracks selected row ids independently of pagination: a selected
// row stays selected when it scrolls off the current page.
type Selection struct {
	mode SelectionMode
	ids  map[string]struct{}
}

// NewSelection creates an empty selection with the given mode.
func NewSelection(mode SelectionMode) *Selection {
	return &Selection{mode: mode, ids: make(map[string]struct{})}
}

// Mode returns the active selection mode.
func (s *Selection) Mode() SelectionMode {
	return s.mode
}

// SetMode switches the selection policy. Switching to none clears the set;
// switching single↔multiple does not retroactively clamp an oversized set,
// the next selection event enforces the new policy.
func (s *Selection) SetMode(mode SelectionMode) {
	s.mode = mode
	if mode == SelectionNone {
		s.ids = make(map[string]struct{})
	}
}

// Toggle flips the selected state of one row under the active policy. In
// single mode selecting a new row replaces the previous selection.
func (s *Selection) Toggle(id string) {
	switch s.mode {
	case SelectionNone:
		return
	case SelectionSingle:
		if _, ok := s.ids[id]; ok {
			delete(s.ids, id)
			return
		}
		s.ids = map[string]struct{}{id: {}}
	case SelectionMultiple:
		if _, ok := s.ids[id]; ok {
			delete(s.ids, id)
			return
		}
		s.ids[id] = struct{}{}
	}
}

// SelectPage marks every given row selected. Callers pass the ids of the
// current page only; rows on other pages are unaffected. No-op outside
// multiple mode.
func (s *Selection) SelectPage(ids []string) {
	if s.mode != SelectionMultiple {
		return
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// DeselectPage removes every given row from the selection.
func (s *Selection) DeselectPage(ids []string) {
	if s.mode != SelectionMultiple {
		return
	}
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Remove drops an id unconditionally, regardless of mode. Used for eager
// cleanup when a row is deleted.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// Has reports whether the row is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected rows.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
