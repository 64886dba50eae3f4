// Package selection tracks which records of a list are selected for bulk
// operations. The visible list is always supplied by the caller.
package selection

import "sort"

// Tracker holds a set of selected record IDs. The zero value is ready to use.
// A Tracker is owned by a single session and is not safe for concurrent use.
type Tracker struct {
	selected map[string]struct{}
}

// New returns a tracker with the given IDs selected
func New(ids ...string) *Tracker {
	t := &Tracker{}
	for _, id := range ids {
		t.add(id)
	}
	return t
}

func (t *Tracker) add(id string) {
	if t.selected == nil {
		t.selected = make(map[string]struct{})
	}
	t.selected[id] = struct{}{}
}

// Toggle selects the id if it is not selected and deselects it otherwise.
// It returns whether the id is selected afterwards.
func (t *Tracker) Toggle(id string) bool {
	if _, ok := t.selected[id]; ok {
		delete(t.selected, id)
		return false
	}
	t.add(id)
	return true
}

// ToggleSelectAll clears the selection if it is exactly the visible set,
// otherwise replaces it with the visible set. Selected IDs that are no
// longer visible are dropped by the replace.
func (t *Tracker) ToggleSelectAll(visible []string) {
	if t.AllSelected(visible) {
		t.Clear()
		return
	}
	t.selected = make(map[string]struct{}, len(visible))
	for _, id := range visible {
		t.selected[id] = struct{}{}
	}
}

// Clear deselects everything
func (t *Tracker) Clear() {
	t.selected = nil
}

// AllSelected reports whether the visible list is non-empty and the
// selection is exactly the visible set
func (t *Tracker) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(visible))
	for _, id := range visible {
		if _, ok := t.selected[id]; !ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return len(t.selected) == len(seen)
}

// Prune drops selected IDs that are not in the visible list and returns how
// many were dropped. Sessions call it whenever the active filter changes.
func (t *Tracker) Prune(visible []string) int {
	keep := make(map[string]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	dropped := 0
	for id := range t.selected {
		if _, ok := keep[id]; !ok {
			delete(t.selected, id)
			dropped++
		}
	}
	return dropped
}

// IsSelected reports whether the id is selected
func (t *Tracker) IsSelected(id string) bool {
	_, ok := t.selected[id]
	return ok
}

// Len returns the number of selected IDs
func (t *Tracker) Len() int {
	return len(t.selected)
}

// IDs returns the selected IDs in ascending order
func (t *Tracker) IDs() []string {
	ids := make([]string, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
