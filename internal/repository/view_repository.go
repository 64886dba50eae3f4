package repository

import (
	"fmt"
	"strings"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

const maxViewIDLength = 63

// ViewRepository stores saved views. Views are append-only.
type ViewRepository struct {
	store *Store
}

func NewViewRepository(store *Store) *ViewRepository {
	return &ViewRepository{store: store}
}

// List returns saved views in creation order. Filters are deep copies.
func (r *ViewRepository) List() []domain.SavedView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.SavedView, len(r.store.views))
	for i, v := range r.store.views {
		v.Filters = v.Filters.Clone()
		out[i] = v
	}
	return out
}

// GetByID looks a view up by ID, ignoring case
func (r *ViewRepository) GetByID(id string) (*domain.SavedView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id = strings.TrimSpace(id)
	for _, v := range r.store.views {
		if strings.EqualFold(v.ID, id) {
			v.Filters = v.Filters.Clone()
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

// Create freezes a copy of the filters under a unique ID derived from the
// view name and stores the view
func (r *ViewRepository) Create(name string, filters domain.JobFilters) domain.SavedView {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	view := domain.SavedView{
		ID:        r.uniqueViewID(name),
		Name:      strings.TrimSpace(name),
		CreatedAt: r.store.now(),
		Filters:   filters.Clone(),
	}
	r.store.views = append(r.store.views, view)

	view.Filters = view.Filters.Clone()
	return view
}

// uniqueViewID appends -2, -3, ... to the slug until it is unused. Caller holds mu.
func (r *ViewRepository) uniqueViewID(name string) string {
	candidate := SlugifyViewID(name)
	seen := make(map[string]bool, len(r.store.views))
	for _, v := range r.store.views {
		seen[v.ID] = true
	}
	if !seen[candidate] {
		return candidate
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("-%d", i)
		base := candidate
		if len(base)+len(suffix) > maxViewIDLength {
			base = base[:maxViewIDLength-len(suffix)]
		}
		if next := base + suffix; !seen[next] {
			return next
		}
	}
}

// SlugifyViewID turns a display name into a lowercase ID of letters, digits
// and single dashes, at most 63 characters. Names with nothing usable become
// "view".
func SlugifyViewID(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(raw))
	lastDash := false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteByte(ch)
			lastDash = false
			continue
		}
		if b.Len() > 0 && !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	id := strings.Trim(b.String(), "-")
	if len(id) > maxViewIDLength {
		id = strings.TrimRight(id[:maxViewIDLength], "-")
	}
	if id == "" {
		return "view"
	}
	return id
}
