// Package session keeps the per-dashboard state the query engine works
// against: active filters, the client selection and the column layout.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidyhome/dashboard-api/internal/columns"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/selection"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or expired session IDs
var ErrSessionNotFound = errors.New("session not found")

// Session is the state of one dashboard. It is only touched through
// Store.With, which serializes access.
type Session struct {
	ID          string
	JobFilters  domain.JobFilters
	ClientQuery domain.ClientQuery
	Selection   *selection.Tracker
	Columns     *columns.Config
	CreatedAt   time.Time
	LastSeen    time.Time
}

// ApplyClientQuery replaces the client filter and drops selected clients the
// new filter hides. Returns how many were dropped.
func (s *Session) ApplyClientQuery(q domain.ClientQuery, visible []string) int {
	s.ClientQuery = q.Clone()
	return s.Selection.Prune(visible)
}

// ApplyJobFilters replaces the job filter with a copy of f
func (s *Session) ApplyJobFilters(f domain.JobFilters) {
	s.JobFilters = f.Clone()
}

// ApplyView copies a saved view's snapshot into the job filter
func (s *Session) ApplyView(v *domain.SavedView) {
	s.ApplyJobFilters(v.Filters)
}

// Snapshot returns a copy of the session state safe to hand out
func (s *Session) Snapshot(visible []string) domain.SessionDTO {
	cols := s.Columns.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return domain.SessionDTO{
		ID:          s.ID,
		JobFilters:  s.JobFilters.Clone(),
		ClientQuery: s.ClientQuery.Clone(),
		Selection:   s.Selection.IDs(),
		AllSelected: s.Selection.AllSelected(visible),
		Columns:     names,
	}
}

// Store holds every live session
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

// NewStore creates a store whose sessions expire after idleTimeout without use
func NewStore(idleTimeout time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

// SetClock replaces the time source
func (st *Store) SetClock(now func() time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.now = now
}

// Create starts a session with empty filters, no selection and the default columns
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	s := &Session{
		ID: uuid.NewString(),
		JobFilters: domain.JobFilters{
			Status: domain.FilterAll,
		},
		ClientQuery: domain.ClientQuery{
			Type:     domain.FilterAll,
			Advanced: domain.ClientAdvancedFilters{Status: domain.FilterAll, BalanceStatus: domain.BalanceStatusAll},
		},
		Selection: selection.New(),
		Columns:   columns.NewConfig(),
		CreatedAt: now,
		LastSeen:  now,
	}
	st.sessions[s.ID] = s

	st.logger.Debug("session created", zap.String("session_id", s.ID))
	return s
}

// With runs fn against the session while holding the store lock and marks
// the session as seen. fn must not keep the pointer.
func (st *Store) With(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.LastSeen = st.now()
	return fn(s)
}

// Exists reports whether id names a live session
func (st *Store) Exists(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	return ok
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// SweepIdle drops sessions last seen more than the idle timeout before now.
// Returns the number removed.
func (st *Store) SweepIdle(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.LastSeen) > st.idleTimeout {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		st.logger.Info("idle sessions swept", zap.Int("removed", removed), zap.Int("remaining", len(st.sessions)))
	}
	return removed
}
