// Package repository is the in-memory record store the dashboard reads from.
// Records come from the seed data set and live for the life of the process.
package repository

import (
	"strconv"
	"sync"
	"time"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/seed"
)

// Store holds every record in memory. Readers get copies of the slices so a
// filter pass never races with a create.
type Store struct {
	mu       sync.RWMutex
	clients  []domain.Client
	jobs     []domain.Job
	staff    []domain.StaffMember
	services []domain.Service
	invoices []domain.Invoice
	expenses []domain.Expense
	payroll  []domain.PayrollEntry
	views    []domain.SavedView

	now    func() time.Time
	lastID int64
}

// NewStore builds a store from a seed data set
func NewStore(ds *seed.Dataset) *Store {
	return &Store{
		clients:  ds.Clients,
		jobs:     ds.Jobs,
		staff:    ds.Staff,
		services: ds.Services,
		invoices: ds.Invoices,
		expenses: ds.Expenses,
		payroll:  ds.Payroll,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for new IDs and timestamps
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

// nextID derives an ID from the current time in milliseconds, bumped when
// two records are created within the same millisecond. Caller holds mu.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func snapshot[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
