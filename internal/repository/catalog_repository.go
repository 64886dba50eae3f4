package repository

import "github.com/tidyhome/dashboard-api/internal/domain"

// StaffRepository reads staff members
type StaffRepository struct {
	store *Store
}

func NewStaffRepository(store *Store) *StaffRepository {
	return &StaffRepository{store: store}
}

func (r *StaffRepository) List() []domain.StaffMember {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.staff)
}

func (r *StaffRepository) GetByID(id string) (*domain.StaffMember, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for i := range r.store.staff {
		if r.store.staff[i].ID == id {
			s := r.store.staff[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// ServiceRepository reads and extends the service catalog
type ServiceRepository struct {
	store *Store
}

func NewServiceRepository(store *Store) *ServiceRepository {
	return &ServiceRepository{store: store}
}

func (r *ServiceRepository) List() []domain.Service {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.services)
}

// Create assigns a time-derived ID and appends the service
func (r *ServiceRepository) Create(svc *domain.Service) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	svc.ID = r.store.nextID()
	r.store.services = append(r.store.services, *svc)
}

// FinanceRepository reads invoices, expenses and payroll
type FinanceRepository struct {
	store *Store
}

func NewFinanceRepository(store *Store) *FinanceRepository {
	return &FinanceRepository{store: store}
}

func (r *FinanceRepository) Invoices() []domain.Invoice {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.invoices)
}

func (r *FinanceRepository) Expenses() []domain.Expense {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.expenses)
}

func (r *FinanceRepository) Payroll() []domain.PayrollEntry {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.payroll)
}
