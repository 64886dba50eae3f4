package repository

import "github.com/tidyhome/dashboard-api/internal/domain"

type JobRepository struct {
	store *Store
}

func NewJobRepository(store *Store) *JobRepository {
	return &JobRepository{store: store}
}

// List returns all jobs in seed order
func (r *JobRepository) List() []domain.Job {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.jobs)
}

func (r *JobRepository) GetByID(id string) (*domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for i := range r.store.jobs {
		if r.store.jobs[i].ID == id {
			j := r.store.jobs[i]
			return &j, nil
		}
	}
	return nil, ErrNotFound
}

// ListByClient returns the jobs of one client in seed order
func (r *JobRepository) ListByClient(clientID string) []domain.Job {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Job
	for _, j := range r.store.jobs {
		if j.ClientID == clientID {
			out = append(out, j)
		}
	}
	return out
}
