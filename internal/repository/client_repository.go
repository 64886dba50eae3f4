package repository

import (
	"errors"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// ErrNotFound is returned when no record has the requested ID
var ErrNotFound = errors.New("record not found")

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

// List returns all clients in seed order
func (r *ClientRepository) List() []domain.Client {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return snapshot(r.store.clients)
}

func (r *ClientRepository) GetByID(id string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for i := range r.store.clients {
		if r.store.clients[i].ID == id {
			c := r.store.clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns an ID and creation time and appends the client
func (r *ClientRepository) Create(client *domain.Client) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	client.ID = r.store.nextID()
	client.CreatedAt = r.store.now()
	r.store.clients = append(r.store.clients, *client)
}

func (r *ClientRepository) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.clients)
}
