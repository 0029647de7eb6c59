package pet

import (
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	List() []Pet
	GetByID(id string) (Pet, error)
	Create(p Pet) (Pet, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Pet
}

func NewInMemoryRepository(seed []Pet) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Pet, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Pet, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Pet) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// ids normally come from the submission service; generate one only as a
	// fallback so direct seeding cannot produce an unaddressable pet
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.storage = append(r.storage, p)
	return p, nil
}
