package shopper

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("shopper not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Shopper is a storefront account. Password holds the bcrypt hash and is
// stripped before anything is sent to a client.
type Shopper struct {
	ID        int    `json:"shopperId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Repository interface {
	GetByID(id int) (Shopper, error)
	GetByEmail(email string) (Shopper, error)
	Create(s Shopper) (Shopper, error)
}

// InMemoryRepository is used for tests and running without a database.
type InMemoryRepository struct {
	mu       sync.RWMutex
	shoppers []Shopper
	nextID   int
}

func NewInMemoryRepository(seed []Shopper) *InMemoryRepository {
	r := &InMemoryRepository{shoppers: make([]Shopper, 0, len(seed)), nextID: 1}
	for _, s := range seed {
		r.shoppers = append(r.shoppers, s)
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Shopper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shoppers {
		if s.ID == id {
			return s, nil
		}
	}
	return Shopper{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Shopper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shoppers {
		if s.Email == email {
			return s, nil
		}
	}
	return Shopper{}, ErrNotFound
}

func (r *InMemoryRepository) Create(s Shopper) (Shopper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	r.shoppers = append(r.shoppers, s)
	return s, nil
}
