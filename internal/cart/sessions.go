package cart

import "sync"

// Sessions hands out one Store per shopper, created lazily on first use.
type Sessions struct {
	mu     sync.Mutex
	stores map[int]*Store
}

func NewSessions() *Sessions {
	return &Sessions{stores: make(map[int]*Store)}
}

func (s *Sessions) For(shopperID int) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[shopperID]
	if !ok {
		store = NewStore()
		s.stores[shopperID] = store
	}
	return store
}
