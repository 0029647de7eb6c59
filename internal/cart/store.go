// Package cart holds the in-memory shopping cart. The Store is an explicit,
// injectable state container: the HTTP layer creates one per shopper session
// and tests instantiate their own isolated instances.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kittipatv/pet-storefront-backend/internal/pet"
)

// Item is one cart line: a pet plus a session-unique cart id.
type Item struct {
	pet.Pet
	CartID int64 `json:"cartId"`
}

// Store is the mutable cart collection. Entries keep insertion order, and the
// total is recomputed from the current entries on every read. Carts live for
// the process lifetime only; there is no persistence.
type Store struct {
	mu      sync.RWMutex
	items   []Item
	nextID  int64
	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func())}
}

// AddItem appends the pet as a new entry with a fresh cart id and returns the
// created entry. Validation happens upstream; adding never fails.
func (s *Store) AddItem(p pet.Pet) Item {
	s.mu.Lock()
	s.nextID++
	item := Item{Pet: p, CartID: s.nextID}
	s.items = append(s.items, item)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
	return item
}

// RemoveItem removes the entry with the given cart id. A missing id is a
// silent no-op, not an error.
func (s *Store) RemoveItem(cartID int64) {
	s.mu.Lock()
	removed := false
	for i, item := range s.items {
		if item.CartID == cartID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	var subs []func()
	if removed {
		subs = s.snapshotSubs()
	}
	s.mu.Unlock()

	notify(subs)
}

// Items returns a copy of the current entries in insertion order. Mutating the
// returned slice does not affect the store.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// GetTotal sums the price of every current entry. It walks the entries each
// call rather than keeping a running counter, so it can never drift from the
// collection.
func (s *Store) GetTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price)
	}
	return total
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// Subscribe registers a callback invoked after every mutation. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with the lock held.
func (s *Store) snapshotSubs() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs callbacks outside the lock so a subscriber may call back into
// the store.
func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
