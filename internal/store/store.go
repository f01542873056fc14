package store

import (
	"sync"

	"github.com/leandroveron1110/locus-delivery/internal/models"
)

// Orders is the canonical in-memory order list for one dashboard session.
// Mutations swap the whole slice under the lock instead of editing entries
// in place, so List readers never observe a half-applied change. Orders are
// never removed; a session that stops caring about an order simply stops
// receiving updates for it.
type Orders struct {
	mu     sync.RWMutex
	orders []models.Order
	byID   map[string]struct{}
}

func New() *Orders {
	return &Orders{byID: make(map[string]struct{})}
}

// Add inserts ord at the head of the list unless an entry with the same id
// already exists, in which case it is a no-op. Head insertion keeps the
// most recently assigned orders first.
func (s *Orders) Add(ord models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.byID[ord.ID]; dup {
		return false
	}

	next := make([]models.Order, 0, len(s.orders)+1)
	next = append(next, ord)
	next = append(next, s.orders...)
	s.orders = next
	s.byID[ord.ID] = struct{}{}
	return true
}

// UpdateStatus replaces the status of the entry with the given id, leaving
// every other field untouched. Unknown ids are silently dropped: a push
// event may legitimately race ahead of the initial fetch.
//
// The write is unconditional. Events carry no sequence number, so a stale
// push arriving after a confirmed transition wins until the next update.
func (s *Orders) UpdateStatus(id string, status models.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}

	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			break
		}
	}
	s.orders = next
	return true
}

// List returns a snapshot of the current order sequence, newest first.
func (s *Orders) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *Orders) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byID[id]; !ok {
		return models.Order{}, false
	}
	for _, ord := range s.orders {
		if ord.ID == id {
			return ord, true
		}
	}
	return models.Order{}, false
}

func (s *Orders) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Reset discards the whole store. Used when the session switches to a
// different company; individual orders are never pruned.
func (s *Orders) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.byID = make(map[string]struct{})
}
