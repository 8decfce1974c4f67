package store

import (
	"slices"
	"sync"

	"github.com/CrestNiraj12/hn/domain"
)

// MemoryStore is an in-memory app.ListingStore for tests.
type MemoryStore struct {
	mu      sync.Mutex
	listing *domain.Listing
	saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith returns a store that already holds l.
func NewMemoryStoreWith(l domain.Listing) *MemoryStore {
	s := &MemoryStore{}
	s.put(l)
	return s
}

func (s *MemoryStore) SaveListing(l domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(l)
	s.saves++
	return nil
}

func (s *MemoryStore) LoadListing() (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listing == nil {
		return domain.Listing{}, &domain.NotFoundError{What: "listing", Err: domain.ErrNoListing}
	}
	l := *s.listing
	l.IDs = slices.Clone(l.IDs)
	return l, nil
}

// Saves reports how many times SaveListing was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) put(l domain.Listing) {
	l.IDs = slices.Clone(l.IDs)
	s.listing = &l
}
