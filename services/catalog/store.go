package catalog

import (
	"sync"
)

// Store is the read-only catalog snapshot. It is populated once from
// the remote catalog service and never mutated afterwards; everything
// the storefront shows comes out of this snapshot.
type Store struct {
	mutex sync.RWMutex
	items []Product
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the snapshot with the fetched catalog.
func (s *Store) Load(items []Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items = make([]Product, len(items))
	copy(s.items, items)
}

// Items returns a copy so callers cannot observe internal mutation.
func (s *Store) Items() []Product {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]Product, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.items)
}

func (s *Store) GetProductByUID(uid string) (Product, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, product := range s.items {
		if product.UID == uid {
			return product, true
		}
	}

	return Product{}, false
}
