package store

import (
	"sync"

	"agrilink-fulfillment/internal/domain"
)

// CatalogStore owns the product listings. Mutation authorization (only the
// owning producer may edit) is enforced in the catalog service.
type CatalogStore struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	ids      []string // insertion order
}

// NewCatalogStore creates an empty CatalogStore.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{products: make(map[string]*domain.Product)}
}

// Insert records a new product listing.
func (s *CatalogStore) Insert(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	if _, ok := s.products[p.ID]; !ok {
		s.ids = append(s.ids, p.ID)
	}
	s.products[p.ID] = &cp
}

// Get returns a copy of the product with the given id.
func (s *CatalogStore) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, false
	}
	return *p, true
}

// Update applies a partial update and returns true if the product exists.
func (s *CatalogStore) Update(u domain.PartialProductUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[u.ID]
	if !ok {
		return false
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Unit != nil {
		p.Unit = *u.Unit
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.ExpiryDate != nil {
		p.ExpiryDate = *u.ExpiryDate
	}
	if u.OrganicCertified != nil {
		p.OrganicCertified = *u.OrganicCertified
	}
	if u.MinimumOrder != nil {
		p.MinimumOrder = *u.MinimumOrder
	}
	if u.AvailableQuantity != nil {
		p.AvailableQuantity = *u.AvailableQuantity
	}
	if u.QualityGrade != nil {
		p.QualityGrade = *u.QualityGrade
	}
	if u.StorageConditions != nil {
		p.StorageConditions = *u.StorageConditions
	}
	return true
}

// Delete removes a product listing and returns true if it existed.
func (s *CatalogStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// List returns all products in insertion order.
func (s *CatalogStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.products[id])
	}
	return out
}

// ListByFarmer returns the products owned by the given producer, in insertion order.
func (s *CatalogStore) ListByFarmer(farmerID string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, id := range s.ids {
		if p := s.products[id]; p.FarmerID == farmerID {
			out = append(out, *p)
		}
	}
	return out
}
