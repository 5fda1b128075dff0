package store

import (
	"context"
	"sync"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
)

// CartStore is the in-memory counterpart of repository.CartRepo, used when no
// database is configured and as a test double. Same contract, no durability.
type CartStore struct {
	mu    sync.RWMutex
	lines map[string][]domain.CartRef // userID -> lines in add order
}

// NewCartStore creates an empty CartStore.
func NewCartStore() *CartStore {
	return &CartStore{lines: make(map[string][]domain.CartRef)}
}

// Lines returns the cart lines of a user in the order they were first added.
func (s *CartStore) Lines(_ context.Context, userID string) ([]domain.CartRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartRef(nil), s.lines[userID]...), nil
}

// Line returns one cart line, or apperr.ErrNotFound when the user has no
// line for the product.
func (s *CartStore) Line(_ context.Context, userID, productID string) (domain.CartRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lines[userID] {
		if l.ProductID == productID {
			return l, nil
		}
	}
	return domain.CartRef{}, apperr.ErrNotFound
}

// Upsert writes the absolute quantity for one cart line, inserting it if absent.
func (s *CartStore) Upsert(_ context.Context, userID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lines[userID] {
		if l.ProductID == productID {
			s.lines[userID][i].Quantity = quantity
			return nil
		}
	}
	s.lines[userID] = append(s.lines[userID], domain.CartRef{ProductID: productID, Quantity: quantity})
	return nil
}

// Remove deletes one cart line. Removing an absent line is a no-op.
func (s *CartStore) Remove(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.lines[userID]
	for i, l := range lines {
		if l.ProductID == productID {
			s.lines[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear deletes all cart lines of a user.
func (s *CartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, userID)
	return nil
}
