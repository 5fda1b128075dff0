package store

import (
	"sync"

	"agrilink-fulfillment/internal/domain"
)

// PaymentStore holds payment records. A record is resolved at most once:
// Resolve refuses to touch a payment already in a terminal state.
type PaymentStore struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
	ids      []string // insertion order
}

// NewPaymentStore creates an empty PaymentStore.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{payments: make(map[string]*domain.Payment)}
}

// Insert records a new payment.
func (s *PaymentStore) Insert(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.payments[p.ID] = &cp
	s.ids = append(s.ids, p.ID)
}

// Get returns a copy of the payment with the given id.
func (s *PaymentStore) Get(id string) (domain.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return domain.Payment{}, false
	}
	return *p, true
}

// Resolve moves a payment to a terminal state exactly once. Returns false if
// the payment is unknown or already terminal.
func (s *PaymentStore) Resolve(id string, status domain.PaymentStatus, transactionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok || p.Status.Terminal() {
		return false
	}
	p.Status = status
	p.TransactionID = transactionID
	return true
}

// ListByOrder returns payments for the order in creation order.
func (s *PaymentStore) ListByOrder(orderID string) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, 0)
	for _, id := range s.ids {
		if p := s.payments[id]; p.OrderID == orderID {
			out = append(out, *p)
		}
	}
	return out
}
