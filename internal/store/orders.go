package store

import (
	"sync"
	"time"

	"agrilink-fulfillment/internal/domain"
)

// OrderStore is the append-only order ledger. Orders are never deleted;
// status, payment fields and the logistics assignment mutate only through
// the dedicated setters.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	ids    []string // insertion order
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*domain.Order)}
}

// Insert records a new order.
func (s *OrderStore) Insert(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneOrder(&o)
	s.orders[o.ID] = cp
	s.ids = append(s.ids, o.ID)
}

// Get returns a copy of the order with the given id.
func (s *OrderStore) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return *cloneOrder(o), true
}

// SetStatus overwrites the order status. Returns false for unknown ids.
// Lifecycle validation belongs to the service layer.
func (s *OrderStore) SetStatus(id string, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Status = status
	return true
}

// SetPayment records the payment reference and its observed status on the order.
func (s *OrderStore) SetPayment(id, paymentID string, status domain.PaymentStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.PaymentID = paymentID
	o.PaymentStatus = status
	return true
}

// AttachAssignment binds a logistics assignment to the order. The status move
// to assigned goes through the ledger's transition so it is validated and
// published like any other.
func (s *OrderStore) AttachAssignment(id string, a domain.LogisticsAssignment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false
	}
	ac := a
	o.Assignment = &ac
	o.ExpectedDelivery = a.EstimatedDelivery
	return true
}

// DetachAssignment removes the assignment from the order, undoing
// AttachAssignment when the booking could not complete.
func (s *OrderStore) DetachAssignment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Assignment = nil
	o.ExpectedDelivery = time.Time{}
	return true
}

// SetAssignmentStatus updates the delivery progress of an attached assignment.
func (s *OrderStore) SetAssignmentStatus(id string, status domain.AssignmentStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || o.Assignment == nil {
		return false
	}
	o.Assignment.Status = status
	return true
}

// List returns all orders in placement order.
func (s *OrderStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *cloneOrder(s.orders[id]))
	}
	return out
}

// ListByParticipant returns orders where the user is the buyer or the seller,
// in placement order.
func (s *OrderStore) ListByParticipant(userID string, role domain.ParticipantRole) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, id := range s.ids {
		o := s.orders[id]
		switch role {
		case domain.RoleBuyer:
			if o.BuyerID != userID {
				continue
			}
		case domain.RoleSeller:
			if o.SellerID != userID {
				continue
			}
		default:
			continue
		}
		out = append(out, *cloneOrder(o))
	}
	return out
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Lines = append([]domain.OrderLine(nil), o.Lines...)
	if o.Assignment != nil {
		a := *o.Assignment
		cp.Assignment = &a
	}
	return &cp
}
