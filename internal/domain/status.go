package domain

// OrderStatus represents a stage in the order lifecycle.
type OrderStatus string

// List of possible order statuses
const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPaid      OrderStatus = "paid"
	StatusAssigned  OrderStatus = "assigned"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// List of allowed statuses
var allowedStatuses = [...]OrderStatus{
	StatusPending, StatusConfirmed, StatusPaid, StatusAssigned,
	StatusInTransit, StatusDelivered, StatusCancelled,
}

// nextStatuses is the lifecycle adjacency. Cancelled is reachable from every
// non-terminal state; delivered and cancelled are terminal.
var nextStatuses = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether the lifecycle allows moving from s to next.
// A same-status move is allowed and treated by callers as a no-op.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, v := range nextStatuses[s] {
		if v == next {
			return true
		}
	}
	return false
}
