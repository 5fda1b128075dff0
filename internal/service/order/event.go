package order

import "time"

// Event is a single order lifecycle event as published to the bus.
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
