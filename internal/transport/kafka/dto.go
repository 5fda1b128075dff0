package kafka

import (
	"time"

	"agrilink-fulfillment/internal/service/order"
)

// EventDTO is the wire shape of an order lifecycle event.
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomain converts order.Event to its wire shape.
func FromDomain(e order.Event) EventDTO {
	return EventDTO{
		OrderID:   e.OrderID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}
