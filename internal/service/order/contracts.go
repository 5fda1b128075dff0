package order

import (
	"context"

	"agrilink-fulfillment/internal/domain"
)

// orderStore defines ledger storage operations required by the business layer.
type orderStore interface {
	Insert(o domain.Order)
	Get(id string) (domain.Order, bool)
	SetStatus(id string, status domain.OrderStatus) bool
	ListByParticipant(userID string, role domain.ParticipantRole) []domain.Order
}

// cartSource is the checkout-facing slice of the cart manager.
type cartSource interface {
	Snapshot(ctx context.Context, userID string) (domain.CartSnapshot, error)
	Clear(ctx context.Context, userID string) error
}

// publisher emits order lifecycle events to the bus. A nil publisher is allowed.
type publisher interface {
	Publish(ctx context.Context, e Event) error
}

// counter abstracts a metrics counter.
type counter interface {
	Inc()
}

// StatusHook runs after a successful transition into its registered status.
type StatusHook func(ctx context.Context, o domain.Order)
