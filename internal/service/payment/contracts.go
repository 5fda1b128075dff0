package payment

import (
	"context"

	"agrilink-fulfillment/internal/domain"
)

// paymentStore defines storage operations required by the processor.
type paymentStore interface {
	Insert(p domain.Payment)
	Get(id string) (domain.Payment, bool)
	Resolve(id string, status domain.PaymentStatus, transactionID string) bool
	ListByOrder(orderID string) []domain.Payment
}

// orderLedger is the slice of the order service the processor drives.
type orderLedger interface {
	Get(ctx context.Context, id string) (domain.Order, error)
	Transition(ctx context.Context, id string, status domain.OrderStatus) error
}

// paymentRecorder mirrors the payment reference onto the order record.
type paymentRecorder interface {
	SetPayment(id, paymentID string, status domain.PaymentStatus) bool
}

// counter abstracts a metrics counter.
type counter interface {
	Inc()
}
