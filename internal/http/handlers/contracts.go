package handlers

import (
	"context"

	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/service/cart"
	"agrilink-fulfillment/internal/service/catalog"
	"agrilink-fulfillment/internal/service/logistics"
	"agrilink-fulfillment/internal/service/order"
	"agrilink-fulfillment/internal/service/payment"
)

type catalogUsecase interface {
	Create(p domain.Product) (string, error)
	Get(id string) (domain.Product, error)
	List() []domain.Product
	ListByFarmer(farmerID string) []domain.Product
	Update(actorID string, u domain.PartialProductUpdate) error
	Delete(actorID, id string) error
}

// NewCatalogUsecase wires a catalog Service into a catalogUsecase.
func NewCatalogUsecase(svc *catalog.Service) catalogUsecase {
	return svc
}

type cartUsecase interface {
	Add(ctx context.Context, userID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
	Snapshot(ctx context.Context, userID string) (domain.CartSnapshot, error)
}

// NewCartUsecase wires a cart Manager into a cartUsecase.
func NewCartUsecase(m *cart.Manager) cartUsecase {
	return m
}

type orderUsecase interface {
	PlaceOrder(ctx context.Context, buyer domain.Buyer, instructions string) (string, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Transition(ctx context.Context, id string, status domain.OrderStatus) error
	ListByParticipant(ctx context.Context, userID string, role domain.ParticipantRole) ([]domain.Order, error)
}

// NewOrderUsecase wires an order Ledger into an orderUsecase.
func NewOrderUsecase(l *order.Ledger) orderUsecase {
	return l
}

type paymentUsecase interface {
	Initiate(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Payment, error)
	ListByOrder(ctx context.Context, orderID string) []domain.Payment
}

// NewPaymentUsecase wires a payment Processor into a paymentUsecase.
func NewPaymentUsecase(p *payment.Processor) paymentUsecase {
	return p
}

type logisticsUsecase interface {
	Assign(ctx context.Context, orderID string) (domain.LogisticsAssignment, error)
}

// NewLogisticsUsecase wires an Assigner into a logisticsUsecase.
func NewLogisticsUsecase(a *logistics.Assigner) logisticsUsecase {
	return a
}
