package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// Ledger owns order creation and the status lifecycle. Orders are append-only:
// once placed, only explicit transitions and the logistics assignment mutate
// them.
type Ledger struct {
	orders    orderStore
	cart      cartSource
	publisher publisher
	placed    counter
	logger    logx.Logger
	now       func() time.Time
	newID     func() string
	hooks     map[domain.OrderStatus][]StatusHook
}

// NewLedger creates and configures an order Ledger.
func NewLedger(orders orderStore, cart cartSource, pub publisher, placed counter, logger logx.Logger) *Ledger {
	return &Ledger{
		orders:    orders,
		cart:      cart,
		publisher: pub,
		placed:    placed,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return "ORD-" + uuid.NewString() },
		hooks:     make(map[domain.OrderStatus][]StatusHook),
	}
}

// OnStatus registers a hook to run after every successful transition into
// status. Used to wire payment cancellation and vehicle release without a
// dependency cycle; call before serving traffic.
func (l *Ledger) OnStatus(status domain.OrderStatus, fn StatusHook) {
	l.hooks[status] = append(l.hooks[status], fn)
}

// PlaceOrder snapshots the buyer's cart into a new pending order and clears
// the cart. The cart must be non-empty and single-seller; buyer and seller
// identities are copied, never referenced.
func (l *Ledger) PlaceOrder(ctx context.Context, buyer domain.Buyer, instructions string) (string, error) {
	if strings.TrimSpace(buyer.ID) == "" {
		return "", apperr.ErrInvalid
	}
	if !buyer.Coordinates.Valid() {
		return "", apperr.ErrInvalid
	}

	snap, err := l.cart.Snapshot(ctx, buyer.ID)
	if err != nil {
		return "", err
	}
	if len(snap.Lines) == 0 {
		return "", apperr.ErrEmptyCart
	}

	seller := snap.Lines[0].Product
	for _, line := range snap.Lines[1:] {
		if line.Product.FarmerID != seller.FarmerID {
			return "", apperr.ErrMixedSellerCart
		}
	}

	o := domain.Order{
		ID:                   l.newID(),
		BuyerID:              buyer.ID,
		BuyerName:            buyer.Name,
		BuyerPhone:           buyer.Phone,
		BuyerAddress:         buyer.Address,
		BuyerCoordinates:     buyer.Coordinates,
		SellerID:             seller.FarmerID,
		SellerName:           seller.FarmerName,
		SellerPhone:          seller.FarmerPhone,
		SellerAddress:        seller.Location,
		SellerCoordinates:    seller.Coordinates,
		Lines:                make([]domain.OrderLine, 0, len(snap.Lines)),
		TotalAmount:          snap.TotalAmount,
		TotalWeight:          snap.TotalWeight,
		Status:               domain.StatusPending,
		OrderDate:            l.now(),
		DeliveryInstructions: instructions,
	}
	for _, line := range snap.Lines {
		o.Lines = append(o.Lines, domain.OrderLine{
			Product:   line.Product,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: line.Subtotal(),
		})
	}

	l.orders.Insert(o)
	if err := l.cart.Clear(ctx, buyer.ID); err != nil {
		// the order stands; a stale cart is recoverable, a lost order is not
		l.logger.Warn("cart clear failed after checkout",
			logx.String("order_id", o.ID),
			logx.Any("err", err),
		)
	}
	if l.placed != nil {
		l.placed.Inc()
	}
	l.publish(ctx, o.ID, domain.StatusPending)

	l.logger.Info("order placed",
		logx.String("event", "order_placed"),
		logx.String("order_id", o.ID),
		logx.String("buyer_id", o.BuyerID),
		logx.String("seller_id", o.SellerID),
		logx.Float64("total_amount", o.TotalAmount),
		logx.Float64("total_weight_kg", o.TotalWeight),
	)
	return o.ID, nil
}

// Get retrieves an order by its id.
func (l *Ledger) Get(_ context.Context, id string) (domain.Order, error) {
	o, ok := l.orders.Get(id)
	if !ok {
		return domain.Order{}, apperr.ErrOrderNotFound
	}
	return o, nil
}

// Transition moves an order to newStatus, enforcing the lifecycle adjacency.
// A same-status transition is an accepted no-op with no side effects.
func (l *Ledger) Transition(ctx context.Context, id string, newStatus domain.OrderStatus) error {
	if !newStatus.Valid() {
		return apperr.ErrInvalid
	}
	o, ok := l.orders.Get(id)
	if !ok {
		return apperr.ErrOrderNotFound
	}
	if o.Status == newStatus {
		return nil
	}
	if !o.Status.CanTransition(newStatus) {
		return apperr.ErrInvalidTransition
	}
	if !l.orders.SetStatus(id, newStatus) {
		return apperr.ErrOrderNotFound
	}

	o.Status = newStatus
	l.publish(ctx, id, newStatus)
	for _, fn := range l.hooks[newStatus] {
		fn(ctx, o)
	}

	l.logger.Info("order status changed",
		logx.String("event", "order_status_changed"),
		logx.String("order_id", id),
		logx.String("status", string(newStatus)),
	)
	return nil
}

// ListByParticipant returns the orders a user participates in, in placement order.
func (l *Ledger) ListByParticipant(_ context.Context, userID string, role domain.ParticipantRole) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" || !role.Valid() {
		return nil, apperr.ErrInvalid
	}
	return l.orders.ListByParticipant(userID, role), nil
}

func (l *Ledger) publish(ctx context.Context, orderID string, status domain.OrderStatus) {
	if l.publisher == nil {
		return
	}
	e := Event{OrderID: orderID, Status: string(status), CreatedAt: l.now()}
	if err := l.publisher.Publish(ctx, e); err != nil {
		l.logger.Warn("order event publish failed",
			logx.String("order_id", orderID),
			logx.String("status", string(status)),
			logx.Any("err", err),
		)
	}
}
