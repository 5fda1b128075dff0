package payment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// Processor simulates an asynchronous payment lifecycle. Initiate records a
// processing payment immediately; a per-payment timer settles it after the
// configured delay, at most once, and moves the order to paid on success.
type Processor struct {
	payments    paymentStore
	ledger      orderLedger
	orders      paymentRecorder
	settleDelay time.Duration
	failFn      func(p domain.Payment) bool
	failures    counter
	logger      logx.Logger
	now         func() time.Time
	newID       func() string
	newTxnID    func() string
	schedule    func(d time.Duration, fn func()) (cancel func())

	mu      sync.Mutex
	pending map[string]func() // orderID -> cancel for the in-flight payment
}

// Option configures optional Processor behavior.
type Option func(*Processor)

// WithFailure installs a failure-injection hook: settle fails for payments
// where fn returns true. The baseline processor always succeeds.
func WithFailure(fn func(p domain.Payment) bool) Option {
	return func(p *Processor) { p.failFn = fn }
}

// WithScheduler replaces the settle timer, used by tests to fire manually.
func WithScheduler(schedule func(d time.Duration, fn func()) (cancel func())) Option {
	return func(p *Processor) { p.schedule = schedule }
}

// NewProcessor creates and configures a payment Processor.
func NewProcessor(payments paymentStore, ledger orderLedger, orders paymentRecorder,
	settleDelay time.Duration, failures counter, logger logx.Logger, opts ...Option) *Processor {

	if settleDelay <= 0 {
		settleDelay = 2 * time.Second
	}
	p := &Processor{
		payments:    payments,
		ledger:      ledger,
		orders:      orders,
		settleDelay: settleDelay,
		failures:    failures,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return "PAY-" + uuid.NewString() },
		newTxnID:    func() string { return "TXN-" + uuid.NewString() },
		pending:     make(map[string]func()),
	}
	p.schedule = func(d time.Duration, fn func()) func() {
		t := time.AfterFunc(d, fn)
		return func() { t.Stop() }
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initiate starts a payment for the order. The returned payment is in the
// processing state; callers observe the terminal state via the payment query.
// Initiating confirms a pending order.
func (p *Processor) Initiate(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Payment, error) {
	if !method.Valid() {
		return domain.Payment{}, apperr.ErrInvalid
	}
	o, err := p.ledger.Get(ctx, orderID)
	if err != nil {
		return domain.Payment{}, err
	}
	if o.Status != domain.StatusPending && o.Status != domain.StatusConfirmed {
		return domain.Payment{}, apperr.ErrConflict
	}

	p.mu.Lock()
	if _, inflight := p.pending[orderID]; inflight {
		p.mu.Unlock()
		return domain.Payment{}, apperr.ErrConflict
	}
	// reserve the slot before the timer exists so a racing Initiate loses
	p.pending[orderID] = func() {}
	p.mu.Unlock()

	pay := domain.Payment{
		ID:          p.newID(),
		OrderID:     orderID,
		Amount:      o.TotalAmount,
		Method:      method,
		Status:      domain.PaymentProcessing,
		PaymentDate: p.now(),
	}
	p.payments.Insert(pay)
	p.orders.SetPayment(orderID, pay.ID, domain.PaymentProcessing)

	if o.Status == domain.StatusPending {
		if err := p.ledger.Transition(ctx, orderID, domain.StatusConfirmed); err != nil {
			p.logger.Warn("order confirm on payment initiate failed",
				logx.String("order_id", orderID),
				logx.Any("err", err),
			)
		}
	}

	cancel := p.schedule(p.settleDelay, func() { p.settle(pay.ID, orderID) })
	p.mu.Lock()
	p.pending[orderID] = cancel
	p.mu.Unlock()

	p.logger.Info("payment initiated",
		logx.String("event", "payment_initiated"),
		logx.String("payment_id", pay.ID),
		logx.String("order_id", orderID),
		logx.String("method", string(method)),
		logx.Float64("amount", pay.Amount),
	)
	return pay, nil
}

// settle resolves a payment exactly once. The store refuses a second
// resolution, so a late timer racing a cancellation is harmless.
func (p *Processor) settle(paymentID, orderID string) {
	defer p.forget(orderID)

	pay, ok := p.payments.Get(paymentID)
	if !ok {
		return
	}
	if p.failFn != nil && p.failFn(pay) {
		if !p.payments.Resolve(paymentID, domain.PaymentFailed, "") {
			return
		}
		p.orders.SetPayment(orderID, paymentID, domain.PaymentFailed)
		if p.failures != nil {
			p.failures.Inc()
		}
		p.logger.Warn("payment failed",
			logx.String("event", "payment_failed"),
			logx.String("payment_id", paymentID),
			logx.String("order_id", orderID),
		)
		return
	}

	txn := p.newTxnID()
	if !p.payments.Resolve(paymentID, domain.PaymentCompleted, txn) {
		return
	}
	p.orders.SetPayment(orderID, paymentID, domain.PaymentCompleted)
	if err := p.ledger.Transition(context.Background(), orderID, domain.StatusPaid); err != nil {
		p.logger.Error("order transition to paid failed",
			logx.String("order_id", orderID),
			logx.Any("err", err),
		)
	}
	p.logger.Info("payment completed",
		logx.String("event", "payment_completed"),
		logx.String("payment_id", paymentID),
		logx.String("order_id", orderID),
		logx.String("transaction_id", txn),
	)
}

// CancelForOrder stops the in-flight payment of a cancelled order. The
// payment record resolves to failed; a payment already settled is left alone.
func (p *Processor) CancelForOrder(_ context.Context, orderID string) {
	p.mu.Lock()
	cancel, ok := p.pending[orderID]
	delete(p.pending, orderID)
	p.mu.Unlock()
	if !ok {
		return
	}
	cancel()

	for _, pay := range p.payments.ListByOrder(orderID) {
		if pay.Status == domain.PaymentProcessing && p.payments.Resolve(pay.ID, domain.PaymentFailed, "") {
			p.orders.SetPayment(orderID, pay.ID, domain.PaymentFailed)
			p.logger.Info("in-flight payment cancelled with order",
				logx.String("payment_id", pay.ID),
				logx.String("order_id", orderID),
			)
		}
	}
}

// ListByOrder returns the payment records of an order in creation order.
func (p *Processor) ListByOrder(_ context.Context, orderID string) []domain.Payment {
	return p.payments.ListByOrder(orderID)
}

func (p *Processor) forget(orderID string) {
	p.mu.Lock()
	delete(p.pending, orderID)
	p.mu.Unlock()
}
