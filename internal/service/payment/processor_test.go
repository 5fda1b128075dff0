package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/store"
)

// manualScheduler collects settle callbacks so tests decide when they fire.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (s *manualScheduler) schedule(_ time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	tm := &manualTimer{fn: fn}
	s.timers = append(s.timers, tm)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		tm.stopped = true
	}
}

// fire runs every scheduled callback not yet cancelled.
func (s *manualScheduler) fire() {
	s.mu.Lock()
	timers := s.timers
	s.timers = nil
	s.mu.Unlock()
	for _, tm := range timers {
		if !tm.stopped {
			tm.fn()
		}
	}
}

type ledgerStub struct {
	orders      *store.OrderStore
	transitions []domain.OrderStatus
}

func (l *ledgerStub) Get(_ context.Context, id string) (domain.Order, error) {
	o, ok := l.orders.Get(id)
	if !ok {
		return domain.Order{}, apperr.ErrOrderNotFound
	}
	return o, nil
}

func (l *ledgerStub) Transition(_ context.Context, id string, status domain.OrderStatus) error {
	l.transitions = append(l.transitions, status)
	if !l.orders.SetStatus(id, status) {
		return apperr.ErrOrderNotFound
	}
	return nil
}

func fixture(t *testing.T, opts ...Option) (*Processor, *store.PaymentStore, *store.OrderStore, *manualScheduler) {
	t.Helper()

	orders := store.NewOrderStore()
	orders.Insert(domain.Order{ID: "ORD-1", TotalAmount: 4000, Status: domain.StatusPending})

	payments := store.NewPaymentStore()
	sched := &manualScheduler{}
	ledger := &ledgerStub{orders: orders}

	opts = append([]Option{WithScheduler(sched.schedule)}, opts...)
	p := NewProcessor(payments, ledger, orders, time.Second, nil, logx.Nop(), opts...)
	return p, payments, orders, sched
}

func TestProcessor_Initiate_RecordsProcessing(t *testing.T) {
	t.Parallel()

	p, payments, orders, _ := fixture(t)

	pay, err := p.Initiate(context.Background(), "ORD-1", domain.MethodCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pay.Status != domain.PaymentProcessing {
		t.Fatalf("expected processing, got %s", pay.Status)
	}
	if pay.Amount != 4000 {
		t.Fatalf("amount must equal order total, got %v", pay.Amount)
	}

	stored, ok := payments.Get(pay.ID)
	if !ok || stored.Status != domain.PaymentProcessing {
		t.Fatalf("payment not observable in processing state: %+v", stored)
	}

	o, _ := orders.Get("ORD-1")
	if o.Status != domain.StatusConfirmed {
		t.Fatalf("initiate should confirm a pending order, got %s", o.Status)
	}
	if o.PaymentID != pay.ID || o.PaymentStatus != domain.PaymentProcessing {
		t.Fatalf("payment reference not mirrored on order: %+v", o)
	}
}

func TestProcessor_Settle_CompletesAndPaysOrder(t *testing.T) {
	t.Parallel()

	p, payments, orders, sched := fixture(t)

	pay, _ := p.Initiate(context.Background(), "ORD-1", domain.MethodCard)
	sched.fire()

	stored, _ := payments.Get(pay.ID)
	if stored.Status != domain.PaymentCompleted {
		t.Fatalf("expected completed, got %s", stored.Status)
	}
	if stored.TransactionID == "" {
		t.Fatal("expected a generated transaction id")
	}

	o, _ := orders.Get("ORD-1")
	if o.Status != domain.StatusPaid {
		t.Fatalf("expected order paid, got %s", o.Status)
	}

	records := p.ListByOrder(context.Background(), "ORD-1")
	if len(records) != 1 || records[0].Status != domain.PaymentCompleted {
		t.Fatalf("expected exactly one completed payment, got %+v", records)
	}
}

func TestProcessor_Settle_AtMostOnce(t *testing.T) {
	t.Parallel()

	p, payments, _, sched := fixture(t)

	pay, _ := p.Initiate(context.Background(), "ORD-1", domain.MethodUPI)
	sched.fire()

	first, _ := payments.Get(pay.ID)
	p.settle(pay.ID, "ORD-1") // a duplicate timer fire must be harmless
	second, _ := payments.Get(pay.ID)

	if first.TransactionID != second.TransactionID || second.Status != domain.PaymentCompleted {
		t.Fatalf("payment resolved twice: %+v vs %+v", first, second)
	}
}

func TestProcessor_Initiate_InvalidMethod(t *testing.T) {
	t.Parallel()

	p, _, _, _ := fixture(t)

	if _, err := p.Initiate(context.Background(), "ORD-1", "cash"); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestProcessor_Initiate_UnknownOrder(t *testing.T) {
	t.Parallel()

	p, _, _, _ := fixture(t)

	if _, err := p.Initiate(context.Background(), "ghost", domain.MethodCard); !errors.Is(err, apperr.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestProcessor_Initiate_AlreadyPaidOrder(t *testing.T) {
	t.Parallel()

	p, _, orders, _ := fixture(t)
	orders.SetStatus("ORD-1", domain.StatusPaid)

	if _, err := p.Initiate(context.Background(), "ORD-1", domain.MethodCard); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProcessor_Initiate_SecondInFlightRejected(t *testing.T) {
	t.Parallel()

	p, _, _, _ := fixture(t)

	if _, err := p.Initiate(context.Background(), "ORD-1", domain.MethodCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Initiate(context.Background(), "ORD-1", domain.MethodCard); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict for second in-flight payment, got %v", err)
	}
}

func TestProcessor_FailureInjection(t *testing.T) {
	t.Parallel()

	p, payments, orders, sched := fixture(t, WithFailure(func(domain.Payment) bool { return true }))

	pay, _ := p.Initiate(context.Background(), "ORD-1", domain.MethodCard)
	sched.fire()

	stored, _ := payments.Get(pay.ID)
	if stored.Status != domain.PaymentFailed {
		t.Fatalf("expected failed, got %s", stored.Status)
	}

	o, _ := orders.Get("ORD-1")
	if o.Status != domain.StatusConfirmed {
		t.Fatalf("failed payment must not pay the order, got %s", o.Status)
	}
	if o.PaymentStatus != domain.PaymentFailed {
		t.Fatalf("failed status not mirrored on order: %+v", o)
	}
}

func TestProcessor_CancelForOrder(t *testing.T) {
	t.Parallel()

	p, payments, orders, sched := fixture(t)

	pay, _ := p.Initiate(context.Background(), "ORD-1", domain.MethodCard)
	p.CancelForOrder(context.Background(), "ORD-1")
	sched.fire() // stopped timer must not settle

	stored, _ := payments.Get(pay.ID)
	if stored.Status != domain.PaymentFailed {
		t.Fatalf("expected cancelled payment to resolve failed, got %s", stored.Status)
	}
	o, _ := orders.Get("ORD-1")
	if o.Status == domain.StatusPaid {
		t.Fatal("cancelled payment must not pay the order")
	}

	// retry after cancellation is allowed
	if _, err := p.Initiate(context.Background(), "ORD-1", domain.MethodWallet); err != nil {
		t.Fatalf("retry after cancel should succeed: %v", err)
	}
}
