package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	testlog "agrilink-fulfillment/internal/testutil"
)

type stubPaymentUsecase struct {
	initiateFn func(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Payment, error)
	listFn     func(ctx context.Context, orderID string) []domain.Payment
}

func (s *stubPaymentUsecase) Initiate(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Payment, error) {
	if s.initiateFn == nil {
		panic("Initiate not expected in this test")
	}
	return s.initiateFn(ctx, orderID, method)
}

func (s *stubPaymentUsecase) ListByOrder(ctx context.Context, orderID string) []domain.Payment {
	if s.listFn == nil {
		panic("ListByOrder not expected in this test")
	}
	return s.listFn(ctx, orderID)
}

func TestPaymentHandler_Initiate_Accepted(t *testing.T) {
	t.Parallel()

	body := `{"method": "card"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/ORD-1/payment", strings.NewReader(body))
	req = withURLParam(req, "id", "ORD-1")
	rr := httptest.NewRecorder()

	paidAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &stubPaymentUsecase{
		initiateFn: func(_ context.Context, orderID string, method domain.PaymentMethod) (domain.Payment, error) {
			require.Equal(t, "ORD-1", orderID)
			require.Equal(t, domain.MethodCard, method)
			return domain.Payment{
				ID:          "PAY-1",
				OrderID:     orderID,
				Amount:      4000,
				Method:      method,
				Status:      domain.PaymentProcessing,
				PaymentDate: paidAt,
			}, nil
		},
	}

	h := NewPaymentHandler(testlog.New().Logger(), uc)
	h.Initiate(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{
        "id": "PAY-1",
        "order_id": "ORD-1",
        "amount": 4000,
        "method": "card",
        "status": "processing",
        "payment_date": "2025-06-01T12:00:00Z"
    }`, rr.Body.String())
}

func TestPaymentHandler_Initiate_InvalidMethod(t *testing.T) {
	t.Parallel()

	body := `{"method": "cash"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/ORD-1/payment", strings.NewReader(body))
	req = withURLParam(req, "id", "ORD-1")
	rr := httptest.NewRecorder()

	uc := &stubPaymentUsecase{
		initiateFn: func(context.Context, string, domain.PaymentMethod) (domain.Payment, error) {
			return domain.Payment{}, apperr.ErrInvalid
		},
	}

	h := NewPaymentHandler(testlog.New().Logger(), uc)
	h.Initiate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid payment method"}`, rr.Body.String())
}

func TestPaymentHandler_Initiate_Conflict(t *testing.T) {
	t.Parallel()

	body := `{"method": "upi"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/ORD-1/payment", strings.NewReader(body))
	req = withURLParam(req, "id", "ORD-1")
	rr := httptest.NewRecorder()

	uc := &stubPaymentUsecase{
		initiateFn: func(context.Context, string, domain.PaymentMethod) (domain.Payment, error) {
			return domain.Payment{}, apperr.ErrConflict
		},
	}

	h := NewPaymentHandler(testlog.New().Logger(), uc)
	h.Initiate(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPaymentHandler_ListByOrder(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/orders/ORD-1/payment", nil)
	req = withURLParam(req, "id", "ORD-1")
	rr := httptest.NewRecorder()

	uc := &stubPaymentUsecase{
		listFn: func(_ context.Context, orderID string) []domain.Payment {
			require.Equal(t, "ORD-1", orderID)
			return []domain.Payment{{ID: "PAY-1", OrderID: orderID, Status: domain.PaymentCompleted}}
		},
	}

	h := NewPaymentHandler(testlog.New().Logger(), uc)
	h.ListByOrder(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"completed"`)
}
