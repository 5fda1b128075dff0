package handlers

import (
	"errors"
	"net/http"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// PaymentHandler serves HTTP endpoints for order payments.
type PaymentHandler struct {
	usecase paymentUsecase
	logger  logx.Logger
}

// NewPaymentHandler wires a paymentUsecase into HTTP handlers.
func NewPaymentHandler(logger logx.Logger, uc paymentUsecase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, logger: logger}
}

// Initiate handles POST /orders/{id}/payment. Settlement is asynchronous,
// so the accepted payment comes back 202 in the processing state.
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	var req initiatePaymentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	pay, err := h.usecase.Initiate(r.Context(), orderID, domain.PaymentMethod(req.Method))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusAccepted, paymentToResponse(pay))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid payment method")
	case errors.Is(err, apperr.ErrOrderNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order not payable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ListByOrder handles GET /orders/{id}/payment.
func (h *PaymentHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, paymentsToResponse(h.usecase.ListByOrder(r.Context(), orderID)))
}
