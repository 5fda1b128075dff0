package handlers

import (
	"errors"
	"net/http"
	"strings"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// OrderHandler serves HTTP endpoints for order resources.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler wires an orderUsecase into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logger}
}

// Place handles POST /orders: checkout of the buyer's cart.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.PlaceOrder(r.Context(), req.Buyer.toModel(), req.DeliveryInstructions)
	switch {
	case err == nil:
		w.Header().Set("Location", "/orders/"+id)
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]string{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrEmptyCart):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "cart is empty")
	case errors.Is(err, apperr.ErrMixedSellerCart):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "cart mixes sellers")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
	case errors.Is(err, apperr.ErrOrderNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /orders?user_id=&role=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := strings.TrimSpace(q.Get("user_id"))
	role := domain.ParticipantRole(strings.TrimSpace(q.Get("role")))

	list, err := h.usecase.ListByParticipant(r.Context(), userID, role)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "user_id and role required")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// TransitionStatus handles PATCH /orders/{id}/status.
func (h *OrderHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req transitionOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.Transition(r.Context(), id, domain.OrderStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": req.Status})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
	case errors.Is(err, apperr.ErrOrderNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeError(h.logger, w, r, http.StatusConflict, "transition not allowed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
