package handlers

import (
	"errors"
	"net/http"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/logx"
)

// CartHandler serves HTTP endpoints for cart resources.
type CartHandler struct {
	usecase cartUsecase
	logger  logx.Logger
}

// NewCartHandler wires a cartUsecase into HTTP handlers.
func NewCartHandler(logger logx.Logger, uc cartUsecase) *CartHandler {
	return &CartHandler{usecase: uc, logger: logger}
}

// Get handles GET /cart/{userId}.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := idFromURL(r, "userId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	snap, err := h.usecase.Snapshot(r.Context(), userID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, cartToResponse(snap))
}

// AddItem handles POST /cart/{userId}/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := idFromURL(r, "userId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	var req addCartItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.Add(r.Context(), userID, req.ProductID, req.Quantity)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrProductNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateItem handles PUT /cart/{userId}/items/{productId}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := idFromURL(r, "userId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	productID, ok := idFromURL(r, "productId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid product id")
		return
	}
	var req updateCartItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.UpdateQuantity(r.Context(), userID, productID, req.Quantity)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrProductNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not in cart")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// RemoveItem handles DELETE /cart/{userId}/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := idFromURL(r, "userId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	productID, ok := idFromURL(r, "productId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.usecase.Remove(r.Context(), userID, productID); err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /cart/{userId}.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := idFromURL(r, "userId")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.usecase.Clear(r.Context(), userID); err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
