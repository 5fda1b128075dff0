package handlers

import (
	"errors"
	"net/http"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/logx"
)

// LogisticsHandler serves HTTP endpoints for vehicle assignments.
type LogisticsHandler struct {
	usecase logisticsUsecase
	logger  logx.Logger
}

// NewLogisticsHandler wires a logisticsUsecase into HTTP handlers.
func NewLogisticsHandler(logger logx.Logger, uc logisticsUsecase) *LogisticsHandler {
	return &LogisticsHandler{usecase: uc, logger: logger}
}

// Assign handles POST /orders/{id}/assignment.
func (h *LogisticsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	a, err := h.usecase.Assign(r.Context(), orderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
	case errors.Is(err, apperr.ErrOrderNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrNoVehicleAvailable):
		writeError(h.logger, w, r, http.StatusConflict, "no vehicle available")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order not assignable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
