package handlers

import (
	"errors"
	"net/http"
	"strings"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/logx"
)

// CatalogHandler serves HTTP endpoints for product resources.
type CatalogHandler struct {
	usecase catalogUsecase
	logger  logx.Logger
}

// NewCatalogHandler wires a catalogUsecase into HTTP handlers.
func NewCatalogHandler(logger logx.Logger, uc catalogUsecase) *CatalogHandler {
	return &CatalogHandler{usecase: uc, logger: logger}
}

// Create handles POST /products.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/products/"+id)
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]string{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Get handles GET /products/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.usecase.Get(id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, productToResponse(p))
	case errors.Is(err, apperr.ErrProductNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /products with an optional farmer_id filter.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if farmerID := strings.TrimSpace(r.URL.Query().Get("farmer_id")); farmerID != "" {
		writeJSON(h.logger, w, r, http.StatusOK, productsToResponse(h.usecase.ListByFarmer(farmerID)))
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, productsToResponse(h.usecase.List()))
}

// Update handles PUT /products/{id} with partial updates from the request
// body. Only the owning farmer may update a listing.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateProductRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.Update(req.FarmerID, req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrProductNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "not the listing owner")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /products/{id}?farmer_id=.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r, "id")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	actorID := strings.TrimSpace(r.URL.Query().Get("farmer_id"))
	if actorID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "farmer_id required")
		return
	}

	err := h.usecase.Delete(actorID, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrProductNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "not the listing owner")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
