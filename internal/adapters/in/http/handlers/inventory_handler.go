// internal/adapters/in/http/handlers/inventory_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	inventorydom "flyadmin/internal/domain/inventory"
	productdom "flyadmin/internal/domain/product"
)

type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

func NewInventoryHandler(uc *usecase.InventoryUsecase) http.Handler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	variantID, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/inventory"))

	switch {
	case variantID != "" && tail == "" && r.Method == http.MethodGet:
		h.history(w, r, variantID)
	case variantID != "" && tail == "adjust" && r.Method == http.MethodPost:
		h.adjust(w, r, variantID)
	default:
		writeNotFoundRoute(w)
	}
}

// GET /inventory/{variantId}
func (h *InventoryHandler) history(w http.ResponseWriter, r *http.Request, variantID string) {
	logs, err := h.uc.History(r.Context(), variantID)
	if err != nil {
		writeInventoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// POST /inventory/{variantId}/adjust {"delta": -2, "reason": "...", "refId": "..."}
func (h *InventoryHandler) adjust(w http.ResponseWriter, r *http.Request, variantID string) {
	var body struct {
		Delta  int    `json:"delta"`
		Reason string `json:"reason"`
		RefID  string `json:"refId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stock, err := h.uc.Adjust(r.Context(), variantID, body.Delta, body.Reason, body.RefID)
	if err != nil {
		writeInventoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"stock": stock})
}

func writeInventoryErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, productdom.ErrVariantNotFound):
		code = http.StatusNotFound
	case errors.Is(err, inventorydom.ErrInvalidVariantID), errors.Is(err, inventorydom.ErrZeroDelta):
		code = http.StatusBadRequest
	case errors.Is(err, inventorydom.ErrInsufficientStock):
		code = http.StatusConflict
	}
	writeError(w, code, err)
}
