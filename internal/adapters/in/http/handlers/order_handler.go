// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	orderdom "flyadmin/internal/domain/order"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/orders"))

	switch {
	case id == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case id == "revenue" && r.Method == http.MethodGet:
		h.revenue(w, r)
	case id != "" && tail == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && tail == "status" && r.Method == http.MethodPatch:
		h.setStatus(w, r, id)
	case id != "" && tail == "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeNotFoundRoute(w)
	}
}

// GET /orders[?email=...|?status=...]
func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		orders []orderdom.Order
		err    error
	)
	switch {
	case strings.TrimSpace(q.Get("email")) != "":
		orders, err = h.uc.SearchByEmail(ctx, q.Get("email"))
	case strings.TrimSpace(q.Get("status")) != "":
		orders, err = h.uc.ListByStatus(ctx, q.Get("status"))
	default:
		orders, err = h.uc.List(ctx)
	}
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GET /orders/revenue
func (h *OrderHandler) revenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.uc.TotalRevenue(r.Context())
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// GET /orders/{id}
func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	o, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// PATCH /orders/{id}/status {"status": "..."}
func (h *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.SetStatus(r.Context(), id, body.Status); err != nil {
		writeOrderErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /orders/{id}
func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeOrderErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeOrderErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, orderdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, orderdom.ErrInvalidID), errors.Is(err, orderdom.ErrInvalidStatus):
		code = http.StatusBadRequest
	}
	writeError(w, code, err)
}
