// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	userdom "flyadmin/internal/domain/user"
)

// UserHandler serves /users: lookups, email prefix search, role patches
// and the customer's cart view.
type UserHandler struct {
	userUC  *usecase.UserUsecase
	orderUC *usecase.OrderUsecase
}

func NewUserHandler(userUC *usecase.UserUsecase, orderUC *usecase.OrderUsecase) http.Handler {
	return &UserHandler{userUC: userUC, orderUC: orderUC}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/users"))

	switch {
	case id == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case id != "" && tail == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && tail == "role" && r.Method == http.MethodPatch:
		h.setRole(w, r, id)
	case id != "" && tail == "cart" && r.Method == http.MethodGet:
		h.cart(w, r, id)
	case id != "" && tail == "cart" && r.Method == http.MethodDelete:
		h.clearCart(w, r, id)
	case id != "" && tail == "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeNotFoundRoute(w)
	}
}

// GET /users?email=prefix | ?role=admin
func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		users []userdom.User
		err   error
	)
	switch {
	case strings.TrimSpace(q.Get("email")) != "":
		users, err = h.userUC.SearchByEmail(ctx, q.Get("email"))
	case strings.TrimSpace(q.Get("role")) != "":
		users, err = h.userUC.ListByRole(ctx, q.Get("role"))
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "email or role parameter required; use /users/stream for the full list",
		})
		return
	}
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GET /users/{id}
func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	u, err := h.userUC.GetByID(r.Context(), id)
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// PATCH /users/{id}/role {"role": "admin"}
func (h *UserHandler) setRole(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Role string `json:"role"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.userUC.SetRole(r.Context(), id, body.Role); err != nil {
		writeUserErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /users/{id}/cart
func (h *UserHandler) cart(w http.ResponseWriter, r *http.Request, id string) {
	items, err := h.orderUC.Cart(r.Context(), id)
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// DELETE /users/{id}/cart
func (h *UserHandler) clearCart(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.orderUC.ClearCart(r.Context(), id); err != nil {
		writeUserErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /users/{id}
func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.userUC.Delete(r.Context(), id); err != nil {
		writeUserErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeUserErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, userdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, userdom.ErrInvalidID), errors.Is(err, userdom.ErrInvalidRole):
		code = http.StatusBadRequest
	case errors.Is(err, userdom.ErrSelfDemotion), errors.Is(err, userdom.ErrSelfDeletion):
		code = http.StatusConflict
	}
	writeError(w, code, err)
}
