// internal/adapters/in/http/handlers/brand_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	branddom "flyadmin/internal/domain/brand"
)

type BrandHandler struct {
	uc *usecase.BrandUsecase
}

func NewBrandHandler(uc *usecase.BrandUsecase) http.Handler {
	return &BrandHandler{uc: uc}
}

func (h *BrandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/brands"))
	if tail != "" {
		writeNotFoundRoute(w)
		return
	}

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case id != "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && r.Method == http.MethodPut:
		h.update(w, r, id)
	case id != "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeNotFoundRoute(w)
	}
}

func (h *BrandHandler) create(w http.ResponseWriter, r *http.Request) {
	var b branddom.Brand
	if err := decodeBody(r, &b); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.uc.Create(r.Context(), b)
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *BrandHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	b, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var b branddom.Brand
	if err := decodeBody(r, &b); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.Update(r.Context(), id, b); err != nil {
		writeBrandErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BrandHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeBrandErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBrandErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, branddom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, branddom.ErrInvalidID), errors.Is(err, branddom.ErrInvalidName):
		code = http.StatusBadRequest
	}
	writeError(w, code, err)
}
