// internal/adapters/in/http/handlers/category_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	categorydom "flyadmin/internal/domain/category"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) http.Handler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/categories"))
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

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var c categorydom.Category
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.uc.Create(r.Context(), c)
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	c, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var c categorydom.Category
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.Update(r.Context(), id, c); err != nil {
		writeCategoryErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeCategoryErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCategoryErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, categorydom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, categorydom.ErrInvalidID), errors.Is(err, categorydom.ErrInvalidName):
		code = http.StatusBadRequest
	}
	writeError(w, code, err)
}
