// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	mediadom "flyadmin/internal/domain/media"
	productdom "flyadmin/internal/domain/product"
)

// ProductHandler serves /products: product CRUD plus the nested variant and
// image routes.
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/products")
	id, tail := shiftPath(rest)

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case id != "" && tail == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && tail == "" && r.Method == http.MethodPut:
		h.update(w, r, id)
	case id != "" && tail == "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	case tail == "variants" && r.Method == http.MethodGet:
		h.listVariants(w, r, id)
	case tail == "variants" && r.Method == http.MethodPost:
		h.createVariant(w, r, id)
	case strings.HasPrefix(tail, "variants/") && r.Method == http.MethodPut:
		h.updateVariant(w, r, id, strings.TrimPrefix(tail, "variants/"))
	case strings.HasPrefix(tail, "variants/") && r.Method == http.MethodDelete:
		h.deleteVariant(w, r, id, strings.TrimPrefix(tail, "variants/"))
	case tail == "images" && r.Method == http.MethodPost:
		h.uploadImage(w, r, id)
	case tail == "images" && r.Method == http.MethodDelete:
		h.removeImage(w, r, id)
	default:
		writeNotFoundRoute(w)
	}
}

// POST /products
func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var p productdom.Product
	if err := decodeBody(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.uc.Create(r.Context(), p)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GET /products/{id}
func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT /products/{id}
func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var p productdom.Product
	if err := decodeBody(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.Update(r.Context(), id, p); err != nil {
		writeProductErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /products/{id}
func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeProductErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /products/{id}/variants
func (h *ProductHandler) listVariants(w http.ResponseWriter, r *http.Request, productID string) {
	vs, err := h.uc.ListVariants(r.Context(), productID)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vs)
}

// POST /products/{id}/variants
func (h *ProductHandler) createVariant(w http.ResponseWriter, r *http.Request, productID string) {
	var v productdom.ProductVariant
	if err := decodeBody(r, &v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v.ProductID = productID
	id, err := h.uc.CreateVariant(r.Context(), v)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// PUT /products/{id}/variants/{vid}
func (h *ProductHandler) updateVariant(w http.ResponseWriter, r *http.Request, productID, variantID string) {
	var v productdom.ProductVariant
	if err := decodeBody(r, &v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v.ProductID = productID
	if err := h.uc.UpdateVariant(r.Context(), variantID, v); err != nil {
		writeProductErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /products/{id}/variants/{vid}
func (h *ProductHandler) deleteVariant(w http.ResponseWriter, r *http.Request, productID, variantID string) {
	if err := h.uc.DeleteVariant(r.Context(), variantID, productID); err != nil {
		writeProductErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /products/{id}/images (raw image body, Content-Type image/*)
func (h *ProductHandler) uploadImage(w http.ResponseWriter, r *http.Request, productID string) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	url, err := h.uc.UploadImage(r.Context(), productID, data, r.Header.Get("Content-Type"))
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// DELETE /products/{id}/images?url=...
func (h *ProductHandler) removeImage(w http.ResponseWriter, r *http.Request, productID string) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing url parameter"})
		return
	}
	if err := h.uc.RemoveImage(r.Context(), productID, url); err != nil {
		writeProductErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeProductErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, productdom.ErrNotFound), errors.Is(err, productdom.ErrVariantNotFound):
		code = http.StatusNotFound
	case errors.Is(err, productdom.ErrInvalidID),
		errors.Is(err, productdom.ErrInvalidTitle),
		errors.Is(err, productdom.ErrInvalidPrice),
		errors.Is(err, productdom.ErrInvalidVariantID),
		errors.Is(err, productdom.ErrInvalidProductRef),
		errors.Is(err, mediadom.ErrEmptyImage),
		errors.Is(err, mediadom.ErrUnsupportedURL):
		code = http.StatusBadRequest
	}
	writeError(w, code, err)
}
