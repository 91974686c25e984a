// internal/adapters/in/http/handlers/banner_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	usecase "flyadmin/internal/application/usecase"
	bannerdom "flyadmin/internal/domain/banner"
	mediadom "flyadmin/internal/domain/media"
)

// BannerHandler serves /banners. Banners are created from an uploaded
// image, not from a JSON record; the picture is the banner.
type BannerHandler struct {
	uc *usecase.BannerUsecase
}

func NewBannerHandler(uc *usecase.BannerUsecase) http.Handler {
	return &BannerHandler{uc: uc}
}

func (h *BannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, tail := shiftPath(strings.TrimPrefix(r.URL.Path, "/banners"))

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case id != "" && tail == "active" && r.Method == http.MethodPatch:
		h.setActive(w, r, id)
	case id != "" && tail == "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeNotFoundRoute(w)
	}
}

// POST /banners (raw image body)
func (h *BannerHandler) create(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.uc.CreateFromImage(r.Context(), data, r.Header.Get("Content-Type"))
	if err != nil {
		writeBannerErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// PATCH /banners/{id}/active {"active": bool}
func (h *BannerHandler) setActive(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Active bool `json:"active"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.SetActive(r.Context(), id, body.Active); err != nil {
		writeBannerErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BannerHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeBannerErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBannerErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, bannerdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, bannerdom.ErrInvalidID),
		errors.Is(err, bannerdom.ErrInvalidURL),
		errors.Is(err, mediadom.ErrEmptyImage):
		code = http.StatusBadRequest
	}
	writeError(w, code, err)
}
