// internal/adapters/in/http/handlers/stream_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	query "flyadmin/internal/application/query"
	usecase "flyadmin/internal/application/usecase"
	common "flyadmin/internal/domain/common"
	productdom "flyadmin/internal/domain/product"
	userdom "flyadmin/internal/domain/user"
)

// StreamHandler serves the live snapshot endpoints as server-sent events:
//
//	GET /products/stream?q=&brandId=&categoryId=&minRating=&sort=
//	GET /users/stream
//	GET /orders/stream
//
// Each event carries the full composed list; clients replace, never merge.
type StreamHandler struct {
	productUC  *usecase.ProductUsecase
	brandUC    *usecase.BrandUsecase
	categoryUC *usecase.CategoryUsecase
	userUC     *usecase.UserUsecase
	orderUC    *usecase.OrderUsecase
}

func NewStreamHandler(
	productUC *usecase.ProductUsecase,
	brandUC *usecase.BrandUsecase,
	categoryUC *usecase.CategoryUsecase,
	userUC *usecase.UserUsecase,
	orderUC *usecase.OrderUsecase,
) http.Handler {
	return &StreamHandler{
		productUC:  productUC,
		brandUC:    brandUC,
		categoryUC: categoryUC,
		userUC:     userUC,
		orderUC:    orderUC,
	}
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeNotFoundRoute(w)
		return
	}
	kind, tail := shiftPath(r.URL.Path)
	if tail != "stream" {
		writeNotFoundRoute(w)
		return
	}

	switch kind {
	case "products":
		h.products(w, r)
	case "users":
		h.users(w, r)
	case "orders":
		h.orders(w, r)
	default:
		writeNotFoundRoute(w)
	}
}

// productRow is one composed list entry with the brand and category names
// resolved from the held snapshots.
type productRow struct {
	productdom.Product
	BrandName    string `json:"brandName,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

func (h *StreamHandler) products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	minRating, _ := strconv.ParseFloat(q.Get("minRating"), 64)
	params := query.ProductParams{
		Query:      q.Get("q"),
		BrandID:    strings.TrimSpace(q.Get("brandId")),
		CategoryID: strings.TrimSpace(q.Get("categoryId")),
		MinRating:  minRating,
		Sort:       query.ParseProductSort(q.Get("sort")),
	}

	productSub, err := h.productUC.Watch(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer productSub.Close()

	brandSub, err := h.brandUC.Watch(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer brandSub.Close()

	categorySub, err := h.categoryUC.Watch(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer categorySub.Close()

	// One feed per connection: the request params stay fixed, the
	// snapshots keep flowing in.
	feed := query.NewProductFeed()
	defer feed.Close()
	feed.SetParams(params)
	composed := feed.Subscribe()
	defer composed.Close()

	flusher, ok := beginEventStream(w)
	if !ok {
		return
	}
	for {
		select {
		case products := <-productSub.Updates():
			feed.SetProducts(products)
		case brands := <-brandSub.Updates():
			feed.SetBrands(brands)
		case categories := <-categorySub.Updates():
			feed.SetCategories(categories)
		case snapshot := <-composed.Updates():
			if !sendEvent(w, flusher, productRows(feed, snapshot)) {
				return
			}
		case <-productSub.Done():
			return
		case <-brandSub.Done():
			return
		case <-categorySub.Done():
			return
		case <-ctx.Done():
			return
		}
	}
}

func productRows(feed *query.ProductFeed, products []productdom.Product) []productRow {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			Product:      p,
			BrandName:    feed.BrandName(p.BrandID),
			CategoryName: feed.CategoryName(p.CategoryID),
		})
	}
	return rows
}

func (h *StreamHandler) users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	currentSub, err := h.userUC.Watch(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer currentSub.Close()

	legacySub, err := h.userUC.WatchLegacy(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer legacySub.Close()

	feed := query.NewUsersFeed()
	defer feed.Close()
	merged := feed.Subscribe()
	defer merged.Close()

	flusher, ok := beginEventStream(w)
	if !ok {
		return
	}
	for {
		select {
		case users := <-currentSub.Updates():
			feed.SetCurrent(users)
		case users := <-legacySub.Updates():
			feed.SetLegacy(users)
		case snapshot := <-merged.Updates():
			if !sendEvent(w, flusher, emptyNotNil(snapshot)) {
				return
			}
		case <-currentSub.Done():
			return
		case <-legacySub.Done():
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *StreamHandler) orders(w http.ResponseWriter, r *http.Request) {
	sub, err := h.orderUC.Watch(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer sub.Close()

	flusher, ok := beginEventStream(w)
	if !ok {
		return
	}
	streamSubscription(w, r, flusher, sub)
}

func beginEventStream(w http.ResponseWriter) (http.Flusher, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	return flusher, true
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, v any) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		return false
	}
	if _, err := w.Write([]byte("data: ")); err != nil {
		return false
	}
	if _, err := w.Write(payload); err != nil {
		return false
	}
	if _, err := w.Write([]byte("\n\n")); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

func streamSubscription[T any](w http.ResponseWriter, r *http.Request, flusher http.Flusher, sub *common.Subscription[[]T]) {
	for {
		select {
		case snapshot := <-sub.Updates():
			if !sendEvent(w, flusher, snapshot) {
				return
			}
		case <-sub.Done():
			return
		case <-r.Context().Done():
			return
		}
	}
}

// emptyNotNil keeps the JSON wire shape an array even for empty snapshots.
func emptyNotNil(users []userdom.User) []userdom.User {
	if users == nil {
		return []userdom.User{}
	}
	return users
}
