// internal/adapters/in/http/handlers/order_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "flyadmin/internal/application/usecase"
	cartdom "flyadmin/internal/domain/cart"
	common "flyadmin/internal/domain/common"
	orderdom "flyadmin/internal/domain/order"
)

type fakeOrderRepo struct {
	orders   map[string]orderdom.Order
	statuses map[string]orderdom.Status
	deleted  []string
}

func newFakeOrderRepo(orders ...orderdom.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: map[string]orderdom.Order{}, statuses: map[string]orderdom.Status{}}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Watch(ctx context.Context) (*common.Subscription[[]orderdom.Order], error) {
	sub := common.NewSubscription[[]orderdom.Order]()
	all := make([]orderdom.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	sub.Publish(all)
	return sub, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status orderdom.Status) error {
	if _, ok := r.orders[id]; !ok {
		return orderdom.ErrNotFound
	}
	r.statuses[id] = status
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	delete(r.orders, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeOrderRepo) SearchByEmail(ctx context.Context, email string) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for _, o := range r.orders {
		if strings.Contains(strings.ToLower(o.UserEmail), strings.ToLower(email)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(ctx context.Context, status orderdom.Status) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, o := range r.orders {
		if o.Status != orderdom.StatusCancelled {
			total += o.Pricing.Total
		}
	}
	return total, nil
}

type fakeCartRepo struct{}

func (fakeCartRepo) Get(ctx context.Context, userID string) ([]cartdom.Item, error) { return nil, nil }
func (fakeCartRepo) Clear(ctx context.Context, userID string) error                 { return nil }

func orderFixture(id, email string, status orderdom.Status, total float64) orderdom.Order {
	return orderdom.Order{
		ID:        id,
		UserEmail: email,
		Status:    status,
		Pricing:   orderdom.Pricing{Total: total},
	}
}

func newOrderServer(repo *fakeOrderRepo) http.Handler {
	return NewOrderHandler(usecase.NewOrderUsecase(repo, fakeCartRepo{}))
}

func TestOrderHandlerSearchByEmail(t *testing.T) {
	repo := newFakeOrderRepo(
		orderFixture("o1", "alice@example.com", orderdom.StatusPending, 40),
		orderFixture("o2", "bob@example.com", orderdom.StatusShipped, 60),
	)
	rec := httptest.NewRecorder()
	newOrderServer(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?email=ALICE", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []orderdom.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestOrderHandlerRevenueExcludesCancelled(t *testing.T) {
	repo := newFakeOrderRepo(
		orderFixture("o1", "a@x.com", orderdom.StatusDelivered, 100),
		orderFixture("o2", "b@x.com", orderdom.StatusCancelled, 999),
		orderFixture("o3", "c@x.com", orderdom.StatusPending, 40),
	)
	rec := httptest.NewRecorder()
	newOrderServer(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/revenue", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 140.0, got["total"])
}

func TestOrderHandlerGetMissing(t *testing.T) {
	rec := httptest.NewRecorder()
	newOrderServer(newFakeOrderRepo()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandlerSetStatus(t *testing.T) {
	repo := newFakeOrderRepo(orderFixture("o1", "a@x.com", orderdom.StatusPending, 10))
	srv := newOrderServer(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1/status", strings.NewReader(`{"status":"shipped"}`))
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, orderdom.StatusShipped, repo.statuses["o1"])

	// Unknown status never reaches the repository.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/orders/o1/status", strings.NewReader(`{"status":"teleported"}`))
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandlerListByStatusRejectsUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	newOrderServer(newFakeOrderRepo()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?status=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandlerDelete(t *testing.T) {
	repo := newFakeOrderRepo(orderFixture("o1", "a@x.com", orderdom.StatusPending, 10))
	rec := httptest.NewRecorder()
	newOrderServer(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/orders/o1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"o1"}, repo.deleted)
}
