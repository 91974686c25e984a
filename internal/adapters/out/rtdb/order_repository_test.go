// internal/adapters/out/rtdb/order_repository_test.go
package rtdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "flyadmin/internal/domain/order"
)

func newOrderRepo(m *memStore) *OrderRepositoryRTDB {
	return &OrderRepositoryRTDB{store: m, stream: m}
}

func seedOrder(t *testing.T, m *memStore, id string, o orderdom.Order) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, orderPath(id), o))
	if o.UserID != "" {
		require.NoError(t, m.Set(ctx, userOrdersPath(o.UserID)+"/"+id, true))
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newOrderRepo(m)

	seedOrder(t, m, "o1", orderdom.Order{
		UserEmail: "alice@example.com",
		Status:    orderdom.StatusPending,
		Pricing:   orderdom.Pricing{Total: 50},
	})

	require.NoError(t, repo.UpdateStatus(ctx, "o1", orderdom.StatusShipped))

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusShipped, got.Status)
	// Status is a patch, the rest of the record survives.
	assert.Equal(t, "alice@example.com", got.UserEmail)
	assert.Equal(t, float64(50), got.Pricing.Total)

	err = repo.UpdateStatus(ctx, "o1", orderdom.Status("teleported"))
	assert.ErrorIs(t, err, orderdom.ErrInvalidStatus)
	err = repo.UpdateStatus(ctx, "", orderdom.StatusShipped)
	assert.ErrorIs(t, err, orderdom.ErrInvalidID)
}

func TestOrderDeleteCleansItemsAndUserIndex(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newOrderRepo(m)

	seedOrder(t, m, "o1", orderdom.Order{UserID: "u1", Status: orderdom.StatusPending})
	require.NoError(t, m.Set(ctx, orderItemsPath("o1")+"/i1", map[string]any{"title": "Air Zoom", "quantity": 1}))

	require.NoError(t, repo.Delete(ctx, "o1"))

	_, err := repo.GetByID(ctx, "o1")
	assert.ErrorIs(t, err, orderdom.ErrNotFound)
	assert.Empty(t, bucketKeys(t, m, userOrdersPath("u1")))

	var items map[string]any
	require.NoError(t, m.Get(ctx, orderItemsPath("o1"), &items))
	assert.Empty(t, items)
}

func TestOrderSearchByEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newOrderRepo(m)

	seedOrder(t, m, "o1", orderdom.Order{UserEmail: "Alice@Example.com", Status: orderdom.StatusPending})
	seedOrder(t, m, "o2", orderdom.Order{UserEmail: "bob@example.com", Status: orderdom.StatusPending})

	got, err := repo.SearchByEmail(ctx, "ALICE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestOrderTotalRevenueExcludesCancelled(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newOrderRepo(m)

	seedOrder(t, m, "o1", orderdom.Order{Status: orderdom.StatusDelivered, Pricing: orderdom.Pricing{Total: 100}})
	seedOrder(t, m, "o2", orderdom.Order{Status: orderdom.StatusPending, Pricing: orderdom.Pricing{Total: 40}})
	seedOrder(t, m, "o3", orderdom.Order{Status: orderdom.StatusCancelled, Pricing: orderdom.Pricing{Total: 999}})

	total, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(140), total)
}

func TestOrderListByStatus(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newOrderRepo(m)

	seedOrder(t, m, "o1", orderdom.Order{Status: orderdom.StatusPending})
	seedOrder(t, m, "o2", orderdom.Order{Status: orderdom.StatusShipped})

	got, err := repo.ListByStatus(ctx, orderdom.StatusShipped)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)
}
