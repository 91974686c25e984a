// internal/adapters/out/rtdb/product_repository_test.go
package rtdb

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "flyadmin/internal/domain/product"
)

func newProductRepo(m *memStore) *ProductRepositoryRTDB {
	return &ProductRepositoryRTDB{store: m, stream: m}
}

func newVariantRepo(m *memStore) *VariantRepositoryRTDB {
	return &VariantRepositoryRTDB{store: m, stream: m}
}

func bucketKeys(t *testing.T, m *memStore, path string) map[string]bool {
	t.Helper()
	var bucket map[string]bool
	require.NoError(t, m.Get(context.Background(), path, &bucket))
	return bucket
}

func TestProductCreateMaintainsCategoryIndex(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newProductRepo(m)

	id, err := repo.Create(ctx, productdom.Product{Title: "Air Zoom", Price: 120, CategoryID: "cat-1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.True(t, bucketKeys(t, m, categoryProductsPath("cat-1"))[id])

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Air Zoom", got.Title)
}

func TestProductUpdateMovesCategoryIndexEntry(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newProductRepo(m)

	id, err := repo.Create(ctx, productdom.Product{Title: "Trail Runner", Price: 90, CategoryID: "cat-1"})
	require.NoError(t, err)

	updated := productdom.Product{Title: "Trail Runner", Price: 90, CategoryID: "cat-2"}
	require.NoError(t, repo.Update(ctx, id, updated))

	assert.False(t, bucketKeys(t, m, categoryProductsPath("cat-1"))[id])
	assert.True(t, bucketKeys(t, m, categoryProductsPath("cat-2"))[id])
}

func TestProductUpdateRequiresID(t *testing.T) {
	repo := newProductRepo(newMemStore())
	err := repo.Update(context.Background(), "", productdom.Product{Title: "x", Price: 1})
	assert.ErrorIs(t, err, productdom.ErrInvalidID)
}

func TestProductDeleteCascadesVariants(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	products := newProductRepo(m)
	variants := newVariantRepo(m)

	pid, err := products.Create(ctx, productdom.Product{Title: "Air Zoom", Price: 120, CategoryID: "cat-1"})
	require.NoError(t, err)

	vid1, err := variants.Create(ctx, productdom.ProductVariant{ProductID: pid, Size: "42", SKU: "az-42"})
	require.NoError(t, err)
	vid2, err := variants.Create(ctx, productdom.ProductVariant{ProductID: pid, Size: "43", SKU: "az-43"})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, pid))

	_, err = products.GetByID(ctx, pid)
	assert.ErrorIs(t, err, productdom.ErrNotFound)
	_, err = variants.GetByID(ctx, vid1)
	assert.ErrorIs(t, err, productdom.ErrVariantNotFound)
	_, err = variants.GetByID(ctx, vid2)
	assert.ErrorIs(t, err, productdom.ErrVariantNotFound)

	assert.Empty(t, bucketKeys(t, m, productVariantsByProductPath(pid)))
	assert.False(t, bucketKeys(t, m, categoryProductsPath("cat-1"))[pid])
}

func TestProductGetAbsent(t *testing.T) {
	repo := newProductRepo(newMemStore())
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

func waitSnapshot[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		panic("unreachable")
	}
}

func TestProductWatchDeliversSnapshotsAndSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newProductRepo(m)

	_, err := repo.Create(ctx, productdom.Product{Title: "Air Zoom", Price: 120})
	require.NoError(t, err)
	// A malformed child must be skipped, never fatal.
	require.NoError(t, m.Set(ctx, pathProducts+"/bad", "not a record"))

	sub, err := repo.Watch(ctx)
	require.NoError(t, err)
	defer sub.Close()

	first := waitSnapshot(t, sub.Updates())
	require.Len(t, first, 1)
	assert.Equal(t, "Air Zoom", first[0].Title)

	_, err = repo.Create(ctx, productdom.Product{Title: "Trail Runner", Price: 90})
	require.NoError(t, err)

	second := waitSnapshot(t, sub.Updates())
	assert.Len(t, second, 2)
}

func TestProductWatchFailsOnStreamError(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newProductRepo(m)

	sub, err := repo.Watch(ctx)
	require.NoError(t, err)
	waitSnapshot(t, sub.Updates())

	streamErr := errors.New("permission revoked")
	m.failStreams(streamErr)

	select {
	case <-sub.Done():
		assert.ErrorIs(t, sub.Err(), streamErr)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not terminate")
	}
}

func TestVariantWatchSkipsDanglingIndexEntries(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	variants := newVariantRepo(m)

	vid, err := variants.Create(ctx, productdom.ProductVariant{ProductID: "p1", Size: "42"})
	require.NoError(t, err)
	// Simulate a crash between the primary delete and the index delete.
	require.NoError(t, m.Set(ctx, productVariantsByProductPath("p1")+"/ghost", true))

	sub, err := variants.WatchByProduct(ctx, "p1")
	require.NoError(t, err)
	defer sub.Close()

	snap := waitSnapshot(t, sub.Updates())
	require.Len(t, snap, 1)
	assert.Equal(t, vid, snap[0].ID)
}

func TestDecodeChildrenSubstitutesKey(t *testing.T) {
	raw := map[string]json.RawMessage{
		"p1": json.RawMessage(`{"title":"Air Zoom","price":120}`),
	}
	out := decodeChildren(raw, decodeProduct)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}
