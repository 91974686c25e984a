// internal/adapters/out/rtdb/product_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	common "flyadmin/internal/domain/common"
	productdom "flyadmin/internal/domain/product"
)

// ProductRepositoryRTDB persists products and maintains the category→product
// secondary index. Index maintenance is best-effort sequential writes: the
// store has no multi-location transaction, so readers must tolerate dangling
// entries.
type ProductRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewProductRepositoryRTDB(c *Client) *ProductRepositoryRTDB {
	return &ProductRepositoryRTDB{store: c, stream: c}
}

var _ productdom.Repository = (*ProductRepositoryRTDB)(nil)

func decodeProduct(key string, raw json.RawMessage) (productdom.Product, bool) {
	return decodeRecord(key, raw, func(p *productdom.Product, id string) { p.ID = id })
}

func (r *ProductRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]productdom.Product], error) {
	return watchCollection(ctx, r.store, r.stream, pathProducts, decodeProduct)
}

func (r *ProductRepositoryRTDB) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, productPath(id), &raw); err != nil {
		return productdom.Product{}, err
	}
	p, ok := decodeChild(id, raw, decodeProduct)
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryRTDB) Create(ctx context.Context, p productdom.Product) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		// Generated key; the stored record omits its id, reads substitute
		// the key.
		p.ID = ""
		key, err := r.store.Push(ctx, pathProducts, p)
		if err != nil {
			return "", err
		}
		id = key
	} else {
		p.ID = id
		if err := r.store.Set(ctx, productPath(id), p); err != nil {
			return "", err
		}
	}

	if p.CategoryID != "" {
		if err := r.store.Set(ctx, categoryProductsPath(p.CategoryID)+"/"+id, true); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (r *ProductRepositoryRTDB) Update(ctx context.Context, id string, p productdom.Product) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrInvalidID
	}
	if err := p.Validate(); err != nil {
		return err
	}

	// Read-before-write to detect a category move. Not atomic: two
	// concurrent movers can leave both buckets populated, which readers
	// tolerate.
	old, oldErr := r.GetByID(ctx, id)

	p.ID = id
	if err := r.store.Set(ctx, productPath(id), p); err != nil {
		return err
	}

	if oldErr == nil && old.CategoryID != p.CategoryID {
		if old.CategoryID != "" {
			if err := r.store.Delete(ctx, categoryProductsPath(old.CategoryID)+"/"+id); err != nil {
				return err
			}
		}
		if p.CategoryID != "" {
			if err := r.store.Set(ctx, categoryProductsPath(p.CategoryID)+"/"+id, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes the product, its category index entry, every variant
// reachable from the product→variant index, and the index bucket itself.
func (r *ProductRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrInvalidID
	}

	old, oldErr := r.GetByID(ctx, id)

	if err := r.store.Delete(ctx, productPath(id)); err != nil {
		return err
	}

	if oldErr == nil && old.CategoryID != "" {
		if err := r.store.Delete(ctx, categoryProductsPath(old.CategoryID)+"/"+id); err != nil {
			return err
		}
	}

	var bucket map[string]json.RawMessage
	if err := r.store.Get(ctx, productVariantsByProductPath(id), &bucket); err != nil {
		return err
	}
	for variantID := range bucket {
		if err := r.store.Delete(ctx, productVariantPath(variantID)); err != nil {
			return err
		}
	}
	return r.store.Delete(ctx, productVariantsByProductPath(id))
}

// decodeChild is decodeRecord applied to a point read: a null or malformed
// record reads as absent.
func decodeChild[T any](key string, raw json.RawMessage, decode childDecoder[T]) (T, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		var zero T
		return zero, false
	}
	return decode(key, raw)
}
