// internal/adapters/out/rtdb/variant_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	common "flyadmin/internal/domain/common"
	productdom "flyadmin/internal/domain/product"
)

// VariantRepositoryRTDB persists product variants and the product→variant
// index bucket.
type VariantRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewVariantRepositoryRTDB(c *Client) *VariantRepositoryRTDB {
	return &VariantRepositoryRTDB{store: c, stream: c}
}

var _ productdom.VariantRepository = (*VariantRepositoryRTDB)(nil)

func decodeVariant(key string, raw json.RawMessage) (productdom.ProductVariant, bool) {
	return decodeRecord(key, raw, func(v *productdom.ProductVariant, id string) { v.ID = id })
}

// WatchByProduct watches the index bucket and resolves each member to its
// variant record. Dangling index entries (a crash between the primary
// delete and the index delete) are skipped, not errors.
func (r *VariantRepositoryRTDB) WatchByProduct(ctx context.Context, productID string) (*common.Subscription[[]productdom.ProductVariant], error) {
	path := productVariantsByProductPath(productID)
	return watchSnapshots(ctx, r.stream, path, func(ctx context.Context) ([]productdom.ProductVariant, error) {
		var bucket map[string]json.RawMessage
		if err := r.store.Get(ctx, path, &bucket); err != nil {
			return nil, err
		}

		ids := make([]string, 0, len(bucket))
		for id := range bucket {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		out := make([]productdom.ProductVariant, 0, len(ids))
		for _, id := range ids {
			v, err := r.GetByID(ctx, id)
			if errors.Is(err, productdom.ErrVariantNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

func (r *VariantRepositoryRTDB) GetByID(ctx context.Context, id string) (productdom.ProductVariant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ProductVariant{}, productdom.ErrVariantNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, productVariantPath(id), &raw); err != nil {
		return productdom.ProductVariant{}, err
	}
	v, ok := decodeChild(id, raw, decodeVariant)
	if !ok {
		return productdom.ProductVariant{}, productdom.ErrVariantNotFound
	}
	return v, nil
}

func (r *VariantRepositoryRTDB) Create(ctx context.Context, v productdom.ProductVariant) (string, error) {
	if v.ProductID == "" {
		return "", productdom.ErrInvalidProductRef
	}

	id := strings.TrimSpace(v.ID)
	if id == "" {
		v.ID = ""
		key, err := r.store.Push(ctx, pathProductVariants, v)
		if err != nil {
			return "", err
		}
		id = key
	} else {
		v.ID = id
		if err := r.store.Set(ctx, productVariantPath(id), v); err != nil {
			return "", err
		}
	}

	if err := r.store.Set(ctx, productVariantsByProductPath(v.ProductID)+"/"+id, true); err != nil {
		return "", err
	}
	return id, nil
}

func (r *VariantRepositoryRTDB) Update(ctx context.Context, id string, v productdom.ProductVariant) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrInvalidVariantID
	}
	v.ID = id
	return r.store.Set(ctx, productVariantPath(id), v)
}

func (r *VariantRepositoryRTDB) Delete(ctx context.Context, id, productID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrInvalidVariantID
	}
	if err := r.store.Delete(ctx, productVariantPath(id)); err != nil {
		return err
	}
	if productID = strings.TrimSpace(productID); productID != "" {
		return r.store.Delete(ctx, productVariantsByProductPath(productID)+"/"+id)
	}
	return nil
}
