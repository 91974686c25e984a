// internal/adapters/out/rtdb/brand_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	branddom "flyadmin/internal/domain/brand"
	common "flyadmin/internal/domain/common"
)

type BrandRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewBrandRepositoryRTDB(c *Client) *BrandRepositoryRTDB {
	return &BrandRepositoryRTDB{store: c, stream: c}
}

var _ branddom.Repository = (*BrandRepositoryRTDB)(nil)

func decodeBrand(key string, raw json.RawMessage) (branddom.Brand, bool) {
	return decodeRecord(key, raw, func(b *branddom.Brand, id string) { b.ID = id })
}

func (r *BrandRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]branddom.Brand], error) {
	return watchCollection(ctx, r.store, r.stream, pathBrands, decodeBrand)
}

func (r *BrandRepositoryRTDB) GetByID(ctx context.Context, id string) (branddom.Brand, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return branddom.Brand{}, branddom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, brandPath(id), &raw); err != nil {
		return branddom.Brand{}, err
	}
	b, ok := decodeChild(id, raw, decodeBrand)
	if !ok {
		return branddom.Brand{}, branddom.ErrNotFound
	}
	return b, nil
}

func (r *BrandRepositoryRTDB) Create(ctx context.Context, b branddom.Brand) (string, error) {
	if strings.TrimSpace(b.Name) == "" {
		return "", branddom.ErrInvalidName
	}

	id := strings.TrimSpace(b.ID)
	if id == "" {
		b.ID = ""
		key, err := r.store.Push(ctx, pathBrands, b)
		if err != nil {
			return "", err
		}
		return key, nil
	}
	b.ID = id
	if err := r.store.Set(ctx, brandPath(id), b); err != nil {
		return "", err
	}
	return id, nil
}

func (r *BrandRepositoryRTDB) Update(ctx context.Context, id string, b branddom.Brand) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return branddom.ErrInvalidID
	}
	b.ID = id
	return r.store.Set(ctx, brandPath(id), b)
}

func (r *BrandRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return branddom.ErrInvalidID
	}
	return r.store.Delete(ctx, brandPath(id))
}
